package service

import (
	"errors"

	"schoolscope_backend/internal/model"
	"schoolscope_backend/internal/repository"
	"schoolscope_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) List(page, limit int, role string) ([]model.User, int64, error) {
	return s.UserRepo.List(page, limit, role)
}

func (s *UserService) SetRole(id uint, role model.UserRole) error {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	user.Role = role
	return s.UserRepo.Update(user)
}

func (s *UserService) SetDisabled(id uint, disabled bool) error {
	if _, err := s.UserRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	} else if err != nil {
		return err
	}
	return s.UserRepo.SetDisabled(id, disabled)
}

// TouchLastSeen records that a user made an authenticated request. Failures
// are swallowed, the request should not suffer for a bookkeeping column.
func (s *UserService) TouchLastSeen(id uint) {
	_ = s.UserRepo.UpdateLastSeen(id)
}

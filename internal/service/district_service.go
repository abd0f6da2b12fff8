package service

import (
	"errors"

	"schoolscope_backend/internal/model"
	"schoolscope_backend/internal/repository"
	"schoolscope_backend/internal/util"

	"gorm.io/gorm"
)

type DistrictService struct {
	DistrictRepo *repository.DistrictRepository
	SchoolRepo   *repository.SchoolRepository
}

func NewDistrictService(districtRepo *repository.DistrictRepository, schoolRepo *repository.SchoolRepository) *DistrictService {
	return &DistrictService{
		DistrictRepo: districtRepo,
		SchoolRepo:   schoolRepo,
	}
}

func (s *DistrictService) Create(d *model.District) error {
	return s.DistrictRepo.Create(d)
}

func (s *DistrictService) GetByID(id uint) (*model.District, error) {
	d, err := s.DistrictRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrDistrictNotFound
	}
	return d, err
}

func (s *DistrictService) List(page, limit int, county, search string) ([]model.District, int64, error) {
	return s.DistrictRepo.List(page, limit, county, search)
}

func (s *DistrictService) Update(d *model.District) error {
	if _, err := s.GetByID(d.ID); err != nil {
		return err
	}
	return s.DistrictRepo.Update(d)
}

func (s *DistrictService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.DistrictRepo.Delete(id)
}

func (s *DistrictService) Schools(districtID uint) ([]model.School, error) {
	if _, err := s.GetByID(districtID); err != nil {
		return nil, err
	}
	return s.SchoolRepo.ListByDistrict(districtID)
}

func (s *DistrictService) Contacts(districtID uint) ([]model.SchoolContact, error) {
	if _, err := s.GetByID(districtID); err != nil {
		return nil, err
	}
	return s.DistrictRepo.ListContacts(districtID)
}

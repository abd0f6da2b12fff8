package service

import (
	"errors"

	"schoolscope_backend/internal/model"
	"schoolscope_backend/internal/repository"
	"schoolscope_backend/internal/util"

	"gorm.io/gorm"
)

type SchoolService struct {
	SchoolRepo   *repository.SchoolRepository
	DistrictRepo *repository.DistrictRepository
}

func NewSchoolService(schoolRepo *repository.SchoolRepository, districtRepo *repository.DistrictRepository) *SchoolService {
	return &SchoolService{
		SchoolRepo:   schoolRepo,
		DistrictRepo: districtRepo,
	}
}

func (s *SchoolService) Create(school *model.School) error {
	if _, err := s.DistrictRepo.FindByID(school.DistrictID); errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrDistrictNotFound
	} else if err != nil {
		return err
	}
	return s.SchoolRepo.Create(school)
}

func (s *SchoolService) GetByID(id uint) (*model.School, error) {
	school, err := s.SchoolRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSchoolNotFound
	}
	return school, err
}

func (s *SchoolService) List(page, limit int, districtID uint, level, search string) ([]model.School, int64, error) {
	return s.SchoolRepo.List(page, limit, districtID, level, search)
}

func (s *SchoolService) Update(school *model.School) error {
	if _, err := s.GetByID(school.ID); err != nil {
		return err
	}
	return s.SchoolRepo.Update(school)
}

func (s *SchoolService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.SchoolRepo.Delete(id)
}

func (s *SchoolService) Contacts(schoolID uint) ([]model.SchoolContact, error) {
	if _, err := s.GetByID(schoolID); err != nil {
		return nil, err
	}
	return s.SchoolRepo.ListContacts(schoolID)
}

// Profile bundles a school's yearly statistic series for the detail page.
type SchoolProfile struct {
	School     *model.School          `json:"school"`
	Enrollment []model.EnrollmentStat `json:"enrollment"`
	Staff      []model.StaffStat      `json:"staff"`
	Safety     []model.SafetyStat     `json:"safety"`
}

func (s *SchoolService) Profile(schoolID uint) (*SchoolProfile, error) {
	school, err := s.GetByID(schoolID)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.SchoolRepo.ListEnrollment(schoolID)
	if err != nil {
		return nil, err
	}
	staff, err := s.SchoolRepo.ListStaff(schoolID)
	if err != nil {
		return nil, err
	}
	safety, err := s.SchoolRepo.ListSafety(schoolID)
	if err != nil {
		return nil, err
	}

	return &SchoolProfile{
		School:     school,
		Enrollment: enrollment,
		Staff:      staff,
		Safety:     safety,
	}, nil
}

package repository

import (
	"schoolscope_backend/internal/model"

	"gorm.io/gorm"
)

type SchoolRepository struct {
	DB *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) *SchoolRepository {
	return &SchoolRepository{DB: db}
}

func (r *SchoolRepository) Create(s *model.School) error {
	return r.DB.Create(s).Error
}

func (r *SchoolRepository) FindByID(id uint) (*model.School, error) {
	var s model.School
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *SchoolRepository) List(page, limit int, districtID uint, level, search string) ([]model.School, int64, error) {
	var ss []model.School
	var total int64
	query := r.DB.Model(&model.School{})
	if districtID > 0 {
		query = query.Where("district_id = ?", districtID)
	}
	if level != "" {
		query = query.Where("level = ?", level)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("name asc").Offset(offset).Limit(limit).Find(&ss).Error
	return ss, total, err
}

func (r *SchoolRepository) ListByDistrict(districtID uint) ([]model.School, error) {
	var ss []model.School
	err := r.DB.Where("district_id = ?", districtID).Order("name asc").Find(&ss).Error
	return ss, err
}

func (r *SchoolRepository) Update(s *model.School) error {
	return r.DB.Save(s).Error
}

func (r *SchoolRepository) Delete(id uint) error {
	return r.DB.Delete(&model.School{}, id).Error
}

func (r *SchoolRepository) ListContacts(schoolID uint) ([]model.SchoolContact, error) {
	var cs []model.SchoolContact
	err := r.DB.Where("school_id = ?", schoolID).Order("name asc").Find(&cs).Error
	return cs, err
}

func (r *SchoolRepository) ListEnrollment(schoolID uint) ([]model.EnrollmentStat, error) {
	var es []model.EnrollmentStat
	err := r.DB.Where("school_id = ?", schoolID).Order("year desc").Find(&es).Error
	return es, err
}

func (r *SchoolRepository) ListStaff(schoolID uint) ([]model.StaffStat, error) {
	var ss []model.StaffStat
	err := r.DB.Where("school_id = ?", schoolID).Order("year desc").Find(&ss).Error
	return ss, err
}

func (r *SchoolRepository) ListSafety(schoolID uint) ([]model.SafetyStat, error) {
	var ss []model.SafetyStat
	err := r.DB.Where("school_id = ?", schoolID).Order("year desc").Find(&ss).Error
	return ss, err
}

package repository

import (
	"schoolscope_backend/internal/model"

	"gorm.io/gorm"
)

type DistrictRepository struct {
	DB *gorm.DB
}

func NewDistrictRepository(db *gorm.DB) *DistrictRepository {
	return &DistrictRepository{DB: db}
}

func (r *DistrictRepository) Create(d *model.District) error {
	return r.DB.Create(d).Error
}

func (r *DistrictRepository) FindByID(id uint) (*model.District, error) {
	var d model.District
	err := r.DB.First(&d, id).Error
	return &d, err
}

func (r *DistrictRepository) List(page, limit int, county, search string) ([]model.District, int64, error) {
	var ds []model.District
	var total int64
	query := r.DB.Model(&model.District{})
	if county != "" {
		query = query.Where("county = ?", county)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("name asc").Offset(offset).Limit(limit).Find(&ds).Error
	return ds, total, err
}

func (r *DistrictRepository) ListAll() ([]model.District, error) {
	var ds []model.District
	err := r.DB.Order("name asc").Find(&ds).Error
	return ds, err
}

func (r *DistrictRepository) Update(d *model.District) error {
	return r.DB.Save(d).Error
}

func (r *DistrictRepository) Delete(id uint) error {
	return r.DB.Delete(&model.District{}, id).Error
}

func (r *DistrictRepository) ListContacts(districtID uint) ([]model.SchoolContact, error) {
	var cs []model.SchoolContact
	err := r.DB.Where("district_id = ?", districtID).Order("name asc").Find(&cs).Error
	return cs, err
}

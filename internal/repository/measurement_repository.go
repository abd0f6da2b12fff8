package repository

import (
	"schoolscope_backend/internal/model"

	"gorm.io/gorm"
)

type MeasurementRepository struct {
	DB *gorm.DB
}

func NewMeasurementRepository(db *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{DB: db}
}

func (r *MeasurementRepository) ListByDistrict(districtID uint) ([]model.DistrictMeasurement, error) {
	var ms []model.DistrictMeasurement
	err := r.DB.Where("district_id = ?", districtID).Find(&ms).Error
	return ms, err
}

// ListAllDistricts returns the measurement rows of every district, used for
// statewide ranking.
func (r *MeasurementRepository) ListAllDistricts() ([]model.DistrictMeasurement, error) {
	var ms []model.DistrictMeasurement
	err := r.DB.Find(&ms).Error
	return ms, err
}

func (r *MeasurementRepository) ListBySchool(schoolID uint) ([]model.SchoolMeasurement, error) {
	var ms []model.SchoolMeasurement
	err := r.DB.Where("school_id = ?", schoolID).Find(&ms).Error
	return ms, err
}

func (r *MeasurementRepository) ListState() ([]model.StateMeasurement, error) {
	var ms []model.StateMeasurement
	err := r.DB.Find(&ms).Error
	return ms, err
}

func (r *MeasurementRepository) Years() ([]int, error) {
	var years []int
	err := r.DB.Model(&model.DistrictMeasurement{}).
		Distinct("year").Order("year desc").Pluck("year", &years).Error
	return years, err
}

// ReplaceDistrictYear swaps out one district's rows for a year in a single
// transaction, so a re-import never leaves a partial mix of old and new data.
func (r *MeasurementRepository) ReplaceDistrictYear(districtID uint, year int, rows []model.DistrictMeasurement) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("district_id = ? AND year = ?", districtID, year).
			Delete(&model.DistrictMeasurement{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
}

func (r *MeasurementRepository) ReplaceStateYear(year int, rows []model.StateMeasurement) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("year = ?", year).Delete(&model.StateMeasurement{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
}

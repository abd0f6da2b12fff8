package model

import "schoolscope_backend/internal/stats"

// MeasurementFields is the field-set shared by the district, state and
// school measurement variants. Subject/subgroup/grade names are denormalized
// from the state data files at import time.
type MeasurementFields struct {
	Year         int    `gorm:"index;not null" json:"year"`
	SubjectID    *int   `gorm:"index" json:"subjectId,omitempty"`
	SubjectDesc  string `gorm:"size:100" json:"subjectDesc,omitempty"`
	SubgroupID   *int   `gorm:"index" json:"subgroupId,omitempty"`
	SubgroupName string `gorm:"size:100" json:"subgroupName,omitempty"`
	// GradeID nil means the row aggregates across grades.
	GradeID   *int   `gorm:"index" json:"gradeId,omitempty"`
	GradeName string `gorm:"size:50" json:"gradeName,omitempty"`

	AboveProficientPct *float64 `json:"aboveProficientPct"`
	// AboveProficientPctException is one of the stats suppression codes, or
	// empty when the percentage is reported directly.
	AboveProficientPctException string `gorm:"size:50" json:"aboveProficientPctException,omitempty"`
}

// StatFields adapts a measurement row onto the stats.Record contract.
func (f MeasurementFields) StatFields() stats.Fields {
	out := stats.Fields{
		Year:               f.Year,
		AboveProficientPct: f.AboveProficientPct,
		Exception:          f.AboveProficientPctException,
	}
	if f.SubjectID != nil {
		out.Subject = &stats.Ref{ID: *f.SubjectID, Name: f.SubjectDesc}
	}
	if f.SubgroupID != nil {
		out.Subgroup = &stats.Ref{ID: *f.SubgroupID, Name: f.SubgroupName}
	}
	if f.GradeID != nil {
		out.Grade = &stats.Ref{ID: *f.GradeID, Name: f.GradeName}
	}
	return out
}

// swagger:model DistrictMeasurement
type DistrictMeasurement struct {
	BaseModel
	DistrictID uint `gorm:"index;type:bigint unsigned" json:"districtId"`
	MeasurementFields
}

func (DistrictMeasurement) TableName() string {
	return "district_measurements"
}

// DistrictKey satisfies stats.DistrictRecord.
func (m DistrictMeasurement) DistrictKey() uint {
	return m.DistrictID
}

// swagger:model StateMeasurement
type StateMeasurement struct {
	BaseModel
	MeasurementFields
}

func (StateMeasurement) TableName() string {
	return "state_measurements"
}

// swagger:model SchoolMeasurement
type SchoolMeasurement struct {
	BaseModel
	SchoolID uint `gorm:"index;type:bigint unsigned" json:"schoolId"`
	MeasurementFields
}

func (SchoolMeasurement) TableName() string {
	return "school_measurements"
}

package model

// SchoolLevel is the band a school serves.
type SchoolLevel string

const (
	Elementary SchoolLevel = "elementary"
	Middle     SchoolLevel = "middle"
	High       SchoolLevel = "high"
	Combined   SchoolLevel = "combined"
)

// swagger:model School
type School struct {
	BaseModel
	DistrictID uint        `gorm:"index;type:bigint unsigned" json:"districtId"`
	Name       string      `gorm:"size:255;not null;index" json:"name"`
	Level      SchoolLevel `gorm:"type:enum('elementary','middle','high','combined');default:'elementary'" json:"level"`
	Address    string      `gorm:"size:255" json:"address"`
	City       string      `gorm:"size:100" json:"city"`
	Zip        string      `gorm:"size:10" json:"zip"`
	Phone      string      `gorm:"size:30" json:"phone"`
	Website    string      `gorm:"size:255" json:"website"`
	IsCharter  bool        `gorm:"default:false" json:"isCharter"`
}

func (School) TableName() string {
	return "schools"
}

// SchoolContact is a published point of contact. Exactly one of SchoolID or
// DistrictID is set, for school-level and district-level contacts.
type SchoolContact struct {
	BaseModel
	SchoolID   *uint  `gorm:"index;type:bigint unsigned" json:"schoolId,omitempty"`
	DistrictID *uint  `gorm:"index;type:bigint unsigned" json:"districtId,omitempty"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Title      string `gorm:"size:100" json:"title"`
	Email      string `gorm:"size:100" json:"email"`
	Phone      string `gorm:"size:30" json:"phone"`
}

func (SchoolContact) TableName() string {
	return "school_contacts"
}

// EnrollmentStat is one school year's demographic snapshot.
type EnrollmentStat struct {
	BaseModel
	SchoolID          uint     `gorm:"index;type:bigint unsigned" json:"schoolId"`
	Year              int      `gorm:"index;not null" json:"year"`
	TotalStudents     int      `gorm:"default:0" json:"totalStudents"`
	PctFreeLunch      *float64 `json:"pctFreeLunch,omitempty"`
	PctEnglishLearner *float64 `json:"pctEnglishLearner,omitempty"`
	PctSpecialEd      *float64 `json:"pctSpecialEd,omitempty"`
}

func (EnrollmentStat) TableName() string {
	return "enrollment_stats"
}

// StaffStat is one school year's staffing snapshot.
type StaffStat struct {
	BaseModel
	SchoolID            uint     `gorm:"index;type:bigint unsigned" json:"schoolId"`
	Year                int      `gorm:"index;not null" json:"year"`
	TeacherCount        int      `gorm:"default:0" json:"teacherCount"`
	StudentTeacherRatio *float64 `json:"studentTeacherRatio,omitempty"`
	PctCertified        *float64 `json:"pctCertified,omitempty"`
}

func (StaffStat) TableName() string {
	return "staff_stats"
}

// SafetyStat is one school year's reported safety incidents.
type SafetyStat struct {
	BaseModel
	SchoolID        uint `gorm:"index;type:bigint unsigned" json:"schoolId"`
	Year            int  `gorm:"index;not null" json:"year"`
	IncidentCount   int  `gorm:"default:0" json:"incidentCount"`
	SuspensionCount int  `gorm:"default:0" json:"suspensionCount"`
	ExpulsionCount  int  `gorm:"default:0" json:"expulsionCount"`
}

func (SafetyStat) TableName() string {
	return "safety_stats"
}

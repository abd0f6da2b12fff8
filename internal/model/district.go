package model

// swagger:model District
type District struct {
	BaseModel
	Name    string `gorm:"size:255;not null;index" json:"name"`
	County  string `gorm:"size:100" json:"county"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:2" json:"state"`
	Phone   string `gorm:"size:30" json:"phone"`
	Website string `gorm:"size:255" json:"website"`
}

func (District) TableName() string {
	return "districts"
}

package model

import "time"

// swagger:model Survey
type Survey struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	IsPublished bool       `gorm:"default:false" json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	CreatorID   uint       `gorm:"index;type:bigint unsigned" json:"creatorId"`
}

func (Survey) TableName() string {
	return "surveys"
}

// SurveyQuestion is the persisted form of a canonical ingested question.
// TypeID carries the closed input-type numbering of the ingest package.
// swagger:model SurveyQuestion
type SurveyQuestion struct {
	BaseModel
	SurveyID      uint                   `gorm:"index;type:bigint unsigned" json:"surveyId"`
	Title         string                 `gorm:"size:500;not null" json:"title"`
	Description   string                 `gorm:"type:text" json:"description"`
	IsRequired    bool                   `gorm:"default:false" json:"isRequired"`
	OrderIndex    int                    `gorm:"default:0" json:"orderIndex"`
	TypeID        int                    `gorm:"not null" json:"typeId"`
	SectionID     *string                `gorm:"size:64" json:"sectionId"`
	AllowMultiple bool                   `gorm:"default:false" json:"allowMultiple"`
	Options       []SurveyQuestionOption `gorm:"foreignKey:QuestionID" json:"options"`
}

func (SurveyQuestion) TableName() string {
	return "survey_questions"
}

// swagger:model SurveyQuestionOption
type SurveyQuestionOption struct {
	BaseModel
	QuestionID    uint     `gorm:"index;type:bigint unsigned" json:"questionId"`
	Text          string   `gorm:"size:500" json:"text"`
	OrderIndex    int      `gorm:"default:0" json:"orderIndex"`
	IsOtherOption bool     `gorm:"default:false" json:"isOtherOption"`
	Score         *float64 `json:"score"`
}

func (SurveyQuestionOption) TableName() string {
	return "survey_question_options"
}

// SurveyResponse is one respondent's submission.
type SurveyResponse struct {
	UUIDBase
	SurveyID    uint           `gorm:"index;type:bigint unsigned" json:"surveyId"`
	SchoolID    *uint          `gorm:"index;type:bigint unsigned" json:"schoolId,omitempty"`
	SubmittedAt time.Time      `json:"submittedAt"`
	Answers     []SurveyAnswer `gorm:"foreignKey:ResponseID" json:"answers,omitempty"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

type SurveyAnswer struct {
	BaseModel
	ResponseID string   `gorm:"index;type:varchar(36)" json:"responseId"`
	QuestionID uint     `gorm:"index;type:bigint unsigned" json:"questionId"`
	OptionID   *uint    `gorm:"type:bigint unsigned" json:"optionId,omitempty"`
	Value      string   `gorm:"type:text" json:"value"`
	Score      *float64 `json:"score,omitempty"`
}

func (SurveyAnswer) TableName() string {
	return "survey_answers"
}

package repository

import (
	"database/sql"
	"time"

	"schoolscope_backend/internal/model"

	"gorm.io/gorm"
)

type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

func (r *SurveyRepository) Create(s *model.Survey) error {
	return r.DB.Create(s).Error
}

func (r *SurveyRepository) FindByID(id uint) (*model.Survey, error) {
	var s model.Survey
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *SurveyRepository) List(page, limit int, published *bool) ([]model.Survey, int64, error) {
	var ss []model.Survey
	var total int64
	query := r.DB.Model(&model.Survey{})
	if published != nil {
		query = query.Where("is_published = ?", *published)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ss).Error
	return ss, total, err
}

func (r *SurveyRepository) Update(s *model.Survey) error {
	return r.DB.Save(s).Error
}

func (r *SurveyRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&model.SurveyQuestion{}).
			Where("survey_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).
				Delete(&model.SurveyQuestionOption{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("survey_id = ?", id).Delete(&model.SurveyQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Survey{}, id).Error
	})
}

// ListScheduledDue returns unpublished surveys whose scheduled time has
// passed.
func (r *SurveyRepository) ListScheduledDue(now time.Time) ([]model.Survey, error) {
	var ss []model.Survey
	err := r.DB.Where("is_published = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", false, now).
		Find(&ss).Error
	return ss, err
}

// Question methods

func (r *SurveyRepository) CreateQuestion(q *model.SurveyQuestion) error {
	return r.DB.Create(q).Error
}

// CreateQuestions inserts a batch of questions with their options atomically.
// Either every question lands or none do.
func (r *SurveyRepository) CreateQuestions(qs []model.SurveyQuestion) error {
	if len(qs) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range qs {
			if err := tx.Create(&qs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SurveyRepository) FindQuestionByID(id uint) (*model.SurveyQuestion, error) {
	var q model.SurveyQuestion
	err := r.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc")
	}).First(&q, id).Error
	return &q, err
}

func (r *SurveyRepository) ListQuestions(surveyID uint) ([]model.SurveyQuestion, error) {
	var qs []model.SurveyQuestion
	err := r.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc")
	}).Where("survey_id = ?", surveyID).Order("order_index asc").Find(&qs).Error
	return qs, err
}

// MaxOrderIndex returns the highest order_index of a survey's questions, or
// -1 when the survey has none.
func (r *SurveyRepository) MaxOrderIndex(surveyID uint) (int, error) {
	var max sql.NullInt64
	err := r.DB.Model(&model.SurveyQuestion{}).
		Where("survey_id = ?", surveyID).
		Select("MAX(order_index)").Scan(&max).Error
	if err != nil {
		return -1, err
	}
	if !max.Valid {
		return -1, nil
	}
	return int(max.Int64), nil
}

// UpdateQuestionOrder assigns order_index by position in ids, atomically.
func (r *SurveyRepository) UpdateQuestionOrder(surveyID uint, ids []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&model.SurveyQuestion{}).
				Where("id = ? AND survey_id = ?", id, surveyID).
				Update("order_index", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SurveyRepository) UpdateQuestion(q *model.SurveyQuestion) error {
	return r.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(q).Error
}

func (r *SurveyRepository) DeleteQuestion(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.SurveyQuestionOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SurveyQuestion{}, id).Error
	})
}

// Response methods

func (r *SurveyRepository) CreateResponse(resp *model.SurveyResponse) error {
	return r.DB.Create(resp).Error
}

func (r *SurveyRepository) ListResponses(surveyID uint, page, limit int) ([]model.SurveyResponse, int64, error) {
	var rs []model.SurveyResponse
	var total int64
	query := r.DB.Model(&model.SurveyResponse{}).Where("survey_id = ?", surveyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("submitted_at desc").Offset(offset).Limit(limit).Find(&rs).Error
	return rs, total, err
}

func (r *SurveyRepository) FindResponseByID(id string) (*model.SurveyResponse, error) {
	var resp model.SurveyResponse
	err := r.DB.Preload("Answers").Where("id = ?", id).First(&resp).Error
	return &resp, err
}

func (r *SurveyRepository) CountResponses(surveyID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.SurveyResponse{}).Where("survey_id = ?", surveyID).Count(&total).Error
	return total, err
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"schoolscope_backend/internal/ingest"
	"schoolscope_backend/internal/model"
	"schoolscope_backend/internal/repository"
	"schoolscope_backend/internal/util"
	"schoolscope_backend/pkg/logger"
	"schoolscope_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SurveyService struct {
	SurveyRepo     *repository.SurveyRepository
	StorageService *StorageService
}

func NewSurveyService(surveyRepo *repository.SurveyRepository, storageService *StorageService) *SurveyService {
	return &SurveyService{
		SurveyRepo:     surveyRepo,
		StorageService: storageService,
	}
}

func (s *SurveyService) Create(survey *model.Survey) error {
	return s.SurveyRepo.Create(survey)
}

func (s *SurveyService) GetByID(id uint) (*model.Survey, error) {
	survey, err := s.SurveyRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSurveyNotFound
	}
	return survey, err
}

func (s *SurveyService) List(page, limit int, published *bool) ([]model.Survey, int64, error) {
	return s.SurveyRepo.List(page, limit, published)
}

func (s *SurveyService) Update(survey *model.Survey) error {
	existing, err := s.GetByID(survey.ID)
	if err != nil {
		return err
	}
	if existing.IsPublished {
		return util.ErrSurveyPublished
	}
	return s.SurveyRepo.Update(survey)
}

func (s *SurveyService) Delete(id uint) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if existing.IsPublished {
		return util.ErrSurveyPublished
	}
	return s.SurveyRepo.Delete(id)
}

// Publish makes a survey live immediately. Publishing is one-way.
func (s *SurveyService) Publish(id uint) error {
	survey, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if survey.IsPublished {
		return util.ErrSurveyPublished
	}
	now := time.Now()
	survey.IsPublished = true
	survey.PublishedAt = &now
	survey.ScheduledAt = nil
	return s.SurveyRepo.Update(survey)
}

// Schedule queues a survey to go live at a future time.
func (s *SurveyService) Schedule(id uint, at time.Time) error {
	survey, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if survey.IsPublished {
		return util.ErrSurveyPublished
	}
	survey.ScheduledAt = &at
	return s.SurveyRepo.Update(survey)
}

// ProcessScheduledPublishes flips due scheduled surveys to published. Run
// periodically from a background ticker.
func (s *SurveyService) ProcessScheduledPublishes() {
	due, err := s.SurveyRepo.ListScheduledDue(time.Now())
	if err != nil {
		logger.Log.Error("Failed to list scheduled surveys", zap.Error(err))
		return
	}
	for i := range due {
		survey := &due[i]
		now := time.Now()
		survey.IsPublished = true
		survey.PublishedAt = &now
		survey.ScheduledAt = nil
		if err := s.SurveyRepo.Update(survey); err != nil {
			logger.Log.Error("Failed to publish scheduled survey",
				zap.Uint("survey_id", survey.ID), zap.Error(err))
			continue
		}
		logger.Log.Info("Published scheduled survey", zap.Uint("survey_id", survey.ID))
	}
}

// Question methods

func (s *SurveyService) Questions(surveyID uint) ([]model.SurveyQuestion, error) {
	if _, err := s.GetByID(surveyID); err != nil {
		return nil, err
	}
	return s.SurveyRepo.ListQuestions(surveyID)
}

func (s *SurveyService) GetQuestion(id uint) (*model.SurveyQuestion, error) {
	q, err := s.SurveyRepo.FindQuestionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	return q, err
}

func (s *SurveyService) AddQuestion(q *model.SurveyQuestion) error {
	survey, err := s.GetByID(q.SurveyID)
	if err != nil {
		return err
	}
	if survey.IsPublished {
		return util.ErrSurveyPublished
	}
	max, err := s.SurveyRepo.MaxOrderIndex(q.SurveyID)
	if err != nil {
		return err
	}
	q.OrderIndex = max + 1
	return s.SurveyRepo.CreateQuestion(q)
}

func (s *SurveyService) UpdateQuestion(q *model.SurveyQuestion) error {
	existing, err := s.GetQuestion(q.ID)
	if err != nil {
		return err
	}
	survey, err := s.GetByID(existing.SurveyID)
	if err != nil {
		return err
	}
	if survey.IsPublished {
		return util.ErrSurveyPublished
	}
	q.SurveyID = existing.SurveyID
	return s.SurveyRepo.UpdateQuestion(q)
}

// ReorderQuestions rewrites a survey's question order to follow ids. Every
// question of the survey must appear exactly once.
func (s *SurveyService) ReorderQuestions(surveyID uint, ids []uint) error {
	survey, err := s.GetByID(surveyID)
	if err != nil {
		return err
	}
	if survey.IsPublished {
		return util.ErrSurveyPublished
	}

	questions, err := s.SurveyRepo.ListQuestions(surveyID)
	if err != nil {
		return err
	}
	if len(ids) != len(questions) {
		return errors.New("reorder list must contain every question of the survey")
	}
	known := make(map[uint]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return util.ErrQuestionNotFound
		}
		delete(known, id)
	}

	return s.SurveyRepo.UpdateQuestionOrder(surveyID, ids)
}

func (s *SurveyService) DeleteQuestion(id uint) error {
	existing, err := s.GetQuestion(id)
	if err != nil {
		return err
	}
	survey, err := s.GetByID(existing.SurveyID)
	if err != nil {
		return err
	}
	if survey.IsPublished {
		return util.ErrSurveyPublished
	}
	return s.SurveyRepo.DeleteQuestion(id)
}

// Import

// ImportResult summarizes a successful question import.
type ImportResult struct {
	Imported   int    `json:"imported"`
	ArchiveURL string `json:"archiveUrl,omitempty"`
}

// ImportCSV ingests a CSV upload into a survey's question list. The parsed
// questions are appended after the survey's existing questions, all-or-none.
// The raw upload is archived to storage for auditing; archive failures are
// logged, not fatal.
func (s *SurveyService) ImportCSV(ctx context.Context, surveyID uint, raw, filename string) (*ImportResult, error) {
	return s.importQuestions(ctx, surveyID, raw, filename, "csv", ingest.ParseCSV)
}

// ImportJSON is ImportCSV for JSON payloads, accepting either an array of
// questions or a single question object.
func (s *SurveyService) ImportJSON(ctx context.Context, surveyID uint, raw, filename string) (*ImportResult, error) {
	return s.importQuestions(ctx, surveyID, raw, filename, "json", ingest.ParseJSON)
}

func (s *SurveyService) importQuestions(
	ctx context.Context,
	surveyID uint,
	raw, filename, format string,
	parse func(string) ([]ingest.Question, error),
) (*ImportResult, error) {
	survey, err := s.GetByID(surveyID)
	if err != nil {
		return nil, err
	}
	if survey.IsPublished {
		return nil, util.ErrSurveyPublished
	}

	parsed, err := parse(raw)
	if err != nil {
		monitoring.QuestionImportCounter.WithLabelValues(format, "rejected").Inc()
		return nil, err
	}

	base, err := s.SurveyRepo.MaxOrderIndex(surveyID)
	if err != nil {
		return nil, err
	}
	offset := base + 1

	questions := make([]model.SurveyQuestion, 0, len(parsed))
	for _, q := range parsed {
		questions = append(questions, toModelQuestion(surveyID, q, offset))
	}

	if err := s.SurveyRepo.CreateQuestions(questions); err != nil {
		monitoring.QuestionImportCounter.WithLabelValues(format, "failed").Inc()
		return nil, err
	}
	monitoring.QuestionImportCounter.WithLabelValues(format, "imported").Inc()

	result := &ImportResult{Imported: len(questions)}
	if s.StorageService != nil {
		archiveName := fmt.Sprintf("imports/%d/%d_%s", surveyID, time.Now().UnixNano(), sanitizeFilename(filename))
		url, err := s.StorageService.Upload(ctx, archiveName, strings.NewReader(raw), int64(len(raw)), contentTypeFor(format))
		if err != nil {
			logger.Log.Warn("Failed to archive import file",
				zap.Uint("survey_id", surveyID), zap.String("filename", filename), zap.Error(err))
		} else {
			result.ArchiveURL = url
		}
	}

	return result, nil
}

// toModelQuestion maps a canonical ingested question onto the persisted
// form, shifting its order index past the survey's existing questions.
func toModelQuestion(surveyID uint, q ingest.Question, offset int) model.SurveyQuestion {
	options := make([]model.SurveyQuestionOption, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, model.SurveyQuestionOption{
			Text:          opt.Text,
			OrderIndex:    opt.OrderIndex,
			IsOtherOption: opt.IsOtherOption,
			Score:         opt.Score,
		})
	}
	return model.SurveyQuestion{
		SurveyID:      surveyID,
		Title:         q.Title,
		Description:   q.Description,
		IsRequired:    q.IsRequired,
		OrderIndex:    offset + q.OrderIndex,
		TypeID:        q.TypeID,
		SectionID:     q.SectionID,
		AllowMultiple: q.AllowMultiple,
		Options:       options,
	}
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "upload"
	}
	return name
}

func contentTypeFor(format string) string {
	if format == "json" {
		return util.MimeJSON
	}
	return util.MimeCSV
}

// Response methods

func (s *SurveyService) SubmitResponse(resp *model.SurveyResponse) error {
	survey, err := s.GetByID(resp.SurveyID)
	if err != nil {
		return err
	}
	if !survey.IsPublished {
		return util.ErrSurveyNotFound
	}
	if resp.SubmittedAt.IsZero() {
		resp.SubmittedAt = time.Now()
	}
	return s.SurveyRepo.CreateResponse(resp)
}

func (s *SurveyService) Responses(surveyID uint, page, limit int) ([]model.SurveyResponse, int64, error) {
	if _, err := s.GetByID(surveyID); err != nil {
		return nil, 0, err
	}
	return s.SurveyRepo.ListResponses(surveyID, page, limit)
}

func (s *SurveyService) GetResponse(id string) (*model.SurveyResponse, error) {
	resp, err := s.SurveyRepo.FindResponseByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResponseNotFound
	}
	return resp, err
}

package controller

import (
	"context"
	"errors"
	"io"
	"time"

	"schoolscope_backend/internal/model"
	"schoolscope_backend/internal/service"
	"schoolscope_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	SurveyService *service.SurveyService
}

func NewSurveyController(surveyService *service.SurveyService) *SurveyController {
	return &SurveyController{SurveyService: surveyService}
}

// swagger:model SurveyRequest
type SurveyRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Create godoc
// @Summary Create a survey
// @Tags surveys
// @Accept  json
// @Produce  json
// @Param body body SurveyRequest true "Survey"
// @Success 201 {object} util.Response{data=model.Survey} "Created"
// @Security BearerAuth
// @Router /api/surveys [post]
func (c *SurveyController) Create(ctx *gin.Context) {
	var req SurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	survey := &model.Survey{
		Title:       req.Title,
		Description: req.Description,
	}
	if claims := util.GetUserFromContext(ctx); claims != nil {
		survey.CreatorID = claims.UserID
	}

	if err := c.SurveyService.Create(survey); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, survey)
}

// List godoc
// @Summary List surveys
// @Tags surveys
// @Produce  json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param published query bool false "Filter by published state"
// @Success 200 {object} util.Response{data=util.PageResponse} "Surveys"
// @Security BearerAuth
// @Router /api/surveys [get]
func (c *SurveyController) List(ctx *gin.Context) {
	page, limit := util.PageParams(ctx.Query("page"), ctx.Query("limit"))

	var published *bool
	if v := ctx.Query("published"); v != "" {
		b := v == "true"
		published = &b
	}

	surveys, total, err := c.SurveyService.List(page, limit, published)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: surveys, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Survey detail
// @Tags surveys
// @Produce  json
// @Param id path int true "Survey ID"
// @Success 200 {object} util.Response{data=model.Survey} "Survey"
// @Failure 404 {object} util.Response "Survey not found"
// @Security BearerAuth
// @Router /api/surveys/{id} [get]
func (c *SurveyController) Get(ctx *gin.Context) {
	survey, err := c.SurveyService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Success(ctx, survey)
}

// Update godoc
// @Summary Update a survey
// @Tags surveys
// @Accept  json
// @Produce  json
// @Param id path int true "Survey ID"
// @Param body body SurveyRequest true "Survey"
// @Success 200 {object} util.Response{data=model.Survey} "Updated"
// @Failure 404 {object} util.Response "Survey not found"
// @Failure 409 {object} util.Response "Survey already published"
// @Security BearerAuth
// @Router /api/surveys/{id} [put]
func (c *SurveyController) Update(ctx *gin.Context) {
	var req SurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	survey, err := c.SurveyService.GetByID(id)
	if err != nil {
		c.respondSurveyError(ctx, err)
		return
	}

	survey.Title = req.Title
	survey.Description = req.Description
	if err := c.SurveyService.Update(survey); err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Success(ctx, survey)
}

// Delete godoc
// @Summary Delete a survey
// @Tags surveys
// @Produce  json
// @Param id path int true "Survey ID"
// @Success 200 {object} util.Response "Deleted"
// @Failure 404 {object} util.Response "Survey not found"
// @Failure 409 {object} util.Response "Survey already published"
// @Security BearerAuth
// @Router /api/surveys/{id} [delete]
func (c *SurveyController) Delete(ctx *gin.Context) {
	if err := c.SurveyService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Publish godoc
// @Summary Publish a survey immediately
// @Tags surveys
// @Produce  json
// @Param id path int true "Survey ID"
// @Success 200 {object} util.Response "Published"
// @Failure 404 {object} util.Response "Survey not found"
// @Failure 409 {object} util.Response "Survey already published"
// @Security BearerAuth
// @Router /api/surveys/{id}/publish [post]
func (c *SurveyController) Publish(ctx *gin.Context) {
	if err := c.SurveyService.Publish(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// swagger:model ScheduleRequest
type ScheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// Schedule godoc
// @Summary Schedule a survey to publish later
// @Tags surveys
// @Accept  json
// @Produce  json
// @Param id path int true "Survey ID"
// @Param body body ScheduleRequest true "Publish time"
// @Success 200 {object} util.Response "Scheduled"
// @Failure 404 {object} util.Response "Survey not found"
// @Failure 409 {object} util.Response "Survey already published"
// @Security BearerAuth
// @Router /api/surveys/{id}/schedule [post]
func (c *SurveyController) Schedule(ctx *gin.Context) {
	var req ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SurveyService.Schedule(util.MustParseUint(ctx.Param("id")), req.ScheduledAt); err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Questions godoc
// @Summary Questions of a survey
// @Tags surveys
// @Produce  json
// @Param id path int true "Survey ID"
// @Success 200 {object} util.Response{data=[]model.SurveyQuestion} "Questions"
// @Failure 404 {object} util.Response "Survey not found"
// @Security BearerAuth
// @Router /api/surveys/{id}/questions [get]
func (c *SurveyController) Questions(ctx *gin.Context) {
	questions, err := c.SurveyService.Questions(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// swagger:model QuestionRequest
type QuestionRequest struct {
	Title         string                       `json:"title" binding:"required"`
	Description   string                       `json:"description"`
	IsRequired    bool                         `json:"is_required"`
	TypeID        int                          `json:"type_id" binding:"required,min=1,max=10"`
	SectionID     *string                      `json:"section_id"`
	AllowMultiple bool                         `json:"allow_multiple"`
	Options       []model.SurveyQuestionOption `json:"options"`
}

// AddQuestion godoc
// @Summary Add a question to a survey
// @Tags surveys
// @Accept  json
// @Produce  json
// @Param id path int true "Survey ID"
// @Param body body QuestionRequest true "Question"
// @Success 201 {object} util.Response{data=model.SurveyQuestion} "Created"
// @Failure 404 {object} util.Response "Survey not found"
// @Failure 409 {object} util.Response "Survey already published"
// @Security BearerAuth
// @Router /api/surveys/{id}/questions [post]
func (c *SurveyController) AddQuestion(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := &model.SurveyQuestion{
		SurveyID:      util.MustParseUint(ctx.Param("id")),
		Title:         req.Title,
		Description:   req.Description,
		IsRequired:    req.IsRequired,
		TypeID:        req.TypeID,
		SectionID:     req.SectionID,
		AllowMultiple: req.AllowMultiple,
		Options:       req.Options,
	}

	if err := c.SurveyService.AddQuestion(question); err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags surveys
// @Accept  json
// @Produce  json
// @Param id path int true "Question ID"
// @Param body body QuestionRequest true "Question"
// @Success 200 {object} util.Response{data=model.SurveyQuestion} "Updated"
// @Failure 404 {object} util.Response "Question not found"
// @Failure 409 {object} util.Response "Survey already published"
// @Security BearerAuth
// @Router /api/questions/{id} [put]
func (c *SurveyController) UpdateQuestion(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.SurveyService.GetQuestion(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		c.respondSurveyError(ctx, err)
		return
	}

	question.Title = req.Title
	question.Description = req.Description
	question.IsRequired = req.IsRequired
	question.TypeID = req.TypeID
	question.SectionID = req.SectionID
	question.AllowMultiple = req.AllowMultiple
	question.Options = req.Options

	if err := c.SurveyService.UpdateQuestion(question); err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// swagger:model ReorderRequest
type ReorderRequest struct {
	QuestionIDs []uint `json:"question_ids" binding:"required"`
}

// ReorderQuestions godoc
// @Summary Reorder a survey's questions
// @Description The supplied list must contain every question of the survey exactly once
// @Tags surveys
// @Accept  json
// @Produce  json
// @Param id path int true "Survey ID"
// @Param body body ReorderRequest true "Question IDs in the new order"
// @Success 200 {object} util.Response "Reordered"
// @Failure 400 {object} util.Response "Incomplete list"
// @Failure 404 {object} util.Response "Survey not found"
// @Failure 409 {object} util.Response "Survey already published"
// @Security BearerAuth
// @Router /api/surveys/{id}/questions/reorder [put]
func (c *SurveyController) ReorderQuestions(ctx *gin.Context) {
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.SurveyService.ReorderQuestions(util.MustParseUint(ctx.Param("id")), req.QuestionIDs)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSurveyNotFound), errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSurveyPublished):
			util.Error(ctx, 409, util.ErrSurveyPublished.Error())
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, nil)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags surveys
// @Produce  json
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response "Deleted"
// @Failure 404 {object} util.Response "Question not found"
// @Failure 409 {object} util.Response "Survey already published"
// @Security BearerAuth
// @Router /api/questions/{id} [delete]
func (c *SurveyController) DeleteQuestion(ctx *gin.Context) {
	if err := c.SurveyService.DeleteQuestion(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ImportCSVQuestions godoc
// @Summary Import questions from a CSV file
// @Description Accepts a multipart upload or a raw CSV body and appends the parsed questions to the survey. Parse and validation problems come back as 400 with the reason; nothing is saved on failure.
// @Tags surveys
// @Accept  multipart/form-data
// @Produce  json
// @Param id path int true "Survey ID"
// @Param file formData file false "CSV file"
// @Success 200 {object} util.Response{data=service.ImportResult} "Imported"
// @Failure 400 {object} util.Response "Unparseable input"
// @Failure 404 {object} util.Response "Survey not found"
// @Failure 409 {object} util.Response "Survey already published"
// @Security BearerAuth
// @Router /api/surveys/{id}/questions/import/csv [post]
func (c *SurveyController) ImportCSVQuestions(ctx *gin.Context) {
	c.importQuestions(ctx, c.SurveyService.ImportCSV)
}

// ImportJSONQuestions godoc
// @Summary Import questions from a JSON file
// @Description Accepts a multipart upload or a raw JSON body, either an array of questions or a single question object
// @Tags surveys
// @Accept  multipart/form-data
// @Produce  json
// @Param id path int true "Survey ID"
// @Param file formData file false "JSON file"
// @Success 200 {object} util.Response{data=service.ImportResult} "Imported"
// @Failure 400 {object} util.Response "Unparseable input"
// @Failure 404 {object} util.Response "Survey not found"
// @Failure 409 {object} util.Response "Survey already published"
// @Security BearerAuth
// @Router /api/surveys/{id}/questions/import/json [post]
func (c *SurveyController) ImportJSONQuestions(ctx *gin.Context) {
	c.importQuestions(ctx, c.SurveyService.ImportJSON)
}

type importFunc func(ctx context.Context, surveyID uint, raw, filename string) (*service.ImportResult, error)

// importQuestions reads the payload from the "file" form field when present,
// falling back to the raw request body, and hands it to the format's
// importer.
func (c *SurveyController) importQuestions(ctx *gin.Context, importer importFunc) {
	var raw []byte
	filename := "body"

	if fileHeader, err := ctx.FormFile("file"); err == nil {
		if !util.HasAllowedExtension(fileHeader.Filename, util.AllowedImportExtensions) {
			util.BadRequest(ctx, "unsupported file type, expected .csv or .json")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer file.Close()
		raw, err = io.ReadAll(file)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		filename = fileHeader.Filename
	} else {
		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		raw = body
	}

	result, err := importer(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), string(raw), filename)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSurveyNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSurveyPublished):
			util.Error(ctx, 409, util.ErrSurveyPublished.Error())
		default:
			// Parse and validation failures carry their reason in the
			// error text.
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, result)
}

// SubmitResponse godoc
// @Summary Submit a survey response
// @Tags surveys
// @Accept  json
// @Produce  json
// @Param id path int true "Survey ID"
// @Param body body model.SurveyResponse true "Response"
// @Success 201 {object} util.Response{data=object} "Submitted"
// @Failure 404 {object} util.Response "Survey not found or not published"
// @Router /api/surveys/{id}/responses [post]
func (c *SurveyController) SubmitResponse(ctx *gin.Context) {
	var resp model.SurveyResponse
	if err := ctx.ShouldBindJSON(&resp); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp.SurveyID = util.MustParseUint(ctx.Param("id"))
	if err := c.SurveyService.SubmitResponse(&resp); err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"id": resp.ID})
}

// Responses godoc
// @Summary List survey responses
// @Tags surveys
// @Produce  json
// @Param id path int true "Survey ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse} "Responses"
// @Failure 404 {object} util.Response "Survey not found"
// @Security BearerAuth
// @Router /api/surveys/{id}/responses [get]
func (c *SurveyController) Responses(ctx *gin.Context) {
	page, limit := util.PageParams(ctx.Query("page"), ctx.Query("limit"))
	responses, total, err := c.SurveyService.Responses(util.MustParseUint(ctx.Param("id")), page, limit)
	if err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: responses, Total: total, Page: page, Limit: limit})
}

// GetResponse godoc
// @Summary Response detail with answers
// @Tags surveys
// @Produce  json
// @Param id path string true "Response ID"
// @Success 200 {object} util.Response{data=model.SurveyResponse} "Response"
// @Failure 404 {object} util.Response "Response not found"
// @Security BearerAuth
// @Router /api/responses/{id} [get]
func (c *SurveyController) GetResponse(ctx *gin.Context) {
	resp, err := c.SurveyService.GetResponse(ctx.Param("id"))
	if err != nil {
		c.respondSurveyError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

func (c *SurveyController) respondSurveyError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSurveyNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrResponseNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrSurveyPublished):
		util.Error(ctx, 409, util.ErrSurveyPublished.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

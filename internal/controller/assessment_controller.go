package controller

import (
	"errors"
	"strconv"

	"schoolscope_backend/internal/model"
	"schoolscope_backend/internal/service"
	"schoolscope_backend/internal/stats"
	"schoolscope_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// criteriaFromQuery reads the optional filter dimensions. grade_id=-1
// selects the all-grades aggregate rows.
func criteriaFromQuery(ctx *gin.Context) stats.Criteria {
	return stats.Criteria{
		Year:       util.QueryInt(ctx.Query("year")),
		SubjectID:  util.QueryInt(ctx.Query("subject_id")),
		SubgroupID: util.QueryInt(ctx.Query("subgroup_id")),
		GradeID:    util.QueryInt(ctx.Query("grade_id")),
	}
}

// DistrictResults godoc
// @Summary District assessment results
// @Description Filtered measurements plus the grade/subgroup facet lists and the district's statewide rank
// @Tags assessments
// @Produce  json
// @Param id path int true "District ID"
// @Param year query int false "School year"
// @Param subject_id query int false "Subject"
// @Param subgroup_id query int false "Subgroup"
// @Param grade_id query int false "Grade, -1 for the all-grades aggregate"
// @Success 200 {object} util.Response{data=service.DistrictResults} "Results"
// @Failure 404 {object} util.Response "District not found"
// @Router /api/districts/{id}/assessments [get]
func (c *AssessmentController) DistrictResults(ctx *gin.Context) {
	results, err := c.AssessmentService.Results(ctx.Request.Context(),
		util.MustParseUint(ctx.Param("id")), criteriaFromQuery(ctx))
	if err != nil {
		if errors.Is(err, util.ErrDistrictNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, results)
}

// DistrictRank godoc
// @Summary District statewide rank
// @Tags assessments
// @Produce  json
// @Param id path int true "District ID"
// @Param year query int false "School year"
// @Param subject_id query int false "Subject"
// @Param subgroup_id query int false "Subgroup"
// @Param grade_id query int false "Grade, -1 for the all-grades aggregate"
// @Success 200 {object} util.Response{data=stats.DistrictRank} "Rank"
// @Failure 404 {object} util.Response "District not found"
// @Router /api/districts/{id}/assessments/rank [get]
func (c *AssessmentController) DistrictRank(ctx *gin.Context) {
	rank, err := c.AssessmentService.Rank(util.MustParseUint(ctx.Param("id")), criteriaFromQuery(ctx))
	if err != nil {
		if errors.Is(err, util.ErrDistrictNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, rank)
}

// DistrictGrades godoc
// @Summary Grade facets of a district's measurements
// @Description Distinct grades under the other filter criteria; disabled facets have only suppressed data
// @Tags assessments
// @Produce  json
// @Param id path int true "District ID"
// @Param year query int false "School year"
// @Param subject_id query int false "Subject"
// @Param subgroup_id query int false "Subgroup"
// @Success 200 {object} util.Response{data=[]stats.Facet} "Grades"
// @Failure 404 {object} util.Response "District not found"
// @Router /api/districts/{id}/assessments/grades [get]
func (c *AssessmentController) DistrictGrades(ctx *gin.Context) {
	facets, err := c.AssessmentService.GradeFacets(util.MustParseUint(ctx.Param("id")), criteriaFromQuery(ctx))
	if err != nil {
		if errors.Is(err, util.ErrDistrictNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, facets)
}

// DistrictSubgroups godoc
// @Summary Subgroup facets of a district's measurements
// @Tags assessments
// @Produce  json
// @Param id path int true "District ID"
// @Param year query int false "School year"
// @Param subject_id query int false "Subject"
// @Param grade_id query int false "Grade, -1 for the all-grades aggregate"
// @Success 200 {object} util.Response{data=[]stats.Facet} "Subgroups"
// @Failure 404 {object} util.Response "District not found"
// @Router /api/districts/{id}/assessments/subgroups [get]
func (c *AssessmentController) DistrictSubgroups(ctx *gin.Context) {
	facets, err := c.AssessmentService.SubgroupFacets(util.MustParseUint(ctx.Param("id")), criteriaFromQuery(ctx))
	if err != nil {
		if errors.Is(err, util.ErrDistrictNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, facets)
}

// SchoolResults godoc
// @Summary School assessment results
// @Tags assessments
// @Produce  json
// @Param id path int true "School ID"
// @Param year query int false "School year"
// @Param subject_id query int false "Subject"
// @Param subgroup_id query int false "Subgroup"
// @Param grade_id query int false "Grade, -1 for the all-grades aggregate"
// @Success 200 {object} util.Response{data=[]model.SchoolMeasurement} "Results"
// @Failure 404 {object} util.Response "School not found"
// @Router /api/schools/{id}/assessments [get]
func (c *AssessmentController) SchoolResults(ctx *gin.Context) {
	results, err := c.AssessmentService.SchoolResults(util.MustParseUint(ctx.Param("id")), criteriaFromQuery(ctx))
	if err != nil {
		if errors.Is(err, util.ErrSchoolNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, results)
}

// StateResults godoc
// @Summary Statewide baseline results
// @Tags assessments
// @Produce  json
// @Param year query int false "School year"
// @Param subject_id query int false "Subject"
// @Param subgroup_id query int false "Subgroup"
// @Param grade_id query int false "Grade, -1 for the all-grades aggregate"
// @Success 200 {object} util.Response{data=[]model.StateMeasurement} "Results"
// @Router /api/assessments/state [get]
func (c *AssessmentController) StateResults(ctx *gin.Context) {
	results, err := c.AssessmentService.StateResults(criteriaFromQuery(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// Years godoc
// @Summary Available assessment years
// @Tags assessments
// @Produce  json
// @Success 200 {object} util.Response{data=[]int} "Years"
// @Router /api/assessments/years [get]
func (c *AssessmentController) Years(ctx *gin.Context) {
	years, err := c.AssessmentService.Years()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, years)
}

// swagger:model DistrictMeasurementImport
type DistrictMeasurementImport struct {
	Year int                         `json:"year" binding:"required"`
	Rows []model.DistrictMeasurement `json:"rows" binding:"required"`
}

// ImportDistrictMeasurements godoc
// @Summary Load a district's measurements for one year
// @Description Replaces the district's existing rows for that year
// @Tags assessments
// @Accept  json
// @Produce  json
// @Param id path int true "District ID"
// @Param body body DistrictMeasurementImport true "Measurement rows"
// @Success 200 {object} util.Response{data=object} "Loaded"
// @Failure 404 {object} util.Response "District not found"
// @Security BearerAuth
// @Router /api/admin/districts/{id}/measurements [put]
func (c *AssessmentController) ImportDistrictMeasurements(ctx *gin.Context) {
	var req DistrictMeasurementImport
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	districtID := util.MustParseUint(ctx.Param("id"))
	if err := c.AssessmentService.ReplaceDistrictYear(ctx.Request.Context(), districtID, req.Year, req.Rows); err != nil {
		if errors.Is(err, util.ErrDistrictNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"loaded": len(req.Rows), "year": strconv.Itoa(req.Year)})
}

// swagger:model StateMeasurementImport
type StateMeasurementImport struct {
	Year int                      `json:"year" binding:"required"`
	Rows []model.StateMeasurement `json:"rows" binding:"required"`
}

// ImportStateMeasurements godoc
// @Summary Load the statewide measurements for one year
// @Tags assessments
// @Accept  json
// @Produce  json
// @Param body body StateMeasurementImport true "Measurement rows"
// @Success 200 {object} util.Response{data=object} "Loaded"
// @Security BearerAuth
// @Router /api/admin/state/measurements [put]
func (c *AssessmentController) ImportStateMeasurements(ctx *gin.Context) {
	var req StateMeasurementImport
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AssessmentService.ReplaceStateYear(ctx.Request.Context(), req.Year, req.Rows); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"loaded": len(req.Rows)})
}

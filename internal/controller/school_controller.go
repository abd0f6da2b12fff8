package controller

import (
	"errors"

	"schoolscope_backend/internal/model"
	"schoolscope_backend/internal/service"
	"schoolscope_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SchoolController struct {
	SchoolService *service.SchoolService
}

func NewSchoolController(schoolService *service.SchoolService) *SchoolController {
	return &SchoolController{SchoolService: schoolService}
}

// List godoc
// @Summary List schools
// @Tags schools
// @Produce  json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param district_id query int false "Filter by district"
// @Param level query string false "Filter by level"
// @Param search query string false "Name substring"
// @Success 200 {object} util.Response{data=util.PageResponse} "Schools"
// @Router /api/schools [get]
func (c *SchoolController) List(ctx *gin.Context) {
	page, limit := util.PageParams(ctx.Query("page"), ctx.Query("limit"))
	districtID := util.MustParseUint(ctx.Query("district_id"))
	schools, total, err := c.SchoolService.List(page, limit, districtID, ctx.Query("level"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: schools, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary School profile
// @Description School detail with its enrollment, staffing and safety series
// @Tags schools
// @Produce  json
// @Param id path int true "School ID"
// @Success 200 {object} util.Response{data=service.SchoolProfile} "Profile"
// @Failure 404 {object} util.Response "School not found"
// @Router /api/schools/{id} [get]
func (c *SchoolController) Get(ctx *gin.Context) {
	profile, err := c.SchoolService.Profile(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrSchoolNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, profile)
}

// Contacts godoc
// @Summary Contacts of a school
// @Tags schools
// @Produce  json
// @Param id path int true "School ID"
// @Success 200 {object} util.Response{data=[]model.SchoolContact} "Contacts"
// @Failure 404 {object} util.Response "School not found"
// @Router /api/schools/{id}/contacts [get]
func (c *SchoolController) Contacts(ctx *gin.Context) {
	contacts, err := c.SchoolService.Contacts(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrSchoolNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, contacts)
}

// Create godoc
// @Summary Create a school
// @Tags schools
// @Accept  json
// @Produce  json
// @Param body body model.School true "School"
// @Success 201 {object} util.Response{data=model.School} "Created"
// @Failure 404 {object} util.Response "District not found"
// @Security BearerAuth
// @Router /api/schools [post]
func (c *SchoolController) Create(ctx *gin.Context) {
	var school model.School
	if err := ctx.ShouldBindJSON(&school); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.SchoolService.Create(&school); err != nil {
		if errors.Is(err, util.ErrDistrictNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, school)
}

// Update godoc
// @Summary Update a school
// @Tags schools
// @Accept  json
// @Produce  json
// @Param id path int true "School ID"
// @Param body body model.School true "School"
// @Success 200 {object} util.Response{data=model.School} "Updated"
// @Failure 404 {object} util.Response "School not found"
// @Security BearerAuth
// @Router /api/schools/{id} [put]
func (c *SchoolController) Update(ctx *gin.Context) {
	var school model.School
	if err := ctx.ShouldBindJSON(&school); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	school.ID = util.MustParseUint(ctx.Param("id"))
	if err := c.SchoolService.Update(&school); err != nil {
		if errors.Is(err, util.ErrSchoolNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, school)
}

// Delete godoc
// @Summary Delete a school
// @Tags schools
// @Produce  json
// @Param id path int true "School ID"
// @Success 200 {object} util.Response "Deleted"
// @Failure 404 {object} util.Response "School not found"
// @Security BearerAuth
// @Router /api/schools/{id} [delete]
func (c *SchoolController) Delete(ctx *gin.Context) {
	if err := c.SchoolService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrSchoolNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

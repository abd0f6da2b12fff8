package controller

import (
	"errors"

	"schoolscope_backend/internal/model"
	"schoolscope_backend/internal/service"
	"schoolscope_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DistrictController struct {
	DistrictService *service.DistrictService
}

func NewDistrictController(districtService *service.DistrictService) *DistrictController {
	return &DistrictController{DistrictService: districtService}
}

// List godoc
// @Summary List districts
// @Tags districts
// @Produce  json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param county query string false "Filter by county"
// @Param search query string false "Name substring"
// @Success 200 {object} util.Response{data=util.PageResponse} "Districts"
// @Router /api/districts [get]
func (c *DistrictController) List(ctx *gin.Context) {
	page, limit := util.PageParams(ctx.Query("page"), ctx.Query("limit"))
	districts, total, err := c.DistrictService.List(page, limit, ctx.Query("county"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: districts, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary District detail
// @Tags districts
// @Produce  json
// @Param id path int true "District ID"
// @Success 200 {object} util.Response{data=model.District} "District"
// @Failure 404 {object} util.Response "District not found"
// @Router /api/districts/{id} [get]
func (c *DistrictController) Get(ctx *gin.Context) {
	district, err := c.DistrictService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrDistrictNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, district)
}

// Schools godoc
// @Summary Schools of a district
// @Tags districts
// @Produce  json
// @Param id path int true "District ID"
// @Success 200 {object} util.Response{data=[]model.School} "Schools"
// @Failure 404 {object} util.Response "District not found"
// @Router /api/districts/{id}/schools [get]
func (c *DistrictController) Schools(ctx *gin.Context) {
	schools, err := c.DistrictService.Schools(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrDistrictNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, schools)
}

// Contacts godoc
// @Summary Contacts of a district
// @Tags districts
// @Produce  json
// @Param id path int true "District ID"
// @Success 200 {object} util.Response{data=[]model.SchoolContact} "Contacts"
// @Failure 404 {object} util.Response "District not found"
// @Router /api/districts/{id}/contacts [get]
func (c *DistrictController) Contacts(ctx *gin.Context) {
	contacts, err := c.DistrictService.Contacts(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrDistrictNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, contacts)
}

// Create godoc
// @Summary Create a district
// @Tags districts
// @Accept  json
// @Produce  json
// @Param body body model.District true "District"
// @Success 201 {object} util.Response{data=model.District} "Created"
// @Security BearerAuth
// @Router /api/districts [post]
func (c *DistrictController) Create(ctx *gin.Context) {
	var district model.District
	if err := ctx.ShouldBindJSON(&district); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.DistrictService.Create(&district); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, district)
}

// Update godoc
// @Summary Update a district
// @Tags districts
// @Accept  json
// @Produce  json
// @Param id path int true "District ID"
// @Param body body model.District true "District"
// @Success 200 {object} util.Response{data=model.District} "Updated"
// @Failure 404 {object} util.Response "District not found"
// @Security BearerAuth
// @Router /api/districts/{id} [put]
func (c *DistrictController) Update(ctx *gin.Context) {
	var district model.District
	if err := ctx.ShouldBindJSON(&district); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	district.ID = util.MustParseUint(ctx.Param("id"))
	if err := c.DistrictService.Update(&district); err != nil {
		if errors.Is(err, util.ErrDistrictNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, district)
}

// Delete godoc
// @Summary Delete a district
// @Tags districts
// @Produce  json
// @Param id path int true "District ID"
// @Success 200 {object} util.Response "Deleted"
// @Failure 404 {object} util.Response "District not found"
// @Security BearerAuth
// @Router /api/districts/{id} [delete]
func (c *DistrictController) Delete(ctx *gin.Context) {
	if err := c.DistrictService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrDistrictNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"climate-registry/internal/dto"
	"climate-registry/internal/service"
	"climate-registry/pkg/responses"
	"climate-registry/pkg/utils"
)

type LookupHandler struct {
	lookupService service.LookupService
}

func NewLookupHandler(lookupService service.LookupService) *LookupHandler {
	return &LookupHandler{
		lookupService: lookupService,
	}
}

// CreateAgency creates an implementing agency
// @Summary Create agency
// @Tags Lookup
// @Accept json
// @Produce json
// @Param request body dto.CreateAgencyRequest true "create agency request"
// @Success 200 {object} responses.Response{data=dto.AgencyResponse}
// @Router /api/v1/agencies [post]
func (h *LookupHandler) CreateAgency(c *gin.Context) {
	var req dto.CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	agency, err := h.lookupService.CreateAgency(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, agency)
}

// ListAgencies lists all agencies ordered by name
// @Summary List agencies
// @Tags Lookup
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.AgencyResponse}
// @Router /api/v1/agencies [get]
func (h *LookupHandler) ListAgencies(c *gin.Context) {
	agencies, err := h.lookupService.ListAgencies()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, agencies)
}

// UpdateAgency partially updates an agency
// @Summary Update agency
// @Tags Lookup
// @Accept json
// @Produce json
// @Param id path int64 true "agency ID"
// @Param request body dto.UpdateAgencyRequest true "update agency request"
// @Success 200 {object} responses.Response{data=dto.AgencyResponse}
// @Router /api/v1/agencies/{id} [put]
func (h *LookupHandler) UpdateAgency(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid agency ID", err.Error())
		return
	}

	var req dto.UpdateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	agency, err := h.lookupService.UpdateAgency(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, agency)
}

// DeleteAgency soft-deletes an agency
// @Summary Delete agency
// @Tags Lookup
// @Produce json
// @Param id path int64 true "agency ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/agencies/{id} [delete]
func (h *LookupHandler) DeleteAgency(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid agency ID", err.Error())
		return
	}

	if err := h.lookupService.DeleteAgency(param.ID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// CreateLocation creates a geographic location
// @Summary Create location
// @Tags Lookup
// @Accept json
// @Produce json
// @Param request body dto.CreateLocationRequest true "create location request"
// @Success 200 {object} responses.Response{data=dto.LocationResponse}
// @Router /api/v1/locations [post]
func (h *LookupHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	location, err := h.lookupService.CreateLocation(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, location)
}

// ListLocations lists all locations ordered by name
// @Summary List locations
// @Tags Lookup
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.LocationResponse}
// @Router /api/v1/locations [get]
func (h *LookupHandler) ListLocations(c *gin.Context) {
	locations, err := h.lookupService.ListLocations()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, locations)
}

// UpdateLocation partially updates a location
// @Summary Update location
// @Tags Lookup
// @Accept json
// @Produce json
// @Param id path int64 true "location ID"
// @Param request body dto.UpdateLocationRequest true "update location request"
// @Success 200 {object} responses.Response{data=dto.LocationResponse}
// @Router /api/v1/locations/{id} [put]
func (h *LookupHandler) UpdateLocation(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid location ID", err.Error())
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	location, err := h.lookupService.UpdateLocation(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, location)
}

// DeleteLocation soft-deletes a location
// @Summary Delete location
// @Tags Lookup
// @Produce json
// @Param id path int64 true "location ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/locations/{id} [delete]
func (h *LookupHandler) DeleteLocation(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid location ID", err.Error())
		return
	}

	if err := h.lookupService.DeleteLocation(param.ID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// CreateFundingSource creates a funding source
// @Summary Create funding source
// @Tags Lookup
// @Accept json
// @Produce json
// @Param request body dto.CreateFundingSourceRequest true "create funding source request"
// @Success 200 {object} responses.Response{data=dto.FundingSourceResponse}
// @Router /api/v1/funding-sources [post]
func (h *LookupHandler) CreateFundingSource(c *gin.Context) {
	var req dto.CreateFundingSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	source, err := h.lookupService.CreateFundingSource(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, source)
}

// ListFundingSources lists all funding sources ordered by name
// @Summary List funding sources
// @Tags Lookup
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.FundingSourceResponse}
// @Router /api/v1/funding-sources [get]
func (h *LookupHandler) ListFundingSources(c *gin.Context) {
	sources, err := h.lookupService.ListFundingSources()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, sources)
}

// UpdateFundingSource partially updates a funding source
// @Summary Update funding source
// @Tags Lookup
// @Accept json
// @Produce json
// @Param id path int64 true "funding source ID"
// @Param request body dto.UpdateFundingSourceRequest true "update funding source request"
// @Success 200 {object} responses.Response{data=dto.FundingSourceResponse}
// @Router /api/v1/funding-sources/{id} [put]
func (h *LookupHandler) UpdateFundingSource(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid funding source ID", err.Error())
		return
	}

	var req dto.UpdateFundingSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	source, err := h.lookupService.UpdateFundingSource(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, source)
}

// DeleteFundingSource soft-deletes a funding source
// @Summary Delete funding source
// @Tags Lookup
// @Produce json
// @Param id path int64 true "funding source ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/funding-sources/{id} [delete]
func (h *LookupHandler) DeleteFundingSource(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid funding source ID", err.Error())
		return
	}

	if err := h.lookupService.DeleteFundingSource(param.ID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// CreateFocalArea creates a thematic focal area
// @Summary Create focal area
// @Tags Lookup
// @Accept json
// @Produce json
// @Param request body dto.CreateFocalAreaRequest true "create focal area request"
// @Success 200 {object} responses.Response{data=dto.FocalAreaResponse}
// @Router /api/v1/focal-areas [post]
func (h *LookupHandler) CreateFocalArea(c *gin.Context) {
	var req dto.CreateFocalAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	area, err := h.lookupService.CreateFocalArea(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, area)
}

// ListFocalAreas lists all focal areas ordered by name
// @Summary List focal areas
// @Tags Lookup
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.FocalAreaResponse}
// @Router /api/v1/focal-areas [get]
func (h *LookupHandler) ListFocalAreas(c *gin.Context) {
	areas, err := h.lookupService.ListFocalAreas()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, areas)
}

// UpdateFocalArea partially updates a focal area
// @Summary Update focal area
// @Tags Lookup
// @Accept json
// @Produce json
// @Param id path int64 true "focal area ID"
// @Param request body dto.UpdateFocalAreaRequest true "update focal area request"
// @Success 200 {object} responses.Response{data=dto.FocalAreaResponse}
// @Router /api/v1/focal-areas/{id} [put]
func (h *LookupHandler) UpdateFocalArea(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid focal area ID", err.Error())
		return
	}

	var req dto.UpdateFocalAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	area, err := h.lookupService.UpdateFocalArea(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, area)
}

// DeleteFocalArea soft-deletes a focal area
// @Summary Delete focal area
// @Tags Lookup
// @Produce json
// @Param id path int64 true "focal area ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/focal-areas/{id} [delete]
func (h *LookupHandler) DeleteFocalArea(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid focal area ID", err.Error())
		return
	}

	if err := h.lookupService.DeleteFocalArea(param.ID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

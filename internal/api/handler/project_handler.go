package handler

import (
	"github.com/gin-gonic/gin"

	"climate-registry/internal/dto"
	"climate-registry/internal/service"
	"climate-registry/pkg/responses"
	"climate-registry/pkg/utils"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create registers a new project
// @Summary Create project
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "create project request"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// GetByID returns a project with its relations hydrated
// @Summary Get project detail
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int64 true "project ID"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid project ID", err.Error())
		return
	}

	project, err := h.projectService.GetByID(param.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// List returns a filtered, paginated project list
// @Summary List projects
// @Tags Project
// @Accept json
// @Produce json
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Param keyword query string false "title keyword"
// @Param project_type query string false "adaptation/mitigation/cross_cutting"
// @Param status query string false "project status"
// @Param fiscal_year query string false "approval fiscal year"
// @Param sector query string false "sector"
// @Success 200 {object} responses.Response{data=dto.PageResponse}
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var query dto.ProjectListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", err.Error())
		return
	}

	projects, total, err := h.projectService.List(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, dto.NewPageResponse(projects, total, query.GetPage(), query.GetPageSize()))
}

// Update applies a partial update to a project
// @Summary Update project
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int64 true "project ID"
// @Param request body dto.UpdateProjectRequest true "update project request"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid project ID", err.Error())
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Update(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// Delete removes a project and all of its dependent rows
// @Summary Delete project
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int64 true "project ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid project ID", err.Error())
		return
	}

	if err := h.projectService.Delete(param.ID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

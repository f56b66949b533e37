package handler

import (
	"github.com/gin-gonic/gin"

	"climate-registry/internal/dto"
	"climate-registry/internal/service"
	"climate-registry/pkg/responses"
	"climate-registry/pkg/utils"
)

type SubmissionHandler struct {
	submissionService service.SubmissionService
	approvalService   service.ApprovalService
}

func NewSubmissionHandler(submissionService service.SubmissionService, approvalService service.ApprovalService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		approvalService:   approvalService,
	}
}

// Submit accepts a public project submission into the pending queue
// @Summary Submit project for review
// @Tags Submission
// @Accept json
// @Produce json
// @Param request body dto.SubmitProjectRequest true "project submission"
// @Success 200 {object} responses.Response{data=dto.SubmitProjectResponse}
// @Router /api/v1/submissions [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req dto.SubmitProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	resp, err := h.submissionService.Submit(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// List returns all pending submissions, newest first
// @Summary List pending submissions
// @Tags Submission
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.PendingProjectResponse}
// @Router /api/v1/submissions [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	items, err := h.submissionService.List()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, items)
}

// GetByID returns one pending submission
// @Summary Get pending submission detail
// @Tags Submission
// @Accept json
// @Produce json
// @Param id path int64 true "submission ID"
// @Success 200 {object} responses.Response{data=dto.PendingProjectResponse}
// @Router /api/v1/submissions/{id} [get]
func (h *SubmissionHandler) GetByID(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid submission ID", err.Error())
		return
	}

	item, err := h.submissionService.GetByID(param.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, item)
}

// Approve materializes a pending submission into the registry
// @Summary Approve pending submission
// @Tags Submission
// @Accept json
// @Produce json
// @Param id path int64 true "submission ID"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/v1/submissions/{id}/approve [post]
func (h *SubmissionHandler) Approve(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid submission ID", err.Error())
		return
	}

	project, err := h.approvalService.Approve(param.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// Reject discards a pending submission
// @Summary Reject pending submission
// @Tags Submission
// @Accept json
// @Produce json
// @Param id path int64 true "submission ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/submissions/{id}/reject [post]
func (h *SubmissionHandler) Reject(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid submission ID", err.Error())
		return
	}

	if err := h.approvalService.Reject(param.ID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

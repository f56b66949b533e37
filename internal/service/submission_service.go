package service

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"climate-registry/internal/dto"
	"climate-registry/internal/model"
	"climate-registry/internal/repository"
	"climate-registry/pkg/constants"
	pkgErrors "climate-registry/pkg/responses"
)

type SubmissionService interface {
	Submit(req *dto.SubmitProjectRequest) (*dto.SubmitProjectResponse, error)
	List() ([]*dto.PendingProjectResponse, error)
	GetByID(id int64) (*dto.PendingProjectResponse, error)
}

type submissionService struct {
	pendingRepo repository.PendingProjectRepository
	logger      *zap.Logger
}

func NewSubmissionService(pendingRepo repository.PendingProjectRepository, logger *zap.Logger) SubmissionService {
	return &submissionService{pendingRepo: pendingRepo, logger: logger}
}

// Submit stages a public submission. Relation ids are stored as raw lists and
// deliberately not checked against the registry: submitters should not be
// blocked by lookup-entity bookkeeping, and approval validates everything.
func (s *submissionService) Submit(req *dto.SubmitProjectRequest) (*dto.SubmitProjectResponse, error) {
	if err := validateDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	pending := &model.PendingProject{
		Title:              req.Title,
		ProjectType:        req.ProjectType,
		Sector:             req.Sector,
		Division:           req.Division,
		Status:             req.Status,
		ApprovalFiscalYear: req.ApprovalFiscalYear,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		TotalCost:          req.TotalCost,
		GrantAmount:        req.GrantAmount,
		CoFinancing:        req.CoFinancing,
		Disbursed:          req.Disbursed,
		HasWASH:            req.HasWASH,
		WASHPercent:        req.WASHPercent,
		Beneficiaries:      req.Beneficiaries,
		Objectives:         req.Objectives,
		AgencyIDs:          req.AgencyIDs,
		LocationIDs:        req.LocationIDs,
		FundingSourceIDs:   req.FundingSourceIDs,
		FocalAreaIDs:       req.FocalAreaIDs,
		SubmitterEmail:     req.SubmitterEmail,
	}

	// WASH payload is stored as-is when supplied, null otherwise; the
	// default-fill happens at materialization, not here.
	if req.WASHComponent != nil {
		data, err := json.Marshal(req.WASHComponent)
		if err != nil {
			return nil, pkgErrors.Wrap(pkgErrors.CodeBadRequest, "invalid wash payload", err)
		}
		pending.WASHPayload = datatypes.JSON(data)
	}

	id, err := s.pendingRepo.Create(pending)
	if err != nil {
		return nil, err
	}

	s.logger.Info("project submission staged",
		zap.Int64("pending_id", id),
		zap.String("submitter", req.SubmitterEmail))

	return &dto.SubmitProjectResponse{PendingID: id}, nil
}

func (s *submissionService) List() ([]*dto.PendingProjectResponse, error) {
	pendings, err := s.pendingRepo.List()
	if err != nil {
		return nil, err
	}

	return lo.Map(pendings, func(p *model.PendingProject, _ int) *dto.PendingProjectResponse {
		return toPendingResponse(p)
	}), nil
}

func (s *submissionService) GetByID(id int64) (*dto.PendingProjectResponse, error) {
	pending, err := s.pendingRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toPendingResponse(pending), nil
}

func toPendingResponse(p *model.PendingProject) *dto.PendingProjectResponse {
	resp := &dto.PendingProjectResponse{
		ID:                 p.ID,
		Title:              p.Title,
		ProjectType:        p.ProjectType,
		ProjectTypeLabel:   constants.ProjectTypeLabel(p.ProjectType),
		Sector:             p.Sector,
		Division:           p.Division,
		Status:             p.Status,
		ApprovalFiscalYear: p.ApprovalFiscalYear,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		TotalCost:          p.TotalCost,
		GrantAmount:        p.GrantAmount,
		CoFinancing:        p.CoFinancing,
		Disbursed:          p.Disbursed,
		HasWASH:            p.HasWASH,
		WASHPercent:        p.WASHPercent,
		Beneficiaries:      p.Beneficiaries,
		Objectives:         p.Objectives,
		AgencyIDs:          p.AgencyIDs,
		LocationIDs:        p.LocationIDs,
		FundingSourceIDs:   p.FundingSourceIDs,
		FocalAreaIDs:       p.FocalAreaIDs,
		SubmitterEmail:     p.SubmitterEmail,
		SubmittedAt:        p.SubmittedAt.Format(time.RFC3339),
	}

	if payload := decodeWASHPayload(p.WASHPayload); payload != nil {
		resp.WASHComponent = payload
	}

	return resp
}

// decodeWASHPayload parses the stored payload; null or malformed data yields nil
func decodeWASHPayload(raw datatypes.JSON) *dto.WASHComponentPayload {
	if len(raw) == 0 {
		return nil
	}
	var payload dto.WASHComponentPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return &payload
}

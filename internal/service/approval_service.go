package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"climate-registry/internal/dto"
	"climate-registry/internal/model"
	"climate-registry/internal/repository"
	pkgErrors "climate-registry/pkg/responses"
)

// ApprovalService consumes pending submissions. A submission is pending until
// exactly one of Approve or Reject removes it; there are no intermediate
// states. Approve is the single place where the pending and project
// repositories are coordinated under one transaction boundary.
type ApprovalService interface {
	Approve(pendingID int64) (*dto.ProjectResponse, error)
	Reject(pendingID int64) error
}

type approvalService struct {
	db          *gorm.DB
	projectRepo repository.ProjectRepository
	pendingRepo repository.PendingProjectRepository
	logger      *zap.Logger
}

func NewApprovalService(
	db *gorm.DB,
	projectRepo repository.ProjectRepository,
	pendingRepo repository.PendingProjectRepository,
	logger *zap.Logger,
) ApprovalService {
	return &approvalService{
		db:          db,
		projectRepo: projectRepo,
		pendingRepo: pendingRepo,
		logger:      logger,
	}
}

// Approve materializes a pending submission into the registry. The whole
// sequence (project insert, WASH insert, junction inserts against the new
// project id, pending delete) commits or rolls back as one. Junction inserts
// are where the submitted relation ids first meet referential checks; a stale
// id fails the transaction and the submission stays pending for retry.
func (s *approvalService) Approve(pendingID int64) (*dto.ProjectResponse, error) {
	pending, err := s.pendingRepo.FindByID(pendingID)
	if err != nil {
		return nil, err
	}

	var projectID int64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		project := projectFromPending(pending)
		wash := washFromPending(pending)
		rel := repository.ProjectRelations{
			AgencyIDs:        pending.AgencyIDs,
			LocationIDs:      pending.LocationIDs,
			FundingSourceIDs: pending.FundingSourceIDs,
			FocalAreaIDs:     pending.FocalAreaIDs,
		}

		if err := s.projectRepo.CreateTx(tx, project, wash, rel); err != nil {
			return err
		}
		projectID = project.ID

		// The delete doubles as the concurrency guard: a second approval of
		// the same submission finds zero rows here and rolls back.
		n, err := s.pendingRepo.DeleteTx(tx, pending.ID)
		if err != nil {
			return err
		}
		if n == 0 {
			return pkgErrors.ErrRecordNotFound
		}

		return nil
	})
	if err != nil {
		var appErr *pkgErrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "approve submission failed", err)
	}

	s.logger.Info("submission approved",
		zap.Int64("pending_id", pendingID),
		zap.Int64("project_id", projectID))

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Reject discards a pending submission. Nothing is created; not-found is
// surfaced so callers can distinguish "already gone" from "rejected now".
func (s *approvalService) Reject(pendingID int64) error {
	n, err := s.pendingRepo.Delete(pendingID)
	if err != nil {
		return err
	}
	if n == 0 {
		return pkgErrors.ErrRecordNotFound
	}

	s.logger.Info("submission rejected", zap.Int64("pending_id", pendingID))
	return nil
}

// projectFromPending copies the shared attribute set onto a fresh project
func projectFromPending(p *model.PendingProject) *model.Project {
	return &model.Project{
		Title:              p.Title,
		ProjectType:        p.ProjectType,
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
	}
}

// washFromPending maps the submitted WASH payload. A submission without one
// still materializes a default sub-record, keeping the approval path
// symmetric with direct creation (every project has exactly one WASH row).
func washFromPending(p *model.PendingProject) *model.WASHComponent {
	payload := decodeWASHPayload(p.WASHPayload)
	if payload == nil {
		return nil
	}
	return &model.WASHComponent{
		Present:            payload.Present,
		WaterSupplyPercent: payload.WaterSupplyPercent,
		SanitationPercent:  payload.SanitationPercent,
		PublicAdminPercent: payload.PublicAdminPercent,
	}
}

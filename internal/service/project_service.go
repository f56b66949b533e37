package service

import (
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"climate-registry/internal/dto"
	"climate-registry/internal/model"
	"climate-registry/internal/repository"
	"climate-registry/pkg/constants"
	pkgErrors "climate-registry/pkg/responses"
)

type ProjectService interface {
	Create(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetByID(id int64) (*dto.ProjectResponse, error)
	List(query *dto.ProjectListQuery) ([]*dto.ProjectListItem, int64, error)
	Update(id int64, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(id int64) error
}

type projectService struct {
	repo   repository.ProjectRepository
	logger *zap.Logger
}

func NewProjectService(repo repository.ProjectRepository, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

func (s *projectService) Create(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := validateDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	project := &model.Project{
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
	}

	rel := repository.ProjectRelations{
		AgencyIDs:        req.AgencyIDs,
		LocationIDs:      req.LocationIDs,
		FundingSourceIDs: req.FundingSourceIDs,
		FocalAreaIDs:     req.FocalAreaIDs,
	}

	id, err := s.repo.Create(project, washFromPayload(req.WASHComponent), rel)
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		zap.Int64("project_id", id),
		zap.String("title", project.Title))

	return s.GetByID(id)
}

func (s *projectService) GetByID(id int64) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) List(query *dto.ProjectListQuery) ([]*dto.ProjectListItem, int64, error) {
	projects, total, err := s.repo.List(query)
	if err != nil {
		return nil, 0, err
	}

	items := lo.Map(projects, func(p *model.Project, _ int) *dto.ProjectListItem {
		return toProjectListItem(p)
	})

	return items, total, nil
}

func (s *projectService) Update(id int64, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	// Date invariant is checked against the effective values, so a patch that
	// supplies only one bound is still validated against the stored other.
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	startDate := existing.StartDate
	if req.StartDate != nil {
		startDate = req.StartDate
	}
	endDate := existing.EndDate
	if req.EndDate != nil {
		endDate = req.EndDate
	}
	if err := validateDates(startDate, endDate); err != nil {
		return nil, err
	}

	patch := &repository.ProjectPatch{
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
		WASH:               washFromPayload(req.WASHComponent),
	}

	project, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("project updated", zap.Int64("project_id", id))

	return toProjectResponse(project), nil
}

func (s *projectService) Delete(id int64) error {
	// Surface not-found before the destructive pass
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("project deleted", zap.Int64("project_id", id))
	return nil
}

// validateDates enforces start <= end when both are present
func validateDates(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return pkgErrors.New(pkgErrors.CodeBadRequest, "start date must not be after end date")
	}
	return nil
}

// washFromPayload maps an optional WASH payload; nil means "not supplied" and
// the repository falls back to the default sub-record on create.
func washFromPayload(payload *dto.WASHComponentPayload) *model.WASHComponent {
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

// toProjectResponse builds the composite view from a hydrated project
func toProjectResponse(project *model.Project) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:                 project.ID,
		Title:              project.Title,
		ProjectType:        project.ProjectType,
		ProjectTypeLabel:   constants.ProjectTypeLabel(project.ProjectType),
		Sector:             project.Sector,
		Division:           project.Division,
		Status:             project.Status,
		ApprovalFiscalYear: project.ApprovalFiscalYear,
		StartDate:          project.StartDate,
		EndDate:            project.EndDate,
		TotalCost:          project.TotalCost,
		GrantAmount:        project.GrantAmount,
		CoFinancing:        project.CoFinancing,
		Disbursed:          project.Disbursed,
		HasWASH:            project.HasWASH,
		WASHPercent:        project.WASHPercent,
		Beneficiaries:      project.Beneficiaries,
		Objectives:         project.Objectives,
		CreatedAt:          project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          project.UpdatedAt.Format(time.RFC3339),
	}

	if project.WASHComponent != nil {
		resp.WASHComponent = &dto.WASHComponentResponse{
			Present:            project.WASHComponent.Present,
			WaterSupplyPercent: project.WASHComponent.WaterSupplyPercent,
			SanitationPercent:  project.WASHComponent.SanitationPercent,
			PublicAdminPercent: project.WASHComponent.PublicAdminPercent,
		}
	}

	resp.Agencies = lo.Map(project.Agencies, func(a model.Agency, _ int) *dto.AgencyResponse {
		return toAgencyResponse(&a)
	})
	resp.Locations = lo.Map(project.Locations, func(l model.Location, _ int) *dto.LocationResponse {
		return toLocationResponse(&l)
	})
	resp.FundingSources = lo.Map(project.FundingSources, func(f model.FundingSource, _ int) *dto.FundingSourceResponse {
		return toFundingSourceResponse(&f)
	})
	resp.FocalAreas = lo.Map(project.FocalAreas, func(f model.FocalArea, _ int) *dto.FocalAreaResponse {
		return toFocalAreaResponse(&f)
	})

	resp.AgencyIDs = lo.Map(project.Agencies, func(a model.Agency, _ int) int64 { return a.ID })
	resp.LocationIDs = lo.Map(project.Locations, func(l model.Location, _ int) int64 { return l.ID })
	resp.FundingSourceIDs = lo.Map(project.FundingSources, func(f model.FundingSource, _ int) int64 { return f.ID })
	resp.FocalAreaIDs = lo.Map(project.FocalAreas, func(f model.FocalArea, _ int) int64 { return f.ID })

	return resp
}

// toProjectListItem flattens the WASH sub-record onto the list row
func toProjectListItem(project *model.Project) *dto.ProjectListItem {
	item := &dto.ProjectListItem{
		ID:                 project.ID,
		Title:              project.Title,
		ProjectType:        project.ProjectType,
		Sector:             project.Sector,
		Status:             project.Status,
		ApprovalFiscalYear: project.ApprovalFiscalYear,
		TotalCost:          project.TotalCost,
		GrantAmount:        project.GrantAmount,
		Disbursed:          project.Disbursed,
		CreatedAt:          project.CreatedAt.Format(time.RFC3339),
	}
	if project.WASHComponent != nil {
		item.WASHPresent = project.WASHComponent.Present
		item.WaterSupplyPercent = project.WASHComponent.WaterSupplyPercent
		item.SanitationPercent = project.WASHComponent.SanitationPercent
		item.PublicAdminPercent = project.WASHComponent.PublicAdminPercent
	}
	return item
}

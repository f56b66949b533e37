package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"climate-registry/internal/dto"
	"climate-registry/internal/model"
	pkgErrors "climate-registry/pkg/responses"
)

// ProjectRelations relation id-lists for the four junction sets
type ProjectRelations struct {
	AgencyIDs        []int64
	LocationIDs      []int64
	FundingSourceIDs []int64
	FocalAreaIDs     []int64
}

// ProjectPatch partial update. Nil fields are left untouched. A non-nil
// relation list replaces that junction set wholesale; a non-nil WASH payload
// upserts the sub-record.
type ProjectPatch struct {
	Title              *string
	ProjectType        *string
	Sector             *string
	Division           *string
	Status             *string
	ApprovalFiscalYear *string
	StartDate          *time.Time
	EndDate            *time.Time
	TotalCost          *float64
	GrantAmount        *float64
	CoFinancing        *float64
	Disbursed          *float64
	HasWASH            *bool
	WASHPercent        *float64
	Beneficiaries      *string
	Objectives         *string

	AgencyIDs        *[]int64
	LocationIDs      *[]int64
	FundingSourceIDs *[]int64
	FocalAreaIDs     *[]int64

	WASH *model.WASHComponent
}

type ProjectRepository interface {
	Create(project *model.Project, wash *model.WASHComponent, rel ProjectRelations) (int64, error)
	// CreateTx runs the same insert sequence on an externally owned
	// transaction; the approval workflow uses it to coordinate with the
	// pending-submission delete under one commit.
	CreateTx(tx *gorm.DB, project *model.Project, wash *model.WASHComponent, rel ProjectRelations) error
	Update(id int64, patch *ProjectPatch) (*model.Project, error)
	FindByID(id int64) (*model.Project, error)
	List(query *dto.ProjectListQuery) ([]*model.Project, int64, error)
	Delete(id int64) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// washColumns columns overwritten on WASH upsert
var washColumns = []string{"present", "water_supply_percent", "sanitation_percent", "public_admin_percent", "updated_at"}

// Create inserts the project, its WASH sub-record and all junction rows under
// one transaction. A missing WASH payload still produces a row (present=false,
// zero percentages) so every project has exactly one.
func (r *projectRepository) Create(project *model.Project, wash *model.WASHComponent, rel ProjectRelations) (int64, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return r.CreateTx(tx, project, wash, rel)
	})
	if err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "create project failed", err)
	}
	return project.ID, nil
}

func (r *projectRepository) CreateTx(tx *gorm.DB, project *model.Project, wash *model.WASHComponent, rel ProjectRelations) error {
	if err := tx.Create(project).Error; err != nil {
		return err
	}

	if wash == nil {
		wash = &model.WASHComponent{}
	}
	wash.ProjectID = project.ID
	if err := tx.Create(wash).Error; err != nil {
		return err
	}

	return insertRelations(tx, project.ID, rel)
}

// Update applies a partial update. Not-found is detected by the initial load
// inside the transaction, so an unguarded write can never fabricate a row.
func (r *projectRepository) Update(id int64, patch *ProjectPatch) (*model.Project, error) {
	var project model.Project

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, id).Error; err != nil {
			return err
		}

		updates := patch.columnUpdates()
		if len(updates) > 0 {
			if err := tx.Model(&project).Updates(updates).Error; err != nil {
				return err
			}
		}

		if patch.WASH != nil {
			wash := *patch.WASH
			wash.ID = 0
			wash.ProjectID = id
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "project_id"}},
				DoUpdates: clause.AssignmentColumns(washColumns),
			}).Create(&wash).Error
			if err != nil {
				return err
			}
		}

		// Full replacement per supplied relation list: delete then reinsert.
		// A reader outside this transaction never observes the empty window
		// (read-committed or stricter).
		if patch.AgencyIDs != nil {
			if err := replaceRelation(tx, id, &model.ProjectAgency{}, agencyRows(id, *patch.AgencyIDs)); err != nil {
				return err
			}
		}
		if patch.LocationIDs != nil {
			if err := replaceRelation(tx, id, &model.ProjectLocation{}, locationRows(id, *patch.LocationIDs)); err != nil {
				return err
			}
		}
		if patch.FundingSourceIDs != nil {
			if err := replaceRelation(tx, id, &model.ProjectFundingSource{}, fundingSourceRows(id, *patch.FundingSourceIDs)); err != nil {
				return err
			}
		}
		if patch.FocalAreaIDs != nil {
			if err := replaceRelation(tx, id, &model.ProjectFocalArea{}, focalAreaRows(id, *patch.FocalAreaIDs)); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "update project failed", err)
	}

	return r.FindByID(id)
}

// FindByID loads the composite view: project plus WASH sub-record plus the
// four relation sets fully resolved.
func (r *projectRepository) FindByID(id int64) (*model.Project, error) {
	var project model.Project
	err := r.db.Preload("WASHComponent").
		Preload("Agencies").
		Preload("Locations").
		Preload("FundingSources").
		Preload("FocalAreas").
		First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query project failed", err)
	}
	return &project, nil
}

func (r *projectRepository) List(query *dto.ProjectListQuery) ([]*model.Project, int64, error) {
	var projects []*model.Project
	var total int64

	q := r.db.Model(&model.Project{})

	if query.Keyword != "" {
		q = q.Where("title LIKE ? OR sector LIKE ?", "%"+query.Keyword+"%", "%"+query.Keyword+"%")
	}
	if query.ProjectType != "" {
		q = q.Where("project_type = ?", query.ProjectType)
	}
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}
	if query.FiscalYear != "" {
		q = q.Where("approval_fiscal_year = ?", query.FiscalYear)
	}
	if query.Sector != "" {
		q = q.Where("sector = ?", query.Sector)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "count projects failed", err)
	}

	err := q.Preload("WASHComponent").
		Offset(query.GetOffset()).
		Limit(query.GetPageSize()).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query project list failed", err)
	}

	return projects, total, nil
}

// Delete removes the project together with its WASH sub-record and junction
// rows. Cleanup is explicit so no orphans survive on backends without cascade.
func (r *projectRepository) Delete(id int64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, junction := range []interface{}{
			&model.ProjectAgency{},
			&model.ProjectLocation{},
			&model.ProjectFundingSource{},
			&model.ProjectFocalArea{},
		} {
			if err := tx.Where("project_id = ?", id).Delete(junction).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.WASHComponent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Project{}, id).Error
	})
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "delete project failed", err)
	}
	return nil
}

// columnUpdates collects the supplied scalar columns
func (p *ProjectPatch) columnUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.ProjectType != nil {
		updates["project_type"] = *p.ProjectType
	}
	if p.Sector != nil {
		updates["sector"] = *p.Sector
	}
	if p.Division != nil {
		updates["division"] = *p.Division
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	if p.ApprovalFiscalYear != nil {
		updates["approval_fiscal_year"] = *p.ApprovalFiscalYear
	}
	if p.StartDate != nil {
		updates["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		updates["end_date"] = *p.EndDate
	}
	if p.TotalCost != nil {
		updates["total_cost"] = *p.TotalCost
	}
	if p.GrantAmount != nil {
		updates["grant_amount"] = *p.GrantAmount
	}
	if p.CoFinancing != nil {
		updates["co_financing"] = *p.CoFinancing
	}
	if p.Disbursed != nil {
		updates["disbursed"] = *p.Disbursed
	}
	if p.HasWASH != nil {
		updates["has_wash"] = *p.HasWASH
	}
	if p.WASHPercent != nil {
		updates["wash_percent"] = *p.WASHPercent
	}
	if p.Beneficiaries != nil {
		updates["beneficiaries"] = *p.Beneficiaries
	}
	if p.Objectives != nil {
		updates["objectives"] = *p.Objectives
	}
	return updates
}

func insertRelations(tx *gorm.DB, projectID int64, rel ProjectRelations) error {
	if rows := agencyRows(projectID, rel.AgencyIDs); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if rows := locationRows(projectID, rel.LocationIDs); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if rows := fundingSourceRows(projectID, rel.FundingSourceIDs); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if rows := focalAreaRows(projectID, rel.FocalAreaIDs); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

func replaceRelation[T any](tx *gorm.DB, projectID int64, junction *T, rows []T) error {
	if err := tx.Where("project_id = ?", projectID).Delete(junction).Error; err != nil {
		return err
	}
	if len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

func agencyRows(projectID int64, ids []int64) []model.ProjectAgency {
	rows := make([]model.ProjectAgency, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.ProjectAgency{ProjectID: projectID, AgencyID: id})
	}
	return rows
}

func locationRows(projectID int64, ids []int64) []model.ProjectLocation {
	rows := make([]model.ProjectLocation, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.ProjectLocation{ProjectID: projectID, LocationID: id})
	}
	return rows
}

func fundingSourceRows(projectID int64, ids []int64) []model.ProjectFundingSource {
	rows := make([]model.ProjectFundingSource, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.ProjectFundingSource{ProjectID: projectID, FundingSourceID: id})
	}
	return rows
}

func focalAreaRows(projectID int64, ids []int64) []model.ProjectFocalArea {
	rows := make([]model.ProjectFocalArea, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.ProjectFocalArea{ProjectID: projectID, FocalAreaID: id})
	}
	return rows
}

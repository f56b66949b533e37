package repository

import (
	"errors"

	"gorm.io/gorm"

	"climate-registry/internal/model"
	pkgErrors "climate-registry/pkg/responses"
)

// Lookup entities (agencies, locations, funding sources, focal areas) share
// one thin CRUD shape; they exist mostly as foreign-key targets for the
// project junction sets.

type AgencyRepository interface {
	Create(agency *model.Agency) error
	FindByID(id int64) (*model.Agency, error)
	ListAll() ([]*model.Agency, error)
	Update(agency *model.Agency) error
	Delete(id int64) error
}

type agencyRepository struct {
	db *gorm.DB
}

func NewAgencyRepository(db *gorm.DB) AgencyRepository {
	return &agencyRepository{db: db}
}

func (r *agencyRepository) Create(agency *model.Agency) error {
	if err := r.db.Create(agency).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "create agency failed", err)
	}
	return nil
}

func (r *agencyRepository) FindByID(id int64) (*model.Agency, error) {
	var agency model.Agency
	if err := r.db.First(&agency, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query agency failed", err)
	}
	return &agency, nil
}

func (r *agencyRepository) ListAll() ([]*model.Agency, error) {
	var agencies []*model.Agency
	if err := r.db.Order("name ASC").Find(&agencies).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query agencies failed", err)
	}
	return agencies, nil
}

func (r *agencyRepository) Update(agency *model.Agency) error {
	if err := r.db.Save(agency).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "update agency failed", err)
	}
	return nil
}

func (r *agencyRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Agency{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "delete agency failed", err)
	}
	return nil
}

type LocationRepository interface {
	Create(location *model.Location) error
	FindByID(id int64) (*model.Location, error)
	ListAll() ([]*model.Location, error)
	Update(location *model.Location) error
	Delete(id int64) error
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(location *model.Location) error {
	if err := r.db.Create(location).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "create location failed", err)
	}
	return nil
}

func (r *locationRepository) FindByID(id int64) (*model.Location, error) {
	var location model.Location
	if err := r.db.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query location failed", err)
	}
	return &location, nil
}

func (r *locationRepository) ListAll() ([]*model.Location, error) {
	var locations []*model.Location
	if err := r.db.Order("name ASC").Find(&locations).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query locations failed", err)
	}
	return locations, nil
}

func (r *locationRepository) Update(location *model.Location) error {
	if err := r.db.Save(location).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "update location failed", err)
	}
	return nil
}

func (r *locationRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Location{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "delete location failed", err)
	}
	return nil
}

type FundingSourceRepository interface {
	Create(source *model.FundingSource) error
	FindByID(id int64) (*model.FundingSource, error)
	ListAll() ([]*model.FundingSource, error)
	Update(source *model.FundingSource) error
	Delete(id int64) error
}

type fundingSourceRepository struct {
	db *gorm.DB
}

func NewFundingSourceRepository(db *gorm.DB) FundingSourceRepository {
	return &fundingSourceRepository{db: db}
}

func (r *fundingSourceRepository) Create(source *model.FundingSource) error {
	if err := r.db.Create(source).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "create funding source failed", err)
	}
	return nil
}

func (r *fundingSourceRepository) FindByID(id int64) (*model.FundingSource, error) {
	var source model.FundingSource
	if err := r.db.First(&source, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query funding source failed", err)
	}
	return &source, nil
}

func (r *fundingSourceRepository) ListAll() ([]*model.FundingSource, error) {
	var sources []*model.FundingSource
	if err := r.db.Order("name ASC").Find(&sources).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query funding sources failed", err)
	}
	return sources, nil
}

func (r *fundingSourceRepository) Update(source *model.FundingSource) error {
	if err := r.db.Save(source).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "update funding source failed", err)
	}
	return nil
}

func (r *fundingSourceRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.FundingSource{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "delete funding source failed", err)
	}
	return nil
}

type FocalAreaRepository interface {
	Create(area *model.FocalArea) error
	FindByID(id int64) (*model.FocalArea, error)
	ListAll() ([]*model.FocalArea, error)
	Update(area *model.FocalArea) error
	Delete(id int64) error
}

type focalAreaRepository struct {
	db *gorm.DB
}

func NewFocalAreaRepository(db *gorm.DB) FocalAreaRepository {
	return &focalAreaRepository{db: db}
}

func (r *focalAreaRepository) Create(area *model.FocalArea) error {
	if err := r.db.Create(area).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "create focal area failed", err)
	}
	return nil
}

func (r *focalAreaRepository) FindByID(id int64) (*model.FocalArea, error) {
	var area model.FocalArea
	if err := r.db.First(&area, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query focal area failed", err)
	}
	return &area, nil
}

func (r *focalAreaRepository) ListAll() ([]*model.FocalArea, error) {
	var areas []*model.FocalArea
	if err := r.db.Order("name ASC").Find(&areas).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query focal areas failed", err)
	}
	return areas, nil
}

func (r *focalAreaRepository) Update(area *model.FocalArea) error {
	if err := r.db.Save(area).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "update focal area failed", err)
	}
	return nil
}

func (r *focalAreaRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.FocalArea{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "delete focal area failed", err)
	}
	return nil
}

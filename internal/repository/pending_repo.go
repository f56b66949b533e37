package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"climate-registry/internal/model"
	pkgErrors "climate-registry/pkg/responses"
)

type PendingProjectRepository interface {
	Create(pending *model.PendingProject) (int64, error)
	// List returns every staged submission, most recent first. Volumes are
	// small enough that pagination is not worth carrying.
	List() ([]*model.PendingProject, error)
	FindByID(id int64) (*model.PendingProject, error)
	Delete(id int64) (int64, error)
	// DeleteTx removes the row on an externally owned transaction and reports
	// how many rows went away. The approval workflow treats zero rows as a
	// lost race: some other transaction consumed the submission first.
	DeleteTx(tx *gorm.DB, id int64) (int64, error)
	CountOlderThan(cutoff time.Time) (int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type pendingProjectRepository struct {
	db *gorm.DB
}

func NewPendingProjectRepository(db *gorm.DB) PendingProjectRepository {
	return &pendingProjectRepository{db: db}
}

func (r *pendingProjectRepository) Create(pending *model.PendingProject) (int64, error) {
	if err := r.db.Create(pending).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "create pending submission failed", err)
	}
	return pending.ID, nil
}

func (r *pendingProjectRepository) List() ([]*model.PendingProject, error) {
	var pendings []*model.PendingProject
	err := r.db.Order("submitted_at DESC").Find(&pendings).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query pending submissions failed", err)
	}
	return pendings, nil
}

func (r *pendingProjectRepository) FindByID(id int64) (*model.PendingProject, error) {
	var pending model.PendingProject
	err := r.db.First(&pending, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query pending submission failed", err)
	}
	return &pending, nil
}

func (r *pendingProjectRepository) Delete(id int64) (int64, error) {
	return r.DeleteTx(r.db, id)
}

func (r *pendingProjectRepository) DeleteTx(tx *gorm.DB, id int64) (int64, error) {
	result := tx.Delete(&model.PendingProject{}, id)
	if result.Error != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "delete pending submission failed", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *pendingProjectRepository) CountOlderThan(cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.PendingProject{}).Where("submitted_at < ?", cutoff).Count(&count).Error
	if err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "count stale submissions failed", err)
	}
	return count, nil
}

func (r *pendingProjectRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("submitted_at < ?", cutoff).Delete(&model.PendingProject{})
	if result.Error != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "purge stale submissions failed", result.Error)
	}
	return result.RowsAffected, nil
}

package database

import (
	"fmt"

	"gorm.io/gorm"

	"climate-registry/internal/model"
)

// Migrate creates or updates the schema. Junction tables are registered as
// explicit join models first so the project associations and the repository's
// raw junction writes share one table definition.
func Migrate(db *gorm.DB) error {
	joinTables := []struct {
		field string
		model interface{}
	}{
		{"Agencies", &model.ProjectAgency{}},
		{"Locations", &model.ProjectLocation{}},
		{"FundingSources", &model.ProjectFundingSource{}},
		{"FocalAreas", &model.ProjectFocalArea{}},
	}
	for _, jt := range joinTables {
		if err := db.SetupJoinTable(&model.Project{}, jt.field, jt.model); err != nil {
			return fmt.Errorf("setup join table %s: %w", jt.field, err)
		}
	}

	return db.AutoMigrate(
		&model.User{},
		&model.Agency{},
		&model.Location{},
		&model.FundingSource{},
		&model.FocalArea{},
		&model.Project{},
		&model.WASHComponent{},
		&model.PendingProject{},
	)
}

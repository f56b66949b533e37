package model

const ProjectAgencyTableName = "project_agencies"
const ProjectLocationTableName = "project_locations"
const ProjectFundingSourceTableName = "project_funding_sources"
const ProjectFocalAreaTableName = "project_focal_areas"

// Junction rows carry nothing beyond the id pair. They live and die with their
// parent project.

type ProjectAgency struct {
	ProjectID int64 `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	AgencyID  int64 `gorm:"primaryKey;autoIncrement:false" json:"agency_id"`
}

func (ProjectAgency) TableName() string {
	return ProjectAgencyTableName
}

type ProjectLocation struct {
	ProjectID  int64 `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	LocationID int64 `gorm:"primaryKey;autoIncrement:false" json:"location_id"`
}

func (ProjectLocation) TableName() string {
	return ProjectLocationTableName
}

type ProjectFundingSource struct {
	ProjectID       int64 `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	FundingSourceID int64 `gorm:"primaryKey;autoIncrement:false" json:"funding_source_id"`
}

func (ProjectFundingSource) TableName() string {
	return ProjectFundingSourceTableName
}

type ProjectFocalArea struct {
	ProjectID   int64 `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	FocalAreaID int64 `gorm:"primaryKey;autoIncrement:false" json:"focal_area_id"`
}

func (ProjectFocalArea) TableName() string {
	return ProjectFocalAreaTableName
}

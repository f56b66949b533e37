package model

const AgencyTableName = "agencies"
const LocationTableName = "locations"
const FundingSourceTableName = "funding_sources"
const FocalAreaTableName = "focal_areas"

// Agency implementing agency
type Agency struct {
	BaseModelWithSoftDelete
	Name        string  `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Acronym     *string `gorm:"size:50" json:"acronym,omitempty"`
	AgencyType  *string `gorm:"size:50" json:"agency_type,omitempty"` // ministry/department/ngo
	Description *string `gorm:"type:text" json:"description,omitempty"`
}

func (Agency) TableName() string {
	return AgencyTableName
}

// Location geographic coverage unit (district/region)
type Location struct {
	BaseModelWithSoftDelete
	Name     string  `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Region   *string `gorm:"size:100" json:"region,omitempty"`
	Geocode  *string `gorm:"size:50" json:"geocode,omitempty"`
	Latitude *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (Location) TableName() string {
	return LocationTableName
}

// FundingSource fund or donor channel
type FundingSource struct {
	BaseModelWithSoftDelete
	Name       string  `gorm:"size:200;not null;uniqueIndex" json:"name"`
	SourceType *string `gorm:"size:50" json:"source_type,omitempty"` // domestic/bilateral/multilateral
	Acronym    *string `gorm:"size:50" json:"acronym,omitempty"`
}

func (FundingSource) TableName() string {
	return FundingSourceTableName
}

// FocalArea thematic focal area
type FocalArea struct {
	BaseModelWithSoftDelete
	Name        string  `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
}

func (FocalArea) TableName() string {
	return FocalAreaTableName
}

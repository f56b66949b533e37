package model

import "time"

const ProjectTableName = "projects"
const WASHComponentTableName = "wash_components"

// Project registered climate-finance project
type Project struct {
	BaseModel
	Title              string     `gorm:"size:500;not null" json:"title"`
	ProjectType        string     `gorm:"size:20;not null;index" json:"project_type"` // adaptation/mitigation/cross_cutting
	Sector             string     `gorm:"size:100;index" json:"sector"`
	Division           string     `gorm:"size:100" json:"division"`
	Status             string     `gorm:"size:50;index" json:"status"` // lifecycle label, e.g. Planning/Active/Implemented
	ApprovalFiscalYear string     `gorm:"size:20;index" json:"approval_fiscal_year"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	TotalCost          float64    `gorm:"not null;default:0" json:"total_cost"`
	GrantAmount        float64    `gorm:"not null;default:0" json:"grant_amount"`
	CoFinancing        float64    `gorm:"not null;default:0" json:"co_financing"`
	Disbursed          float64    `gorm:"not null;default:0" json:"disbursed"`
	HasWASH            bool       `gorm:"not null;default:false" json:"has_wash"`
	WASHPercent        float64    `gorm:"not null;default:0" json:"wash_percent"`
	Beneficiaries      *string    `gorm:"type:text" json:"beneficiaries"`
	Objectives         *string    `gorm:"type:text" json:"objectives"`

	// Relations
	WASHComponent  *WASHComponent  `gorm:"foreignKey:ProjectID" json:"wash_component,omitempty"`
	Agencies       []Agency        `gorm:"many2many:project_agencies" json:"agencies,omitempty"`
	Locations      []Location      `gorm:"many2many:project_locations" json:"locations,omitempty"`
	FundingSources []FundingSource `gorm:"many2many:project_funding_sources" json:"funding_sources,omitempty"`
	FocalAreas     []FocalArea     `gorm:"many2many:project_focal_areas" json:"focal_areas,omitempty"`
}

func (Project) TableName() string {
	return ProjectTableName
}

// WASHComponent water/sanitation/hygiene breakdown, exactly one row per project
type WASHComponent struct {
	BaseModel
	ProjectID          int64   `gorm:"not null;uniqueIndex;constraint:OnDelete:CASCADE" json:"project_id"`
	Present            bool    `gorm:"not null;default:false" json:"present"`
	WaterSupplyPercent float64 `gorm:"not null;default:0" json:"water_supply_percent"`
	SanitationPercent  float64 `gorm:"not null;default:0" json:"sanitation_percent"`
	PublicAdminPercent float64 `gorm:"not null;default:0" json:"public_admin_percent"`
}

func (WASHComponent) TableName() string {
	return WASHComponentTableName
}

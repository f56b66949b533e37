package model

import (
	"time"

	"gorm.io/datatypes"
)

const PendingProjectTableName = "pending_projects"

// PendingProject publicly submitted project awaiting administrative review.
// Same payload shape as Project, but the relation ids are kept as JSON lists
// rather than junction rows: nothing is checked against the registry until
// approval materializes the record. Never updated in place; consumed exactly
// once by approve or reject.
type PendingProject struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string     `gorm:"size:500;not null" json:"title"`
	ProjectType        string     `gorm:"size:20;not null" json:"project_type"`
	Sector             string     `gorm:"size:100" json:"sector"`
	Division           string     `gorm:"size:100" json:"division"`
	Status             string     `gorm:"size:50" json:"status"`
	ApprovalFiscalYear string     `gorm:"size:20" json:"approval_fiscal_year"`
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

	AgencyIDs        Int64List `gorm:"type:json" json:"agency_ids"`
	LocationIDs      Int64List `gorm:"type:json" json:"location_ids"`
	FundingSourceIDs Int64List `gorm:"type:json" json:"funding_source_ids"`
	FocalAreaIDs     Int64List `gorm:"type:json" json:"focal_area_ids"`

	// Optional WASH breakdown as submitted; null when the submitter gave none.
	WASHPayload datatypes.JSON `gorm:"type:json" json:"wash_payload,omitempty"`

	SubmitterEmail string    `gorm:"size:200;not null" json:"submitter_email"`
	SubmittedAt    time.Time `gorm:"not null;autoCreateTime;index" json:"submitted_at"`
}

func (PendingProject) TableName() string {
	return PendingProjectTableName
}

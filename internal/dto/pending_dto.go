package dto

import "time"

// SubmitProjectRequest public submission payload. Same shape as
// CreateProjectRequest plus submitter identity; relation ids are accepted
// unchecked and validated only at approval time.
type SubmitProjectRequest struct {
	Title              string     `json:"title" binding:"required,max=500"`
	ProjectType        string     `json:"project_type" binding:"required,oneof=adaptation mitigation cross_cutting"`
	Sector             string     `json:"sector" binding:"omitempty,max=100"`
	Division           string     `json:"division" binding:"omitempty,max=100"`
	Status             string     `json:"status" binding:"omitempty,max=50"`
	ApprovalFiscalYear string     `json:"approval_fiscal_year" binding:"omitempty,max=20"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	TotalCost          float64    `json:"total_cost" binding:"gte=0"`
	GrantAmount        float64    `json:"grant_amount" binding:"gte=0"`
	CoFinancing        float64    `json:"co_financing" binding:"gte=0"`
	Disbursed          float64    `json:"disbursed" binding:"gte=0"`
	HasWASH            bool       `json:"has_wash"`
	WASHPercent        float64    `json:"wash_percent" binding:"gte=0,lte=100"`
	Beneficiaries      *string    `json:"beneficiaries"`
	Objectives         *string    `json:"objectives"`

	AgencyIDs        []int64 `json:"agency_ids" binding:"omitempty,dive,gt=0"`
	LocationIDs      []int64 `json:"location_ids" binding:"omitempty,dive,gt=0"`
	FundingSourceIDs []int64 `json:"funding_source_ids" binding:"omitempty,dive,gt=0"`
	FocalAreaIDs     []int64 `json:"focal_area_ids" binding:"omitempty,dive,gt=0"`

	WASHComponent *WASHComponentPayload `json:"wash_component"`

	SubmitterEmail string `json:"submitter_email" binding:"required,email,max=200"`
}

// PendingProjectResponse pending submission view for administrators
type PendingProjectResponse struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title"`
	ProjectType        string     `json:"project_type"`
	ProjectTypeLabel   string     `json:"project_type_label"`
	Sector             string     `json:"sector"`
	Division           string     `json:"division"`
	Status             string     `json:"status"`
	ApprovalFiscalYear string     `json:"approval_fiscal_year"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	TotalCost          float64    `json:"total_cost"`
	GrantAmount        float64    `json:"grant_amount"`
	CoFinancing        float64    `json:"co_financing"`
	Disbursed          float64    `json:"disbursed"`
	HasWASH            bool       `json:"has_wash"`
	WASHPercent        float64    `json:"wash_percent"`
	Beneficiaries      *string    `json:"beneficiaries"`
	Objectives         *string    `json:"objectives"`

	AgencyIDs        []int64 `json:"agency_ids"`
	LocationIDs      []int64 `json:"location_ids"`
	FundingSourceIDs []int64 `json:"funding_source_ids"`
	FocalAreaIDs     []int64 `json:"focal_area_ids"`

	WASHComponent *WASHComponentPayload `json:"wash_component"`

	SubmitterEmail string `json:"submitter_email"`
	SubmittedAt    string `json:"submitted_at"`
}

// SubmitProjectResponse returned id of the staged submission
type SubmitProjectResponse struct {
	PendingID int64 `json:"pending_id"`
}

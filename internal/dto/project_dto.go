package dto

import "time"

// WASHComponentPayload water/sanitation/hygiene breakdown as supplied by callers
type WASHComponentPayload struct {
	Present            bool    `json:"present"`
	WaterSupplyPercent float64 `json:"water_supply_percent" binding:"gte=0,lte=100"`
	SanitationPercent  float64 `json:"sanitation_percent" binding:"gte=0,lte=100"`
	PublicAdminPercent float64 `json:"public_admin_percent" binding:"gte=0,lte=100"`
}

// CreateProjectRequest payload for registering a project directly
type CreateProjectRequest struct {
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
}

// UpdateProjectRequest partial update; only non-nil fields are written.
// A relation list that is present replaces the membership wholesale; a nil
// list leaves it untouched.
type UpdateProjectRequest struct {
	Title              *string    `json:"title" binding:"omitempty,max=500"`
	ProjectType        *string    `json:"project_type" binding:"omitempty,oneof=adaptation mitigation cross_cutting"`
	Sector             *string    `json:"sector" binding:"omitempty,max=100"`
	Division           *string    `json:"division" binding:"omitempty,max=100"`
	Status             *string    `json:"status" binding:"omitempty,max=50"`
	ApprovalFiscalYear *string    `json:"approval_fiscal_year" binding:"omitempty,max=20"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	TotalCost          *float64   `json:"total_cost" binding:"omitempty,gte=0"`
	GrantAmount        *float64   `json:"grant_amount" binding:"omitempty,gte=0"`
	CoFinancing        *float64   `json:"co_financing" binding:"omitempty,gte=0"`
	Disbursed          *float64   `json:"disbursed" binding:"omitempty,gte=0"`
	HasWASH            *bool      `json:"has_wash"`
	WASHPercent        *float64   `json:"wash_percent" binding:"omitempty,gte=0,lte=100"`
	Beneficiaries      *string    `json:"beneficiaries"`
	Objectives         *string    `json:"objectives"`

	AgencyIDs        *[]int64 `json:"agency_ids" binding:"omitempty,dive,gt=0"`
	LocationIDs      *[]int64 `json:"location_ids" binding:"omitempty,dive,gt=0"`
	FundingSourceIDs *[]int64 `json:"funding_source_ids" binding:"omitempty,dive,gt=0"`
	FocalAreaIDs     *[]int64 `json:"focal_area_ids" binding:"omitempty,dive,gt=0"`

	WASHComponent *WASHComponentPayload `json:"wash_component"`
}

// WASHComponentResponse WASH sub-record view
type WASHComponentResponse struct {
	Present            bool    `json:"present"`
	WaterSupplyPercent float64 `json:"water_supply_percent"`
	SanitationPercent  float64 `json:"sanitation_percent"`
	PublicAdminPercent float64 `json:"public_admin_percent"`
}

// ProjectResponse fully hydrated project view. Carries both the raw relation
// id-lists (edit-form round-tripping) and the resolved entity lists (display).
type ProjectResponse struct {
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
	CreatedAt          string     `json:"created_at"`
	UpdatedAt          string     `json:"updated_at"`

	WASHComponent *WASHComponentResponse `json:"wash_component"`

	AgencyIDs        []int64 `json:"agency_ids"`
	LocationIDs      []int64 `json:"location_ids"`
	FundingSourceIDs []int64 `json:"funding_source_ids"`
	FocalAreaIDs     []int64 `json:"focal_area_ids"`

	Agencies       []*AgencyResponse        `json:"agencies"`
	Locations      []*LocationResponse      `json:"locations"`
	FundingSources []*FundingSourceResponse `json:"funding_sources"`
	FocalAreas     []*FocalAreaResponse     `json:"focal_areas"`
}

// ProjectListItem list row with the WASH sub-record flattened in
type ProjectListItem struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	ProjectType        string  `json:"project_type"`
	Sector             string  `json:"sector"`
	Status             string  `json:"status"`
	ApprovalFiscalYear string  `json:"approval_fiscal_year"`
	TotalCost          float64 `json:"total_cost"`
	GrantAmount        float64 `json:"grant_amount"`
	Disbursed          float64 `json:"disbursed"`
	WASHPresent        bool    `json:"wash_present"`
	WaterSupplyPercent float64 `json:"water_supply_percent"`
	SanitationPercent  float64 `json:"sanitation_percent"`
	PublicAdminPercent float64 `json:"public_admin_percent"`
	CreatedAt          string  `json:"created_at"`
}

// ProjectListQuery project listing filters
type ProjectListQuery struct {
	PageQuery
	ProjectType string `form:"project_type" binding:"omitempty,oneof=adaptation mitigation cross_cutting"`
	Status      string `form:"status"`
	FiscalYear  string `form:"fiscal_year"`
	Sector      string `form:"sector"`
}

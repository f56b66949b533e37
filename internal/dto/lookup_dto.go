package dto

// AgencyResponse implementing agency view
type AgencyResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Acronym     *string `json:"acronym,omitempty"`
	AgencyType  *string `json:"agency_type,omitempty"`
	Description *string `json:"description,omitempty"`
}

// LocationResponse location view
type LocationResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Region    *string  `json:"region,omitempty"`
	Geocode   *string  `json:"geocode,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// FundingSourceResponse funding source view
type FundingSourceResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	SourceType *string `json:"source_type,omitempty"`
	Acronym    *string `json:"acronym,omitempty"`
}

// FocalAreaResponse focal area view
type FocalAreaResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CreateAgencyRequest create payload for an agency
type CreateAgencyRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Acronym     *string `json:"acronym" binding:"omitempty,max=50"`
	AgencyType  *string `json:"agency_type" binding:"omitempty,max=50"`
	Description *string `json:"description"`
}

// CreateLocationRequest create payload for a location
type CreateLocationRequest struct {
	Name      string   `json:"name" binding:"required,max=200"`
	Region    *string  `json:"region" binding:"omitempty,max=100"`
	Geocode   *string  `json:"geocode" binding:"omitempty,max=50"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
}

// CreateFundingSourceRequest create payload for a funding source
type CreateFundingSourceRequest struct {
	Name       string  `json:"name" binding:"required,max=200"`
	SourceType *string `json:"source_type" binding:"omitempty,max=50"`
	Acronym    *string `json:"acronym" binding:"omitempty,max=50"`
}

// CreateFocalAreaRequest create payload for a focal area
type CreateFocalAreaRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description"`
}

// UpdateAgencyRequest partial update, nil fields untouched
type UpdateAgencyRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Acronym     *string `json:"acronym" binding:"omitempty,max=50"`
	AgencyType  *string `json:"agency_type" binding:"omitempty,max=50"`
	Description *string `json:"description"`
}

// UpdateLocationRequest partial update, nil fields untouched
type UpdateLocationRequest struct {
	Name      *string  `json:"name" binding:"omitempty,max=200"`
	Region    *string  `json:"region" binding:"omitempty,max=100"`
	Geocode   *string  `json:"geocode" binding:"omitempty,max=50"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
}

// UpdateFundingSourceRequest partial update, nil fields untouched
type UpdateFundingSourceRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=200"`
	SourceType *string `json:"source_type" binding:"omitempty,max=50"`
	Acronym    *string `json:"acronym" binding:"omitempty,max=50"`
}

// UpdateFocalAreaRequest partial update, nil fields untouched
type UpdateFocalAreaRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description"`
}

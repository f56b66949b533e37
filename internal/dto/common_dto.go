package dto

// PageQuery pagination query parameters
type PageQuery struct {
	Page     int    `form:"page"`      // optional, defaults to 1
	PageSize int    `form:"page_size"` // optional, defaults to 10
	Keyword  string `form:"keyword"`   // optional keyword search
}

// GetPage returns the effective page number
func (p *PageQuery) GetPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// GetPageSize returns the effective page size
func (p *PageQuery) GetPageSize() int {
	if p.PageSize < 1 {
		return 10
	}
	if p.PageSize > 100 {
		return 100
	}
	return p.PageSize
}

// GetOffset returns the query offset
func (p *PageQuery) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// IDParam path id parameter
type IDParam struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// PageResponse paginated payload
type PageResponse struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// NewPageResponse builds a paginated payload
func NewPageResponse(items interface{}, total int64, page, pageSize int) *PageResponse {
	return &PageResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

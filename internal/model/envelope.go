package model

// Envelope is the response shape every camal API endpoint returns.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// PaginatedEnvelope is returned by filter endpoints.
type PaginatedEnvelope[T any] struct {
	Code       int        `json:"code"`
	Message    string     `json:"message"`
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page carries the common pagination inputs embedded in every filter.
type Page struct {
	Page  int `json:"page,omitempty" form:"page,omitempty" validate:"omitempty,min=1"`
	Limit int `json:"limit,omitempty" form:"limit,omitempty" validate:"omitempty,min=1,max=200"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Normalize fills unset pagination fields with defaults.
func (p *Page) Normalize() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
}

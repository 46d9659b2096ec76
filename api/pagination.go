package api

import (
	"github.com/workforcehq/workforce/internal/validate"
)

type PaginationRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (p PaginationRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Int("page", p.Page, 0, 1<<30),
		validate.Int("limit", p.Limit, 0, 1000),
	}
}

type PaginationResponse struct {
	Page       int `json:"page,omitempty"`
	Limit      int `json:"limit,omitempty"`
	TotalCount int `json:"totalCount,omitempty"`
}

// ListResponse is the response body for all list endpoints.
type ListResponse[T any] struct {
	PaginationResponse `json:",inline"`
	Count              int `json:"count"`
	Items              []T `json:"items"`
}

func NewListResponse[T, M any](items []M, p PaginationResponse, fn func(item M) T) *ListResponse[T] {
	result := &ListResponse[T]{
		Items:              make([]T, len(items)),
		Count:              len(items),
		PaginationResponse: p,
	}

	for i := range items {
		result.Items[i] = fn(items[i])
	}

	return result
}

package dto

import "prompt-hub/pagination"

// MessageResponseDTO is the uniform body for simple success responses.
type MessageResponseDTO struct {
	Message string `json:"message" example:"prompt approved successfully"`
}

// PromptListResponseDTO is the browser-facing listing envelope. On
// internal error the handler still returns this shape with empty prompts
// so client renderers never see an unstructured failure.
type PromptListResponseDTO struct {
	Prompts    []PromptDTO       `json:"prompts"`
	Pagination PaginationMetaDTO `json:"pagination"`
}

// BlogPostListResponseDTO mirrors PromptListResponseDTO for blog posts.
type BlogPostListResponseDTO struct {
	Posts      []BlogPostDTO     `json:"posts"`
	Pagination PaginationMetaDTO `json:"pagination"`
}

// PaginationMetaDTO carries the page bookkeeping of a listing response.
type PaginationMetaDTO struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// NewPaginationMetaDTO lifts the engine's bookkeeping fields into the
// transport shape.
func NewPaginationMetaDTO[T any](p pagination.Page[T]) PaginationMetaDTO {
	return PaginationMetaDTO{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		HasMore:    p.HasMore,
	}
}

// EmptyPaginationMetaDTO is the zero-result meta used by the degrade path.
func EmptyPaginationMetaDTO(page, pageSize int) PaginationMetaDTO {
	return PaginationMetaDTO{Page: page, PageSize: pageSize}
}

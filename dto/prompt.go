package dto

import (
	"time"

	"prompt-hub/models"
)

// PromptDTO exposes prompt fields for API consumers. IDs are hex strings
// to keep transport simple.
type PromptDTO struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	FullPrompt  string    `json:"full_prompt"`
	Slug        string    `json:"slug"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	ApprovedBy  string    `json:"approved_by,omitempty"`
	Upvotes     int64     `json:"upvotes"`
	Downvotes   int64     `json:"downvotes"`
}

// NewPromptDTO constructs PromptDTO from models.Prompt.
func NewPromptDTO(p models.Prompt) PromptDTO {
	return PromptDTO{
		ID:          p.ID.Hex(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		FullPrompt:  p.FullPrompt,
		Slug:        p.Slug,
		Tags:        p.Tags,
		Images:      p.Images,
		Status:      p.Status,
		CreatedBy:   p.CreatedBy,
		ApprovedBy:  p.ApprovedBy,
		Upvotes:     p.Upvotes,
		Downvotes:   p.Downvotes,
	}
}

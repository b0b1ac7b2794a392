package dto

import "prompt-hub/models"

// CategoryDTO exposes a prompt category with its denormalized count.
type CategoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	PromptCount int64  `json:"prompt_count"`
}

// NewCategoryDTO constructs CategoryDTO from models.Category.
func NewCategoryDTO(c models.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID.Hex(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		PromptCount: c.PromptCount,
	}
}

// BlogCategoryDTO exposes a blog category with its denormalized count.
type BlogCategoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	PostCount   int64  `json:"post_count"`
}

// NewBlogCategoryDTO constructs BlogCategoryDTO from models.BlogCategory.
func NewBlogCategoryDTO(c models.BlogCategory) BlogCategoryDTO {
	return BlogCategoryDTO{
		ID:          c.ID.Hex(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
		PostCount:   c.PostCount,
	}
}

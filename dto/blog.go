package dto

import (
	"time"

	"prompt-hub/models"
)

// BlogPostDTO exposes blog post fields for API consumers.
type BlogPostDTO struct {
	ID            string     `json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at,omitempty"`
	Title         string     `json:"title"`
	Content       string     `json:"content,omitempty"`
	Excerpt       string     `json:"excerpt"`
	Slug          string     `json:"slug"`
	FeaturedImage string     `json:"featured_image,omitempty"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	Status        string     `json:"status"`
	Author        string     `json:"author"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	SEO           models.SEO `json:"seo"`
	ReadTime      int        `json:"read_time,omitempty"`
	Views         int64      `json:"views"`
}

// NewBlogPostDTO constructs BlogPostDTO from models.BlogPost.
func NewBlogPostDTO(p models.BlogPost) BlogPostDTO {
	d := BlogPostDTO{
		ID:            p.ID.Hex(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Title:         p.Title,
		Content:       p.Content,
		Excerpt:       p.Excerpt,
		Slug:          p.Slug,
		FeaturedImage: p.FeaturedImage,
		Category:      p.Category,
		Tags:          p.Tags,
		Status:        p.Status,
		Author:        p.Author,
		SEO:           p.SEO,
		ReadTime:      p.ReadTime,
		Views:         p.Views,
	}
	if !p.PublishedAt.IsZero() {
		published := p.PublishedAt
		d.PublishedAt = &published
	}
	return d
}

// NewBlogPostListDTO is the listing variant: full content stays out of
// list payloads.
func NewBlogPostListDTO(p models.BlogPost) BlogPostDTO {
	d := NewBlogPostDTO(p)
	d.Content = ""
	return d
}

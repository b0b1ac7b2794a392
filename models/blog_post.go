package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost lifecycle states.
const (
	BlogPostStatusDraft     = "draft"
	BlogPostStatusPublished = "published"
	BlogPostStatusArchived  = "archived"
)

// ValidBlogPostStatus reports whether s is a known lifecycle state.
func ValidBlogPostStatus(s string) bool {
	switch s {
	case BlogPostStatusDraft, BlogPostStatusPublished, BlogPostStatusArchived:
		return true
	}
	return false
}

// SEO carries optional metadata rendered into page heads.
type SEO struct {
	MetaTitle       string   `bson:"meta_title,omitempty" json:"meta_title,omitempty"`
	MetaDescription string   `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	Keywords        []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
}

// BlogPost represents a blog article document.
// Collection: blog_posts
//
// Category holds the referenced BlogCategory slug; Author is a user id.
// Views is bumped with an atomic $inc, independent of all other fields.
type BlogPost struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Content       string             `bson:"content" json:"content"`
	Excerpt       string             `bson:"excerpt" json:"excerpt"`
	Slug          string             `bson:"slug" json:"slug"`
	FeaturedImage string             `bson:"featured_image,omitempty" json:"featured_image,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Tags          []string           `bson:"tags" json:"tags"`
	Status        string             `bson:"status" json:"status"`
	Author        string             `bson:"author" json:"author"`
	PublishedAt   time.Time          `bson:"published_at,omitempty" json:"published_at,omitempty"`
	SEO           SEO                `bson:"seo" json:"seo"`
	ReadTime      int                `bson:"read_time,omitempty" json:"read_time,omitempty"`
	Views         int64              `bson:"views" json:"views"`
}

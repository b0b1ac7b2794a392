package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups prompts by name.
// Collection: categories
//
// PromptCount is a denormalized counter maintained by explicit side calls
// at prompt create/delete time; the reconciler recomputes it from the
// prompts collection to heal drift.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	PromptCount int64              `bson:"prompt_count" json:"prompt_count"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
}

// BlogCategory groups blog posts by slug.
// Collection: blog_categories
type BlogCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Color       string             `bson:"color,omitempty" json:"color,omitempty"`
	PostCount   int64              `bson:"post_count" json:"post_count"`
}

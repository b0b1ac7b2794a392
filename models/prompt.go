package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prompt moderation states.
const (
	PromptStatusPending  = "pending"
	PromptStatusApproved = "approved"
	PromptStatusRejected = "rejected"
)

// ValidPromptStatus reports whether s is a known moderation state.
func ValidPromptStatus(s string) bool {
	switch s {
	case PromptStatusPending, PromptStatusApproved, PromptStatusRejected:
		return true
	}
	return false
}

// Prompt represents a submitted prompt document.
// Collection: prompts
//
// Category is the referenced Category name; CreatedBy/ApprovedBy are user
// ids. The store does not enforce these references, the service layer
// validates them at write time.
type Prompt struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	FullPrompt  string             `bson:"full_prompt" json:"full_prompt"`
	Slug        string             `bson:"slug" json:"slug"`
	Tags        []string           `bson:"tags" json:"tags"`
	Images      []string           `bson:"images" json:"images"`
	Status      string             `bson:"status" json:"status"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
	ApprovedBy  string             `bson:"approved_by,omitempty" json:"approved_by,omitempty"`
	Upvotes     int64              `bson:"upvotes" json:"upvotes"`
	Downvotes   int64              `bson:"downvotes" json:"downvotes"`
}

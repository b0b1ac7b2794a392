// Package services holds the business logic: the moderation workflow,
// catalog listings, counter maintenance, and admin rollups.
//
// Services depend on narrow store interfaces rather than the concrete
// Mongo repositories so workflow behavior is testable without a database.
package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-hub/errs"
	"prompt-hub/models"
)

// PromptStore is the slice of PromptRepository the services use.
type PromptStore interface {
	Insert(ctx context.Context, p *models.Prompt) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Prompt, error)
	FindBySlug(ctx context.Context, slug string) (*models.Prompt, error)
	FindByStatus(ctx context.Context, status string) ([]models.Prompt, error)
	FindByCategory(ctx context.Context, category string) ([]models.Prompt, error)
	All(ctx context.Context) ([]models.Prompt, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	IncrementVote(ctx context.Context, id primitive.ObjectID, up bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByCategory(ctx context.Context, category string) (int64, error)
}

// BlogPostStore is the slice of BlogPostRepository the services use.
type BlogPostStore interface {
	Insert(ctx context.Context, p *models.BlogPost) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	FindByStatus(ctx context.Context, status string) ([]models.BlogPost, error)
	FindByCategory(ctx context.Context, category string) ([]models.BlogPost, error)
	All(ctx context.Context) ([]models.BlogPost, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByCategory(ctx context.Context, category string) (int64, error)
}

// CategoryStore is the slice of CategoryRepository the services use.
type CategoryStore interface {
	Insert(ctx context.Context, c *models.Category) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	All(ctx context.Context) ([]models.Category, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	AdjustPromptCount(ctx context.Context, id primitive.ObjectID, delta int64) error
	SetPromptCount(ctx context.Context, id primitive.ObjectID, count int64) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BlogCategoryStore is the slice of BlogCategoryRepository the services use.
type BlogCategoryStore interface {
	Insert(ctx context.Context, c *models.BlogCategory) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogCategory, error)
	FindBySlug(ctx context.Context, slug string) (*models.BlogCategory, error)
	All(ctx context.Context) ([]models.BlogCategory, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	AdjustPostCount(ctx context.Context, id primitive.ObjectID, delta int64) error
	SetPostCount(ctx context.Context, id primitive.ObjectID, count int64) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserStore is the slice of UserRepository the services use.
type UserStore interface {
	FindByUID(ctx context.Context, uid string) (*models.UserProfile, error)
	Upsert(ctx context.Context, u *models.UserProfile) error
	UpdateFields(ctx context.Context, uid string, updates map[string]interface{}) error
	All(ctx context.Context) ([]models.UserProfile, error)
}

// requireAdmin loads the actor's profile and verifies the admin flag.
// The check lives here, inside the workflow, so no call path can skip it.
func requireAdmin(ctx context.Context, users UserStore, actorUID string) (*models.UserProfile, error) {
	if actorUID == "" {
		return nil, fmt.Errorf("missing actor: %w", errs.ErrForbidden)
	}
	actor, err := users.FindByUID(ctx, actorUID)
	if err != nil {
		return nil, fmt.Errorf("actor %s: %w", actorUID, errs.ErrForbidden)
	}
	if !actor.IsAdmin {
		return nil, fmt.Errorf("actor %s: %w", actorUID, errs.ErrForbidden)
	}
	return actor, nil
}

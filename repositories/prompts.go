package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prompt-hub/errs"
	"prompt-hub/models"
)

type PromptRepository struct {
	col *mongo.Collection
}

func NewPromptRepository(db *mongo.Database) *PromptRepository {
	return &PromptRepository{col: db.Collection("prompts")}
}

// Insert persists a new prompt, stamping created_at server-side.
func (r *PromptRepository) Insert(ctx context.Context, p *models.Prompt) (primitive.ObjectID, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, wrapWriteErr(r.col, err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	p.ID = id
	return id, nil
}

// FindByID returns a prompt by its ObjectID.
func (r *PromptRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Prompt, error) {
	var p models.Prompt
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("prompt %s: %w", id.Hex(), errs.ErrNotFound)
		}
		return nil, fmt.Errorf("find prompt: %w", err)
	}
	return &p, nil
}

// FindBySlug returns a prompt by slug.
func (r *PromptRepository) FindBySlug(ctx context.Context, slug string) (*models.Prompt, error) {
	var p models.Prompt
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("prompt slug %q: %w", slug, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("find prompt: %w", err)
	}
	return &p, nil
}

// FindByStatus returns all prompts in the given moderation state,
// unsorted. Sorting is the caller's concern.
func (r *PromptRepository) FindByStatus(ctx context.Context, status string) ([]models.Prompt, error) {
	return findAll[models.Prompt](ctx, r.col, bson.M{"status": status})
}

// FindByCategory returns all prompts referencing the category name.
func (r *PromptRepository) FindByCategory(ctx context.Context, category string) ([]models.Prompt, error) {
	return findAll[models.Prompt](ctx, r.col, bson.M{"category": category})
}

// FindByCreatedBy returns all prompts submitted by the given user id.
func (r *PromptRepository) FindByCreatedBy(ctx context.Context, uid string) ([]models.Prompt, error) {
	return findAll[models.Prompt](ctx, r.col, bson.M{"created_by": uid})
}

// All returns the entire collection, bounded by the scan cap.
func (r *PromptRepository) All(ctx context.Context) ([]models.Prompt, error) {
	return findAll[models.Prompt](ctx, r.col, bson.M{})
}

// UpdateFields merges the given fields into the document and stamps
// updated_at.
func (r *PromptRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return wrapWriteErr(r.col, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("prompt %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

// IncrementVote bumps upvotes or downvotes atomically.
func (r *PromptRepository) IncrementVote(ctx context.Context, id primitive.ObjectID, up bool) error {
	field := "downvotes"
	if up {
		field = "upvotes"
	}
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return fmt.Errorf("increment vote: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("prompt %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

// Delete removes the document unconditionally. No cascade: category
// counters are adjusted by the service, not here.
func (r *PromptRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("prompt %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

// CountByCategory counts prompts referencing the category name. Used by
// the reconciler as the source of truth for category counters.
func (r *PromptRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"category": category})
	if err != nil {
		return 0, fmt.Errorf("count prompts: %w", err)
	}
	return n, nil
}

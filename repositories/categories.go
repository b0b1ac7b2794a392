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

type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection("categories")}
}

// Insert persists a new category, stamping created_at server-side.
func (r *CategoryRepository) Insert(ctx context.Context, c *models.Category) (primitive.ObjectID, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, wrapWriteErr(r.col, err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	c.ID = id
	return id, nil
}

// FindByID returns a category by its ObjectID.
func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var c models.Category
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("category %s: %w", id.Hex(), errs.ErrNotFound)
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

// FindByName returns a category by its display name.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var c models.Category
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("category %q: %w", name, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

// FindBySlug returns a category by slug.
func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("category slug %q: %w", slug, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

// All returns the entire collection, bounded by the scan cap.
func (r *CategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	return findAll[models.Category](ctx, r.col, bson.M{})
}

// UpdateFields merges the given fields into the document and stamps
// updated_at.
func (r *CategoryRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return wrapWriteErr(r.col, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("category %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

// AdjustPromptCount adds delta to the denormalized counter atomically.
// Best-effort: callers log failures and rely on the reconciler to heal.
func (r *CategoryRepository) AdjustPromptCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"prompt_count": delta}})
	if err != nil {
		return fmt.Errorf("adjust prompt_count: %w", err)
	}
	return nil
}

// SetPromptCount overwrites the counter with a recomputed value.
func (r *CategoryRepository) SetPromptCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"prompt_count": count}})
	if err != nil {
		return fmt.Errorf("set prompt_count: %w", err)
	}
	return nil
}

// Delete removes the document unconditionally. Prompts referencing the
// category are left dangling; there is no cascade.
func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("category %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

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

type BlogCategoryRepository struct {
	col *mongo.Collection
}

func NewBlogCategoryRepository(db *mongo.Database) *BlogCategoryRepository {
	return &BlogCategoryRepository{col: db.Collection("blog_categories")}
}

// Insert persists a new blog category, stamping created_at server-side.
func (r *BlogCategoryRepository) Insert(ctx context.Context, c *models.BlogCategory) (primitive.ObjectID, error) {
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

// FindByID returns a blog category by its ObjectID.
func (r *BlogCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogCategory, error) {
	var c models.BlogCategory
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog category %s: %w", id.Hex(), errs.ErrNotFound)
		}
		return nil, fmt.Errorf("find blog category: %w", err)
	}
	return &c, nil
}

// FindBySlug returns a blog category by slug.
func (r *BlogCategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.BlogCategory, error) {
	var c models.BlogCategory
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog category slug %q: %w", slug, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("find blog category: %w", err)
	}
	return &c, nil
}

// All returns the entire collection, bounded by the scan cap.
func (r *BlogCategoryRepository) All(ctx context.Context) ([]models.BlogCategory, error) {
	return findAll[models.BlogCategory](ctx, r.col, bson.M{})
}

// UpdateFields merges the given fields into the document and stamps
// updated_at.
func (r *BlogCategoryRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return wrapWriteErr(r.col, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("blog category %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

// AdjustPostCount adds delta to the denormalized counter atomically.
func (r *BlogCategoryRepository) AdjustPostCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"post_count": delta}})
	if err != nil {
		return fmt.Errorf("adjust post_count: %w", err)
	}
	return nil
}

// SetPostCount overwrites the counter with a recomputed value.
func (r *BlogCategoryRepository) SetPostCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"post_count": count}})
	if err != nil {
		return fmt.Errorf("set post_count: %w", err)
	}
	return nil
}

// Delete removes the document unconditionally.
func (r *BlogCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete blog category: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("blog category %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

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

type BlogPostRepository struct {
	col *mongo.Collection
}

func NewBlogPostRepository(db *mongo.Database) *BlogPostRepository {
	return &BlogPostRepository{col: db.Collection("blog_posts")}
}

// Insert persists a new post, stamping created_at server-side.
func (r *BlogPostRepository) Insert(ctx context.Context, p *models.BlogPost) (primitive.ObjectID, error) {
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

// FindByID returns a post by its ObjectID.
func (r *BlogPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog post %s: %w", id.Hex(), errs.ErrNotFound)
		}
		return nil, fmt.Errorf("find blog post: %w", err)
	}
	return &p, nil
}

// FindBySlug returns a post by slug.
func (r *BlogPostRepository) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog post slug %q: %w", slug, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("find blog post: %w", err)
	}
	return &p, nil
}

// FindByStatus returns all posts in the given lifecycle state, unsorted.
func (r *BlogPostRepository) FindByStatus(ctx context.Context, status string) ([]models.BlogPost, error) {
	return findAll[models.BlogPost](ctx, r.col, bson.M{"status": status})
}

// FindByCategory returns all posts referencing the category slug.
func (r *BlogPostRepository) FindByCategory(ctx context.Context, category string) ([]models.BlogPost, error) {
	return findAll[models.BlogPost](ctx, r.col, bson.M{"category": category})
}

// FindByAuthor returns all posts by the given user id.
func (r *BlogPostRepository) FindByAuthor(ctx context.Context, uid string) ([]models.BlogPost, error) {
	return findAll[models.BlogPost](ctx, r.col, bson.M{"author": uid})
}

// All returns the entire collection, bounded by the scan cap.
func (r *BlogPostRepository) All(ctx context.Context) ([]models.BlogPost, error) {
	return findAll[models.BlogPost](ctx, r.col, bson.M{})
}

// UpdateFields merges the given fields into the document and stamps
// updated_at.
func (r *BlogPostRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return wrapWriteErr(r.col, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("blog post %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

// IncrementViews bumps the views counter by 1 atomically. The increment
// runs server-side, so concurrent reads never lose counts; no other field
// is touched.
func (r *BlogPostRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("blog post %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

// Delete removes the document unconditionally.
func (r *BlogPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("blog post %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

// CountByCategory counts posts referencing the category slug. Used by the
// reconciler as the source of truth for category counters.
func (r *BlogPostRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"category": category})
	if err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return n, nil
}

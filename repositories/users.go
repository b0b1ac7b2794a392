package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prompt-hub/errs"
	"prompt-hub/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// FindByUID returns a profile by the identity-provider uid.
func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	var u models.UserProfile
	if err := r.col.FindOne(ctx, bson.M{"_id": uid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user %s: %w", uid, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// Upsert creates the profile on first sign-in or refreshes mutable fields
// on later sign-ins. created_at and is_admin are only set on insert;
// admin status is never toggled by a login.
func (r *UserRepository) Upsert(ctx context.Context, u *models.UserProfile) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}

	filter := bson.M{"_id": u.UID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": u.CreatedAt,
			"is_admin":   u.IsAdmin,
		},
		"$set": bson.M{
			"updated_at":   now,
			"email":        u.Email,
			"display_name": u.DisplayName,
			"bio":          u.Bio,
			"avatar":       u.Avatar,
			"social_media": u.SocialMedia,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.col.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// UpdateFields merges the given fields into the profile and stamps
// updated_at.
func (r *UserRepository) UpdateFields(ctx context.Context, uid string, updates map[string]interface{}) error {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	res, err := r.col.UpdateByID(ctx, uid, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", uid, errs.ErrNotFound)
	}
	return nil
}

// All returns the entire collection, bounded by the scan cap.
func (r *UserRepository) All(ctx context.Context) ([]models.UserProfile, error) {
	return findAll[models.UserProfile](ctx, r.col, bson.M{})
}

package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-hub/cmd/api/handlers"
	"prompt-hub/dto"
	"prompt-hub/errs"
	"prompt-hub/eventbus"
	"prompt-hub/models"
	"prompt-hub/services"
)

// stubPostStore serves a fixed set of posts; writes are not expected on
// the listing path and fail loudly if they happen.
type stubPostStore struct {
	posts []models.BlogPost
}

func (s *stubPostStore) Insert(context.Context, *models.BlogPost) (primitive.ObjectID, error) {
	return primitive.NilObjectID, fmt.Errorf("unexpected Insert")
}

func (s *stubPostStore) FindByID(context.Context, primitive.ObjectID) (*models.BlogPost, error) {
	return nil, errs.ErrNotFound
}

func (s *stubPostStore) FindBySlug(context.Context, string) (*models.BlogPost, error) {
	return nil, errs.ErrNotFound
}

func (s *stubPostStore) FindByStatus(_ context.Context, status string) ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, p := range s.posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPostStore) FindByCategory(_ context.Context, category string) ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, p := range s.posts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPostStore) All(context.Context) ([]models.BlogPost, error) { return s.posts, nil }

func (s *stubPostStore) UpdateFields(context.Context, primitive.ObjectID, map[string]interface{}) error {
	return fmt.Errorf("unexpected UpdateFields")
}

func (s *stubPostStore) IncrementViews(context.Context, primitive.ObjectID) error { return nil }

func (s *stubPostStore) Delete(context.Context, primitive.ObjectID) error {
	return fmt.Errorf("unexpected Delete")
}

func (s *stubPostStore) CountByCategory(context.Context, string) (int64, error) { return 0, nil }

type stubBlogCategoryStore struct{}

func (stubBlogCategoryStore) Insert(context.Context, *models.BlogCategory) (primitive.ObjectID, error) {
	return primitive.NilObjectID, fmt.Errorf("unexpected Insert")
}

func (stubBlogCategoryStore) FindByID(context.Context, primitive.ObjectID) (*models.BlogCategory, error) {
	return nil, errs.ErrNotFound
}

func (stubBlogCategoryStore) FindBySlug(context.Context, string) (*models.BlogCategory, error) {
	return nil, errs.ErrNotFound
}

func (stubBlogCategoryStore) All(context.Context) ([]models.BlogCategory, error) { return nil, nil }

func (stubBlogCategoryStore) UpdateFields(context.Context, primitive.ObjectID, map[string]interface{}) error {
	return nil
}

func (stubBlogCategoryStore) AdjustPostCount(context.Context, primitive.ObjectID, int64) error {
	return nil
}

func (stubBlogCategoryStore) SetPostCount(context.Context, primitive.ObjectID, int64) error {
	return nil
}

func (stubBlogCategoryStore) Delete(context.Context, primitive.ObjectID) error { return nil }

type stubUserStore struct{}

func (stubUserStore) FindByUID(context.Context, string) (*models.UserProfile, error) {
	return nil, errs.ErrNotFound
}

func (stubUserStore) Upsert(context.Context, *models.UserProfile) error { return nil }

func (stubUserStore) UpdateFields(context.Context, string, map[string]interface{}) error { return nil }

func (stubUserStore) All(context.Context) ([]models.UserProfile, error) { return nil, nil }

func post(title, status string, age time.Duration) models.BlogPost {
	return models.BlogPost{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Slug:      title,
		Status:    status,
		CreatedAt: time.Now().Add(-age),
	}
}

func TestListBlogPostsAdminHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &stubPostStore{posts: []models.BlogPost{
		post("old-draft", models.BlogPostStatusDraft, 2*time.Hour),
		post("new-draft", models.BlogPostStatusDraft, time.Hour),
		post("live", models.BlogPostStatusPublished, 3*time.Hour),
		post("retired", models.BlogPostStatusArchived, 4*time.Hour),
	}}
	svc := services.NewBlogService(store, stubBlogCategoryStore{}, stubUserStore{}, eventbus.NopPublisher{})

	r := gin.New()
	r.GET("/admin/blog/posts", handlers.ListBlogPostsAdminHandler(svc))

	do := func(query string) (*httptest.ResponseRecorder, dto.BlogPostListResponseDTO) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin/blog/posts"+query, nil)
		r.ServeHTTP(w, req)
		var body dto.BlogPostListResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	// Defaults to the draft queue, newest first.
	w, body := do("")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Posts, 2)
	assert.Equal(t, "new-draft", body.Posts[0].Title)
	assert.Equal(t, "old-draft", body.Posts[1].Title)
	assert.Equal(t, int64(2), body.Pagination.Total)

	w, body = do("?status=archived")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Posts, 1)
	assert.Equal(t, "retired", body.Posts[0].Title)

	w, _ = do("?status=bogus")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

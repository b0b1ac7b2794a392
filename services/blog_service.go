package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-hub/config"
	"prompt-hub/dto"
	"prompt-hub/errs"
	"prompt-hub/eventbus"
	"prompt-hub/models"
	"prompt-hub/pagination"
	"prompt-hub/slug"
)

// BlogService implements the blog post lifecycle:
//
//	draft --publish--> published   [published_at = now]
//	published --unpublish--> draft
//	any --archive--> archived
//
// Posts are authored by admins only; the check lives inside this service.
type BlogService struct {
	posts      BlogPostStore
	categories BlogCategoryStore
	users      UserStore
	bus        eventbus.Publisher
}

func NewBlogService(posts BlogPostStore, categories BlogCategoryStore, users UserStore, bus eventbus.Publisher) *BlogService {
	if bus == nil {
		bus = eventbus.NopPublisher{}
	}
	return &BlogService{posts: posts, categories: categories, users: users, bus: bus}
}

type CreateBlogPostInput struct {
	Title         string
	Content       string
	Excerpt       string
	FeaturedImage string
	Category      string // blog category slug
	Tags          []string
	SEO           models.SEO
	ReadTime      int
}

// Create persists a new post in draft. The referenced blog category must
// exist; its counter is bumped at create time and recomputed by the
// reconciler on drift.
func (s *BlogService) Create(ctx context.Context, in CreateBlogPostInput, actorUID string) (*dto.BlogPostDTO, error) {
	admin, err := requireAdmin(ctx, s.users, actorUID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("title is required: %w", errs.ErrValidation)
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("content is required: %w", errs.ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("category is required: %w", errs.ErrValidation)
	}

	category, err := s.categories.FindBySlug(ctx, in.Category)
	if err != nil {
		return nil, fmt.Errorf("blog category %q: %w", in.Category, errs.ErrDanglingReference)
	}

	p := &models.BlogPost{
		Title:         in.Title,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		Slug:          slug.Generate(in.Title),
		FeaturedImage: in.FeaturedImage,
		Category:      category.Slug,
		Tags:          in.Tags,
		Status:        models.BlogPostStatusDraft,
		Author:        admin.UID,
		SEO:           in.SEO,
		ReadTime:      in.ReadTime,
	}

	if _, err := s.posts.Insert(ctx, p); err != nil {
		return nil, err
	}

	if err := s.categories.AdjustPostCount(ctx, category.ID, 1); err != nil {
		config.Log.Warnf("post_count increment failed for blog category %s: %v", category.Slug, err)
	}

	d := dto.NewBlogPostDTO(*p)
	return &d, nil
}

// Publish moves a draft to published and stamps published_at.
func (s *BlogService) Publish(ctx context.Context, hexID, actorUID string) error {
	return s.transition(ctx, hexID, actorUID, models.BlogPostStatusPublished)
}

// Unpublish reverts a published post to draft. published_at is kept as a
// record of the last publication.
func (s *BlogService) Unpublish(ctx context.Context, hexID, actorUID string) error {
	return s.transition(ctx, hexID, actorUID, models.BlogPostStatusDraft)
}

// Archive is reachable from any state and is terminal unless manually
// reverted through Unpublish-style admin edits.
func (s *BlogService) Archive(ctx context.Context, hexID, actorUID string) error {
	return s.transition(ctx, hexID, actorUID, models.BlogPostStatusArchived)
}

func (s *BlogService) transition(ctx context.Context, hexID, actorUID, target string) error {
	admin, err := requireAdmin(ctx, s.users, actorUID)
	if err != nil {
		return err
	}

	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("invalid post id %q: %w", hexID, errs.ErrValidation)
	}
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{"status": target}
	var eventType string
	switch target {
	case models.BlogPostStatusPublished:
		if p.Status != models.BlogPostStatusDraft {
			return fmt.Errorf("post is %s, not draft: %w", p.Status, errs.ErrInvalidTransition)
		}
		updates["published_at"] = time.Now()
		eventType = eventbus.EventPostPublished
	case models.BlogPostStatusDraft:
		if p.Status != models.BlogPostStatusPublished {
			return fmt.Errorf("post is %s, not published: %w", p.Status, errs.ErrInvalidTransition)
		}
		eventType = eventbus.EventPostUnpublished
	case models.BlogPostStatusArchived:
		eventType = eventbus.EventPostArchived
	default:
		return fmt.Errorf("unknown status %q: %w", target, errs.ErrValidation)
	}

	if err := s.posts.UpdateFields(ctx, id, updates); err != nil {
		return err
	}

	ev := eventbus.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EntityID:   hexID,
		ActorID:    admin.UID,
		OccurredAt: time.Now(),
	}
	if err := s.bus.Publish(ctx, eventbus.TopicModerationEvents, ev); err != nil {
		config.Log.Warnf("publish %s for %s failed: %v", eventType, hexID, err)
	}
	return nil
}

type UpdateBlogPostInput struct {
	Title         *string
	Content       *string
	Excerpt       *string
	FeaturedImage *string
	Tags          []string
	SEO           *models.SEO
	ReadTime      *int
}

// Update merges the provided fields.
func (s *BlogService) Update(ctx context.Context, hexID string, in UpdateBlogPostInput, actorUID string) error {
	if _, err := requireAdmin(ctx, s.users, actorUID); err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("invalid post id %q: %w", hexID, errs.ErrValidation)
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return fmt.Errorf("title is required: %w", errs.ErrValidation)
		}
		updates["title"] = *in.Title
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if in.Excerpt != nil {
		updates["excerpt"] = *in.Excerpt
	}
	if in.FeaturedImage != nil {
		updates["featured_image"] = *in.FeaturedImage
	}
	if in.Tags != nil {
		updates["tags"] = in.Tags
	}
	if in.SEO != nil {
		updates["seo"] = *in.SEO
	}
	if in.ReadTime != nil {
		updates["read_time"] = *in.ReadTime
	}
	if len(updates) == 0 {
		return nil
	}
	return s.posts.UpdateFields(ctx, id, updates)
}

// Delete hard-deletes the post and decrements its category counter
// best-effort.
func (s *BlogService) Delete(ctx context.Context, hexID, actorUID string) error {
	if _, err := requireAdmin(ctx, s.users, actorUID); err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("invalid post id %q: %w", hexID, errs.ErrValidation)
	}
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	if category, err := s.categories.FindBySlug(ctx, p.Category); err == nil {
		if err := s.categories.AdjustPostCount(ctx, category.ID, -1); err != nil {
			config.Log.Warnf("post_count decrement failed for blog category %s: %v", p.Category, err)
		}
	}
	return nil
}

type ListBlogPostsInput struct {
	Status   string
	Category string // blog category slug
	Page     int
	PageSize int
}

// List returns one page of posts in the given status, optionally narrowed
// to a category, sorted by created-at descending in memory.
func (s *BlogService) List(ctx context.Context, in ListBlogPostsInput) (pagination.Page[dto.BlogPostDTO], error) {
	var empty pagination.Page[dto.BlogPostDTO]
	if !models.ValidBlogPostStatus(in.Status) {
		return empty, fmt.Errorf("unknown status %q: %w", in.Status, errs.ErrValidation)
	}
	page, pageSize := clampPaging(in.Page, in.PageSize)

	var items []models.BlogPost
	var err error
	if in.Category != "" {
		items, err = s.posts.FindByCategory(ctx, in.Category)
		if err != nil {
			return empty, err
		}
		filtered := items[:0:0]
		for _, p := range items {
			if p.Status == in.Status {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	} else {
		items, err = s.posts.FindByStatus(ctx, in.Status)
		if err != nil {
			return empty, err
		}
	}

	paged := pagination.Paginate(items, page, pageSize, func(p models.BlogPost) time.Time { return p.CreatedAt })
	return mapPage(paged, dto.NewBlogPostListDTO), nil
}

// GetBySlug returns a single post and bumps its view counter with an
// atomic increment. Only published posts are visible through this path.
func (s *BlogService) GetBySlug(ctx context.Context, slugStr string) (*dto.BlogPostDTO, error) {
	p, err := s.posts.FindBySlug(ctx, slugStr)
	if err != nil {
		return nil, err
	}
	if p.Status != models.BlogPostStatusPublished {
		return nil, fmt.Errorf("blog post %q: %w", slugStr, errs.ErrNotFound)
	}

	if err := s.posts.IncrementViews(ctx, p.ID); err != nil {
		config.Log.Warnf("view increment failed for post %s: %v", p.ID.Hex(), err)
	} else {
		p.Views++
	}

	d := dto.NewBlogPostDTO(*p)
	return &d, nil
}

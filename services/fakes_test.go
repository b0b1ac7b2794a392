package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-hub/errs"
	"prompt-hub/models"
)

// In-memory stores standing in for the Mongo repositories. They mirror
// the repository contracts: merge updates stamp updated_at, missing
// documents return ErrNotFound, and finds never sort.

type fakePromptStore struct {
	docs    map[primitive.ObjectID]*models.Prompt
	failAll error
}

func newFakePromptStore() *fakePromptStore {
	return &fakePromptStore{docs: map[primitive.ObjectID]*models.Prompt{}}
}

func (f *fakePromptStore) Insert(ctx context.Context, p *models.Prompt) (primitive.ObjectID, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.ID = primitive.NewObjectID()
	cp := *p
	f.docs[p.ID] = &cp
	return p.ID, nil
}

func (f *fakePromptStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Prompt, error) {
	p, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("prompt %s: %w", id.Hex(), errs.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (f *fakePromptStore) FindBySlug(ctx context.Context, slug string) (*models.Prompt, error) {
	for _, p := range f.docs {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("prompt slug %q: %w", slug, errs.ErrNotFound)
}

func (f *fakePromptStore) FindByStatus(ctx context.Context, status string) ([]models.Prompt, error) {
	var out []models.Prompt
	for _, p := range f.docs {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePromptStore) FindByCategory(ctx context.Context, category string) ([]models.Prompt, error) {
	var out []models.Prompt
	for _, p := range f.docs {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePromptStore) All(ctx context.Context) ([]models.Prompt, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var out []models.Prompt
	for _, p := range f.docs {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePromptStore) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	p, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("prompt %s: %w", id.Hex(), errs.ErrNotFound)
	}
	for k, v := range updates {
		switch k {
		case "status":
			p.Status = v.(string)
		case "approved_by":
			p.ApprovedBy = v.(string)
		case "title":
			p.Title = v.(string)
		case "description":
			p.Description = v.(string)
		case "full_prompt":
			p.FullPrompt = v.(string)
		case "tags":
			p.Tags = v.([]string)
		case "images":
			p.Images = v.([]string)
		}
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (f *fakePromptStore) IncrementVote(ctx context.Context, id primitive.ObjectID, up bool) error {
	p, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("prompt %s: %w", id.Hex(), errs.ErrNotFound)
	}
	if up {
		p.Upvotes++
	} else {
		p.Downvotes++
	}
	return nil
}

func (f *fakePromptStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return fmt.Errorf("prompt %s: %w", id.Hex(), errs.ErrNotFound)
	}
	delete(f.docs, id)
	return nil
}

func (f *fakePromptStore) CountByCategory(ctx context.Context, category string) (int64, error) {
	var n int64
	for _, p := range f.docs {
		if p.Category == category {
			n++
		}
	}
	return n, nil
}

type fakeCategoryStore struct {
	docs       map[primitive.ObjectID]*models.Category
	adjustErr  error
	adjustLogs []int64
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{docs: map[primitive.ObjectID]*models.Category{}}
}

func (f *fakeCategoryStore) add(name string, active bool) *models.Category {
	c := &models.Category{
		ID:        primitive.NewObjectID(),
		CreatedAt: time.Now(),
		Name:      name,
		Slug:      name,
		IsActive:  active,
	}
	f.docs[c.ID] = c
	return c
}

func (f *fakeCategoryStore) Insert(ctx context.Context, c *models.Category) (primitive.ObjectID, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.ID = primitive.NewObjectID()
	cp := *c
	f.docs[c.ID] = &cp
	return c.ID, nil
}

func (f *fakeCategoryStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	c, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("category %s: %w", id.Hex(), errs.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryStore) FindByName(ctx context.Context, name string) (*models.Category, error) {
	for _, c := range f.docs {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", name, errs.ErrNotFound)
}

func (f *fakeCategoryStore) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, c := range f.docs {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("category slug %q: %w", slug, errs.ErrNotFound)
}

func (f *fakeCategoryStore) All(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.docs {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryStore) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	c, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("category %s: %w", id.Hex(), errs.ErrNotFound)
	}
	for k, v := range updates {
		switch k {
		case "description":
			c.Description = v.(string)
		case "is_active":
			c.IsActive = v.(bool)
		}
	}
	c.UpdatedAt = time.Now()
	return nil
}

func (f *fakeCategoryStore) AdjustPromptCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	if f.adjustErr != nil {
		return f.adjustErr
	}
	c, ok := f.docs[id]
	if !ok {
		return errors.New("category missing")
	}
	c.PromptCount += delta
	f.adjustLogs = append(f.adjustLogs, delta)
	return nil
}

func (f *fakeCategoryStore) SetPromptCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	c, ok := f.docs[id]
	if !ok {
		return errors.New("category missing")
	}
	c.PromptCount = count
	return nil
}

func (f *fakeCategoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return fmt.Errorf("category %s: %w", id.Hex(), errs.ErrNotFound)
	}
	delete(f.docs, id)
	return nil
}

type fakeUserStore struct {
	docs map[string]*models.UserProfile
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{docs: map[string]*models.UserProfile{}}
}

func (f *fakeUserStore) add(uid string, admin bool) *models.UserProfile {
	u := &models.UserProfile{UID: uid, CreatedAt: time.Now(), Email: uid + "@example.com", IsAdmin: admin}
	f.docs[uid] = u
	return u
}

func (f *fakeUserStore) FindByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	u, ok := f.docs[uid]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", uid, errs.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) Upsert(ctx context.Context, u *models.UserProfile) error {
	if existing, ok := f.docs[u.UID]; ok {
		existing.Email = u.Email
		existing.DisplayName = u.DisplayName
		existing.Avatar = u.Avatar
		existing.UpdatedAt = time.Now()
		return nil
	}
	cp := *u
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	f.docs[u.UID] = &cp
	return nil
}

func (f *fakeUserStore) UpdateFields(ctx context.Context, uid string, updates map[string]interface{}) error {
	u, ok := f.docs[uid]
	if !ok {
		return fmt.Errorf("user %s: %w", uid, errs.ErrNotFound)
	}
	for k, v := range updates {
		switch k {
		case "display_name":
			u.DisplayName = v.(string)
		case "bio":
			u.Bio = v.(string)
		case "avatar":
			u.Avatar = v.(string)
		case "social_media":
			u.SocialMedia = v.(models.SocialMedia)
		}
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserStore) All(ctx context.Context) ([]models.UserProfile, error) {
	var out []models.UserProfile
	for _, u := range f.docs {
		out = append(out, *u)
	}
	return out, nil
}

type fakeBlogPostStore struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]*models.BlogPost
}

func newFakeBlogPostStore() *fakeBlogPostStore {
	return &fakeBlogPostStore{docs: map[primitive.ObjectID]*models.BlogPost{}}
}

func (f *fakeBlogPostStore) Insert(ctx context.Context, p *models.BlogPost) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.ID = primitive.NewObjectID()
	cp := *p
	f.docs[p.ID] = &cp
	return p.ID, nil
}

func (f *fakeBlogPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("blog post %s: %w", id.Hex(), errs.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeBlogPostStore) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.docs {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("blog post slug %q: %w", slug, errs.ErrNotFound)
}

func (f *fakeBlogPostStore) FindByStatus(ctx context.Context, status string) ([]models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BlogPost
	for _, p := range f.docs {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeBlogPostStore) FindByCategory(ctx context.Context, category string) ([]models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BlogPost
	for _, p := range f.docs {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeBlogPostStore) All(ctx context.Context) ([]models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BlogPost
	for _, p := range f.docs {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeBlogPostStore) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("blog post %s: %w", id.Hex(), errs.ErrNotFound)
	}
	for k, v := range updates {
		switch k {
		case "status":
			p.Status = v.(string)
		case "published_at":
			p.PublishedAt = v.(time.Time)
		case "title":
			p.Title = v.(string)
		case "content":
			p.Content = v.(string)
		case "excerpt":
			p.Excerpt = v.(string)
		case "featured_image":
			p.FeaturedImage = v.(string)
		case "tags":
			p.Tags = v.([]string)
		case "seo":
			p.SEO = v.(models.SEO)
		case "read_time":
			p.ReadTime = v.(int)
		}
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBlogPostStore) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("blog post %s: %w", id.Hex(), errs.ErrNotFound)
	}
	p.Views++
	return nil
}

func (f *fakeBlogPostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.docs[id]; !ok {
		return fmt.Errorf("blog post %s: %w", id.Hex(), errs.ErrNotFound)
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeBlogPostStore) CountByCategory(ctx context.Context, category string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.docs {
		if p.Category == category {
			n++
		}
	}
	return n, nil
}

type fakeBlogCategoryStore struct {
	docs map[primitive.ObjectID]*models.BlogCategory
}

func newFakeBlogCategoryStore() *fakeBlogCategoryStore {
	return &fakeBlogCategoryStore{docs: map[primitive.ObjectID]*models.BlogCategory{}}
}

func (f *fakeBlogCategoryStore) add(name, slug string) *models.BlogCategory {
	c := &models.BlogCategory{ID: primitive.NewObjectID(), CreatedAt: time.Now(), Name: name, Slug: slug}
	f.docs[c.ID] = c
	return c
}

func (f *fakeBlogCategoryStore) Insert(ctx context.Context, c *models.BlogCategory) (primitive.ObjectID, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.ID = primitive.NewObjectID()
	cp := *c
	f.docs[c.ID] = &cp
	return c.ID, nil
}

func (f *fakeBlogCategoryStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogCategory, error) {
	c, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("blog category %s: %w", id.Hex(), errs.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (f *fakeBlogCategoryStore) FindBySlug(ctx context.Context, slug string) (*models.BlogCategory, error) {
	for _, c := range f.docs {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("blog category slug %q: %w", slug, errs.ErrNotFound)
}

func (f *fakeBlogCategoryStore) All(ctx context.Context) ([]models.BlogCategory, error) {
	var out []models.BlogCategory
	for _, c := range f.docs {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeBlogCategoryStore) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	c, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("blog category %s: %w", id.Hex(), errs.ErrNotFound)
	}
	if v, ok := updates["description"]; ok {
		c.Description = v.(string)
	}
	if v, ok := updates["color"]; ok {
		c.Color = v.(string)
	}
	c.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBlogCategoryStore) AdjustPostCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	c, ok := f.docs[id]
	if !ok {
		return errors.New("blog category missing")
	}
	c.PostCount += delta
	return nil
}

func (f *fakeBlogCategoryStore) SetPostCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	c, ok := f.docs[id]
	if !ok {
		return errors.New("blog category missing")
	}
	c.PostCount = count
	return nil
}

func (f *fakeBlogCategoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return fmt.Errorf("blog category %s: %w", id.Hex(), errs.ErrNotFound)
	}
	delete(f.docs, id)
	return nil
}

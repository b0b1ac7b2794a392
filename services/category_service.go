package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-hub/dto"
	"prompt-hub/errs"
	"prompt-hub/models"
	"prompt-hub/slug"
)

// CategoryService manages prompt and blog categories. Creation and
// deletion are admin-only; listings are public.
type CategoryService struct {
	categories     CategoryStore
	blogCategories BlogCategoryStore
	users          UserStore
}

func NewCategoryService(categories CategoryStore, blogCategories BlogCategoryStore, users UserStore) *CategoryService {
	return &CategoryService{categories: categories, blogCategories: blogCategories, users: users}
}

type CreateCategoryInput struct {
	Name        string
	Description string
}

// CreateCategory persists a new active prompt category with a zero
// counter.
func (s *CategoryService) CreateCategory(ctx context.Context, in CreateCategoryInput, actorUID string) (*dto.CategoryDTO, error) {
	admin, err := requireAdmin(ctx, s.users, actorUID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", errs.ErrValidation)
	}

	c := &models.Category{
		Name:        in.Name,
		Slug:        slug.Generate(in.Name),
		Description: in.Description,
		IsActive:    true,
		CreatedBy:   admin.UID,
	}
	if _, err := s.categories.Insert(ctx, c); err != nil {
		return nil, err
	}
	d := dto.NewCategoryDTO(*c)
	return &d, nil
}

// ListCategories returns all prompt categories. Inactive ones are
// filtered out unless includeInactive is set (admin listings).
func (s *CategoryService) ListCategories(ctx context.Context, includeInactive bool) ([]dto.CategoryDTO, error) {
	items, err := s.categories.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(items))
	for _, c := range items {
		if !includeInactive && !c.IsActive {
			continue
		}
		out = append(out, dto.NewCategoryDTO(c))
	}
	return out, nil
}

type UpdateCategoryInput struct {
	Description *string
	IsActive    *bool
}

// UpdateCategory merges the provided fields. Name and slug are immutable:
// prompts reference the category by name string.
func (s *CategoryService) UpdateCategory(ctx context.Context, hexID string, in UpdateCategoryInput, actorUID string) error {
	if _, err := requireAdmin(ctx, s.users, actorUID); err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("invalid category id %q: %w", hexID, errs.ErrValidation)
	}

	updates := map[string]interface{}{}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if len(updates) == 0 {
		return nil
	}
	return s.categories.UpdateFields(ctx, id, updates)
}

// DeleteCategory hard-deletes the category. Prompts still referencing it
// dangle; listing paths treat an unknown category as an empty result.
func (s *CategoryService) DeleteCategory(ctx context.Context, hexID, actorUID string) error {
	if _, err := requireAdmin(ctx, s.users, actorUID); err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("invalid category id %q: %w", hexID, errs.ErrValidation)
	}
	return s.categories.Delete(ctx, id)
}

type CreateBlogCategoryInput struct {
	Name        string
	Description string
	Color       string
}

// CreateBlogCategory persists a new blog category with a zero counter.
func (s *CategoryService) CreateBlogCategory(ctx context.Context, in CreateBlogCategoryInput, actorUID string) (*dto.BlogCategoryDTO, error) {
	if _, err := requireAdmin(ctx, s.users, actorUID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", errs.ErrValidation)
	}

	c := &models.BlogCategory{
		Name:        in.Name,
		Slug:        slug.Generate(in.Name),
		Description: in.Description,
		Color:       in.Color,
	}
	if _, err := s.blogCategories.Insert(ctx, c); err != nil {
		return nil, err
	}
	d := dto.NewBlogCategoryDTO(*c)
	return &d, nil
}

// ListBlogCategories returns all blog categories.
func (s *CategoryService) ListBlogCategories(ctx context.Context) ([]dto.BlogCategoryDTO, error) {
	items, err := s.blogCategories.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BlogCategoryDTO, 0, len(items))
	for _, c := range items {
		out = append(out, dto.NewBlogCategoryDTO(c))
	}
	return out, nil
}

// DeleteBlogCategory hard-deletes the blog category.
func (s *CategoryService) DeleteBlogCategory(ctx context.Context, hexID, actorUID string) error {
	if _, err := requireAdmin(ctx, s.users, actorUID); err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("invalid blog category id %q: %w", hexID, errs.ErrValidation)
	}
	return s.blogCategories.Delete(ctx, id)
}

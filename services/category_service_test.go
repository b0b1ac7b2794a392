package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-hub/errs"
	"prompt-hub/services"
)

func newCategoryFixture(t *testing.T) (*services.CategoryService, *fakeCategoryStore, *fakeBlogCategoryStore, *fakeUserStore) {
	t.Helper()
	categories := newFakeCategoryStore()
	blogCategories := newFakeBlogCategoryStore()
	users := newFakeUserStore()
	users.add("admin-1", true)
	users.add("alice", false)
	svc := services.NewCategoryService(categories, blogCategories, users)
	return svc, categories, blogCategories, users
}

func TestCreateCategory(t *testing.T) {
	svc, _, _, _ := newCategoryFixture(t)

	d, err := svc.CreateCategory(context.Background(), services.CreateCategoryInput{
		Name:        "Creative Writing",
		Description: "story and poetry prompts",
	}, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, "Creative Writing", d.Name)
	assert.Equal(t, "creative-writing", d.Slug)
	assert.True(t, d.IsActive)
	assert.Equal(t, int64(0), d.PromptCount)
}

func TestCreateCategoryAdminOnly(t *testing.T) {
	svc, _, _, _ := newCategoryFixture(t)

	_, err := svc.CreateCategory(context.Background(), services.CreateCategoryInput{Name: "Nope"}, "alice")
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestListCategoriesFiltersInactive(t *testing.T) {
	svc, categories, _, _ := newCategoryFixture(t)
	categories.add("active-one", true)
	categories.add("retired-one", false)

	visible, err := svc.ListCategories(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "active-one", visible[0].Name)

	all, err := svc.ListCategories(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateCategoryKeepsNameAndSlug(t *testing.T) {
	svc, categories, _, _ := newCategoryFixture(t)
	ctx := context.Background()
	c := categories.add("coding", true)

	desc := "now with a description"
	inactive := false
	err := svc.UpdateCategory(ctx, c.ID.Hex(), services.UpdateCategoryInput{
		Description: &desc,
		IsActive:    &inactive,
	}, "admin-1")
	require.NoError(t, err)

	got, err := categories.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "coding", got.Name)
	assert.Equal(t, "coding", got.Slug)
	assert.Equal(t, desc, got.Description)
	assert.False(t, got.IsActive)
}

func TestCreateBlogCategory(t *testing.T) {
	svc, _, _, _ := newCategoryFixture(t)

	d, err := svc.CreateBlogCategory(context.Background(), services.CreateBlogCategoryInput{
		Name:  "Product News",
		Color: "#336699",
	}, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, "product-news", d.Slug)
	assert.Equal(t, "#336699", d.Color)
	assert.Equal(t, int64(0), d.PostCount)
}

func TestDeleteCategoryAdminOnly(t *testing.T) {
	svc, categories, _, _ := newCategoryFixture(t)
	c := categories.add("doomed", true)

	err := svc.DeleteCategory(context.Background(), c.ID.Hex(), "alice")
	assert.ErrorIs(t, err, errs.ErrForbidden)

	require.NoError(t, svc.DeleteCategory(context.Background(), c.ID.Hex(), "admin-1"))
	_, err = categories.FindByID(context.Background(), c.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

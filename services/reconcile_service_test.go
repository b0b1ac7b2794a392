package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-hub/models"
	"prompt-hub/services"
)

func TestReconcileHealsDriftedCounters(t *testing.T) {
	ctx := context.Background()
	prompts := newFakePromptStore()
	posts := newFakeBlogPostStore()
	categories := newFakeCategoryStore()
	blogCategories := newFakeBlogCategoryStore()

	coding := categories.add("coding", true)
	writing := categories.add("writing", true)
	news := blogCategories.add("News", "news")

	for i := 0; i < 3; i++ {
		_, err := prompts.Insert(ctx, &models.Prompt{Title: "p", Category: "coding", Status: models.PromptStatusApproved})
		require.NoError(t, err)
	}
	_, err := posts.Insert(ctx, &models.BlogPost{Title: "b", Category: "news", Status: models.BlogPostStatusPublished})
	require.NoError(t, err)

	// Stored counters disagree with the real document counts.
	require.NoError(t, categories.SetPromptCount(ctx, coding.ID, 7))
	require.NoError(t, categories.SetPromptCount(ctx, writing.ID, 2))
	require.NoError(t, blogCategories.SetPostCount(ctx, news.ID, 0))

	svc := services.NewReconcileService(prompts, posts, categories, blogCategories)
	fixed, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, fixed)

	got, err := categories.FindByName(ctx, "coding")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.PromptCount)

	got, err = categories.FindByName(ctx, "writing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.PromptCount)

	gotBlog, err := blogCategories.FindBySlug(ctx, "news")
	require.NoError(t, err)
	assert.Equal(t, int64(1), gotBlog.PostCount)
}

func TestReconcileNoDrift(t *testing.T) {
	ctx := context.Background()
	prompts := newFakePromptStore()
	categories := newFakeCategoryStore()
	coding := categories.add("coding", true)

	_, err := prompts.Insert(ctx, &models.Prompt{Title: "p", Category: "coding", Status: models.PromptStatusApproved})
	require.NoError(t, err)
	require.NoError(t, categories.SetPromptCount(ctx, coding.ID, 1))

	svc := services.NewReconcileService(prompts, newFakeBlogPostStore(), categories, newFakeBlogCategoryStore())
	fixed, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, fixed)
}

package services

import (
	"context"

	"prompt-hub/config"
)

// ReconcileService recomputes denormalized category counters from the
// owning collections. Counter updates at create/delete time are
// best-effort side calls with no transaction, so counters drift under
// partial failure; this job is the standing mitigation.
type ReconcileService struct {
	prompts        PromptStore
	posts          BlogPostStore
	categories     CategoryStore
	blogCategories BlogCategoryStore
}

func NewReconcileService(prompts PromptStore, posts BlogPostStore, categories CategoryStore, blogCategories BlogCategoryStore) *ReconcileService {
	return &ReconcileService{
		prompts:        prompts,
		posts:          posts,
		categories:     categories,
		blogCategories: blogCategories,
	}
}

// Run recomputes every counter once. Counters mean "all entities in the
// category" regardless of moderation state. Returns the number of
// counters that were out of sync.
func (s *ReconcileService) Run(ctx context.Context) (int, error) {
	fixed := 0

	categories, err := s.categories.All(ctx)
	if err != nil {
		return 0, err
	}
	for _, c := range categories {
		actual, err := s.prompts.CountByCategory(ctx, c.Name)
		if err != nil {
			return fixed, err
		}
		if actual != c.PromptCount {
			config.Log.Infof("category %s prompt_count drifted: stored=%d actual=%d", c.Name, c.PromptCount, actual)
			if err := s.categories.SetPromptCount(ctx, c.ID, actual); err != nil {
				return fixed, err
			}
			fixed++
		}
	}

	blogCategories, err := s.blogCategories.All(ctx)
	if err != nil {
		return fixed, err
	}
	for _, c := range blogCategories {
		actual, err := s.posts.CountByCategory(ctx, c.Slug)
		if err != nil {
			return fixed, err
		}
		if actual != c.PostCount {
			config.Log.Infof("blog category %s post_count drifted: stored=%d actual=%d", c.Slug, c.PostCount, actual)
			if err := s.blogCategories.SetPostCount(ctx, c.ID, actual); err != nil {
				return fixed, err
			}
			fixed++
		}
	}

	return fixed, nil
}

package services

import (
	"context"
	"time"

	"prompt-hub/dto"
	"prompt-hub/models"
	"prompt-hub/pagination"
)

// AdminService computes dashboard rollups by full-collection scan and
// in-memory reduction. Cost is O(collection size) per call with no
// caching; the repository scan bound is the ceiling. Errors propagate to
// the caller like every other read path.
type AdminService struct {
	prompts PromptStore
	users   UserStore
}

func NewAdminService(prompts PromptStore, users UserStore) *AdminService {
	return &AdminService{prompts: prompts, users: users}
}

// GetStats returns user and prompt totals broken down by moderation
// state.
func (s *AdminService) GetStats(ctx context.Context, actorUID string) (*dto.StatsDTO, error) {
	if _, err := requireAdmin(ctx, s.users, actorUID); err != nil {
		return nil, err
	}

	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	prompts, err := s.prompts.All(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsDTO{
		TotalUsers:   int64(len(users)),
		TotalPrompts: int64(len(prompts)),
	}
	for _, p := range prompts {
		switch p.Status {
		case models.PromptStatusPending:
			stats.PendingPrompts++
		case models.PromptStatusApproved:
			stats.ApprovedPrompts++
		case models.PromptStatusRejected:
			stats.RejectedPrompts++
		}
	}
	return stats, nil
}

// ListPendingPrompts returns the moderation queue, newest first like
// every other listing.
func (s *AdminService) ListPendingPrompts(ctx context.Context, actorUID string, page, pageSize int) (pagination.Page[dto.PromptDTO], error) {
	var empty pagination.Page[dto.PromptDTO]
	if _, err := requireAdmin(ctx, s.users, actorUID); err != nil {
		return empty, err
	}
	page, pageSize = clampPaging(page, pageSize)

	items, err := s.prompts.FindByStatus(ctx, models.PromptStatusPending)
	if err != nil {
		return empty, err
	}
	paged := pagination.Paginate(items, page, pageSize, func(p models.Prompt) time.Time { return p.CreatedAt })
	return mapPage(paged, dto.NewPromptDTO), nil
}

// ListUsers returns one page of profiles for the admin panel.
func (s *AdminService) ListUsers(ctx context.Context, actorUID string, page, pageSize int) (pagination.Page[dto.UserDTO], error) {
	var empty pagination.Page[dto.UserDTO]
	if _, err := requireAdmin(ctx, s.users, actorUID); err != nil {
		return empty, err
	}
	page, pageSize = clampPaging(page, pageSize)

	items, err := s.users.All(ctx)
	if err != nil {
		return empty, err
	}
	paged := pagination.Paginate(items, page, pageSize, func(u models.UserProfile) time.Time { return u.CreatedAt })
	return mapPage(paged, dto.NewUserDTO), nil
}

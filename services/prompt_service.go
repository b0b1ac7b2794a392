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

// PromptService implements the prompt moderation workflow:
//
//	(create, contributor) -> pending
//	(create, admin)       -> approved  [approved_by = creator]
//	pending --approve--> approved      [approved_by = admin]
//	pending --reject--> rejected       [approved_by = admin]
//
// approved and rejected are terminal. Admin verification happens inside
// this service, never at call sites.
type PromptService struct {
	prompts    PromptStore
	categories CategoryStore
	users      UserStore
	bus        eventbus.Publisher
}

func NewPromptService(prompts PromptStore, categories CategoryStore, users UserStore, bus eventbus.Publisher) *PromptService {
	if bus == nil {
		bus = eventbus.NopPublisher{}
	}
	return &PromptService{prompts: prompts, categories: categories, users: users, bus: bus}
}

type CreatePromptInput struct {
	Title       string
	Description string
	Category    string
	FullPrompt  string
	Tags        []string
	Images      []string
}

// Create validates and persists a new prompt. Contributors land in
// pending; admins are auto-approved with themselves as approver. The
// category counter is bumped at create time regardless of status, so
// counters mean "all prompts in category" including unapproved ones;
// the reconciler recomputes under the same definition.
func (s *PromptService) Create(ctx context.Context, in CreatePromptInput, actorUID string) (*dto.PromptDTO, error) {
	if err := validateCreatePrompt(in); err != nil {
		return nil, err
	}
	if actorUID == "" {
		return nil, fmt.Errorf("missing actor: %w", errs.ErrValidation)
	}

	actor, err := s.users.FindByUID(ctx, actorUID)
	if err != nil {
		return nil, fmt.Errorf("creator %s: %w", actorUID, errs.ErrDanglingReference)
	}
	category, err := s.categories.FindByName(ctx, in.Category)
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", in.Category, errs.ErrDanglingReference)
	}

	p := &models.Prompt{
		Title:       in.Title,
		Description: in.Description,
		Category:    category.Name,
		FullPrompt:  in.FullPrompt,
		Slug:        slug.Generate(in.Title),
		Tags:        in.Tags,
		Images:      in.Images,
		Status:      models.PromptStatusPending,
		CreatedBy:   actor.UID,
	}
	if actor.IsAdmin {
		p.Status = models.PromptStatusApproved
		p.ApprovedBy = actor.UID
	}

	if _, err := s.prompts.Insert(ctx, p); err != nil {
		return nil, err
	}

	// Counter update is a separate call with no transaction; on failure
	// the counter drifts until the reconciler recomputes it.
	if err := s.categories.AdjustPromptCount(ctx, category.ID, 1); err != nil {
		config.Log.Warnf("prompt_count increment failed for category %s: %v", category.Name, err)
	}

	s.publish(ctx, eventbus.EventPromptSubmitted, p.ID.Hex(), actor.UID)

	d := dto.NewPromptDTO(*p)
	return &d, nil
}

// Approve transitions a pending prompt to approved, stamping the admin
// as approver.
func (s *PromptService) Approve(ctx context.Context, hexID, actorUID string) (*dto.PromptDTO, error) {
	return s.moderate(ctx, hexID, actorUID, models.PromptStatusApproved, eventbus.EventPromptApproved)
}

// Reject transitions a pending prompt to rejected. Rejected is terminal:
// no workflow transition leads out of it.
func (s *PromptService) Reject(ctx context.Context, hexID, actorUID string) (*dto.PromptDTO, error) {
	return s.moderate(ctx, hexID, actorUID, models.PromptStatusRejected, eventbus.EventPromptRejected)
}

func (s *PromptService) moderate(ctx context.Context, hexID, actorUID, target, eventType string) (*dto.PromptDTO, error) {
	admin, err := requireAdmin(ctx, s.users, actorUID)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, fmt.Errorf("invalid prompt id %q: %w", hexID, errs.ErrValidation)
	}
	p, err := s.prompts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != models.PromptStatusPending {
		return nil, fmt.Errorf("prompt is %s, not pending: %w", p.Status, errs.ErrInvalidTransition)
	}

	if err := s.prompts.UpdateFields(ctx, id, map[string]interface{}{
		"status":      target,
		"approved_by": admin.UID,
	}); err != nil {
		return nil, err
	}
	p.Status = target
	p.ApprovedBy = admin.UID
	p.UpdatedAt = time.Now()

	s.publish(ctx, eventType, p.ID.Hex(), admin.UID)

	d := dto.NewPromptDTO(*p)
	return &d, nil
}

type UpdatePromptInput struct {
	Title       *string
	Description *string
	FullPrompt  *string
	Tags        []string
	Images      []string
}

// Update merges the provided fields. Only the creator or an admin may
// update; the slug is not regenerated, it sticks to the original title.
func (s *PromptService) Update(ctx context.Context, hexID string, in UpdatePromptInput, actorUID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("invalid prompt id %q: %w", hexID, errs.ErrValidation)
	}
	p, err := s.prompts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrAdmin(ctx, p.CreatedBy, actorUID); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return fmt.Errorf("title is required: %w", errs.ErrValidation)
		}
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.FullPrompt != nil {
		updates["full_prompt"] = *in.FullPrompt
	}
	if in.Tags != nil {
		updates["tags"] = in.Tags
	}
	if in.Images != nil {
		updates["images"] = in.Images
	}
	if len(updates) == 0 {
		return nil
	}
	return s.prompts.UpdateFields(ctx, id, updates)
}

// Delete hard-deletes the prompt and decrements its category counter
// best-effort. No cascade beyond the counter.
func (s *PromptService) Delete(ctx context.Context, hexID, actorUID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("invalid prompt id %q: %w", hexID, errs.ErrValidation)
	}
	p, err := s.prompts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrAdmin(ctx, p.CreatedBy, actorUID); err != nil {
		return err
	}

	if err := s.prompts.Delete(ctx, id); err != nil {
		return err
	}

	if category, err := s.categories.FindByName(ctx, p.Category); err == nil {
		if err := s.categories.AdjustPromptCount(ctx, category.ID, -1); err != nil {
			config.Log.Warnf("prompt_count decrement failed for category %s: %v", p.Category, err)
		}
	}

	s.publish(ctx, eventbus.EventPromptDeleted, hexID, actorUID)
	return nil
}

type ListPromptsInput struct {
	Status   string
	Category string
	Page     int
	PageSize int
}

// List returns one page of prompts in the given status, optionally
// narrowed to a category. The store filters on a single field; the other
// criterion and the created-at sort are applied in memory.
func (s *PromptService) List(ctx context.Context, in ListPromptsInput) (pagination.Page[dto.PromptDTO], error) {
	var empty pagination.Page[dto.PromptDTO]
	if !models.ValidPromptStatus(in.Status) {
		return empty, fmt.Errorf("unknown status %q: %w", in.Status, errs.ErrValidation)
	}
	page, pageSize := clampPaging(in.Page, in.PageSize)

	var items []models.Prompt
	var err error
	if in.Category != "" {
		items, err = s.prompts.FindByCategory(ctx, in.Category)
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
		items, err = s.prompts.FindByStatus(ctx, in.Status)
		if err != nil {
			return empty, err
		}
	}

	paged := pagination.Paginate(items, page, pageSize, func(p models.Prompt) time.Time { return p.CreatedAt })
	return mapPage(paged, dto.NewPromptDTO), nil
}

// GetBySlug returns a single prompt by slug. Only approved prompts are
// visible through this path; pending and rejected ones read as not found.
func (s *PromptService) GetBySlug(ctx context.Context, slugStr string) (*dto.PromptDTO, error) {
	p, err := s.prompts.FindBySlug(ctx, slugStr)
	if err != nil {
		return nil, err
	}
	if p.Status != models.PromptStatusApproved {
		return nil, fmt.Errorf("prompt %q: %w", slugStr, errs.ErrNotFound)
	}
	d := dto.NewPromptDTO(*p)
	return &d, nil
}

// Vote records an up or down vote.
func (s *PromptService) Vote(ctx context.Context, hexID string, up bool) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return fmt.Errorf("invalid prompt id %q: %w", hexID, errs.ErrValidation)
	}
	return s.prompts.IncrementVote(ctx, id, up)
}

func (s *PromptService) requireOwnerOrAdmin(ctx context.Context, ownerUID, actorUID string) error {
	if actorUID == "" {
		return fmt.Errorf("missing actor: %w", errs.ErrForbidden)
	}
	if actorUID == ownerUID {
		return nil
	}
	_, err := requireAdmin(ctx, s.users, actorUID)
	return err
}

func (s *PromptService) publish(ctx context.Context, eventType, entityID, actorUID string) {
	ev := eventbus.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EntityID:   entityID,
		ActorID:    actorUID,
		OccurredAt: time.Now(),
	}
	if err := s.bus.Publish(ctx, eventbus.TopicModerationEvents, ev); err != nil {
		config.Log.Warnf("publish %s for %s failed: %v", eventType, entityID, err)
	}
}

func validateCreatePrompt(in CreatePromptInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required: %w", errs.ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("description is required: %w", errs.ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("category is required: %w", errs.ErrValidation)
	}
	if strings.TrimSpace(in.FullPrompt) == "" {
		return fmt.Errorf("full_prompt is required: %w", errs.ErrValidation)
	}
	return nil
}

// clampPaging normalizes page and page size to configured bounds.
func clampPaging(page, pageSize int) (int, int) {
	cfg := config.GetConfig().Catalog
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > cfg.MaxPageSize {
		pageSize = cfg.DefaultPageSize
	}
	return page, pageSize
}

// mapPage converts a page of models into a page of DTOs, keeping the
// bookkeeping fields.
func mapPage[M any, D any](p pagination.Page[M], f func(M) D) pagination.Page[D] {
	out := pagination.Page[D]{
		Items:      make([]D, 0, len(p.Items)),
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		HasMore:    p.HasMore,
	}
	for _, m := range p.Items {
		out.Items = append(out.Items, f(m))
	}
	return out
}

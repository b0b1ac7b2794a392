package services

import (
	"context"
	"fmt"

	"prompt-hub/dto"
	"prompt-hub/errs"
	"prompt-hub/models"
)

// UserService manages profiles mirrored from the identity provider.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

type EnsureProfileInput struct {
	UID         string
	Email       string
	DisplayName string
	Avatar      string
}

// EnsureProfile creates the profile lazily on first authenticated touch
// and refreshes provider-sourced fields on later sign-ins. is_admin is
// never changed here.
func (s *UserService) EnsureProfile(ctx context.Context, in EnsureProfileInput) (*dto.UserDTO, error) {
	if in.UID == "" {
		return nil, fmt.Errorf("uid is required: %w", errs.ErrValidation)
	}

	u := &models.UserProfile{
		UID:         in.UID,
		Email:       in.Email,
		DisplayName: in.DisplayName,
		Avatar:      in.Avatar,
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		return nil, err
	}

	stored, err := s.users.FindByUID(ctx, in.UID)
	if err != nil {
		return nil, err
	}
	d := dto.NewUserDTO(*stored)
	return &d, nil
}

// Get returns a profile by uid.
func (s *UserService) Get(ctx context.Context, uid string) (*dto.UserDTO, error) {
	u, err := s.users.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	d := dto.NewUserDTO(*u)
	return &d, nil
}

type UpdateProfileInput struct {
	DisplayName *string
	Bio         *string
	Avatar      *string
	SocialMedia *models.SocialMedia
}

// UpdateProfile merges the provided fields. Users may edit only their own
// profile; admins may edit anyone's.
func (s *UserService) UpdateProfile(ctx context.Context, uid string, in UpdateProfileInput, actorUID string) error {
	if actorUID != uid {
		if _, err := requireAdmin(ctx, s.users, actorUID); err != nil {
			return err
		}
	}

	updates := map[string]interface{}{}
	if in.DisplayName != nil {
		updates["display_name"] = *in.DisplayName
	}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}
	if in.Avatar != nil {
		updates["avatar"] = *in.Avatar
	}
	if in.SocialMedia != nil {
		updates["social_media"] = *in.SocialMedia
	}
	if len(updates) == 0 {
		return nil
	}
	return s.users.UpdateFields(ctx, uid, updates)
}

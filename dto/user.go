package dto

import "prompt-hub/models"

// UserDTO exposes profile fields for API consumers.
type UserDTO struct {
	UID         string             `json:"uid"`
	Email       string             `json:"email"`
	DisplayName string             `json:"display_name,omitempty"`
	Bio         string             `json:"bio,omitempty"`
	Avatar      string             `json:"avatar,omitempty"`
	SocialMedia models.SocialMedia `json:"social_media"`
	IsAdmin     bool               `json:"is_admin"`
}

// NewUserDTO constructs UserDTO from models.UserProfile.
func NewUserDTO(u models.UserProfile) UserDTO {
	return UserDTO{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		Avatar:      u.Avatar,
		SocialMedia: u.SocialMedia,
		IsAdmin:     u.IsAdmin,
	}
}

// StatsDTO is the admin dashboard rollup.
type StatsDTO struct {
	TotalUsers      int64 `json:"total_users"`
	TotalPrompts    int64 `json:"total_prompts"`
	PendingPrompts  int64 `json:"pending_prompts"`
	ApprovedPrompts int64 `json:"approved_prompts"`
	RejectedPrompts int64 `json:"rejected_prompts"`
}

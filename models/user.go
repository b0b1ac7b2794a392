package models

import "time"

// SocialMedia holds optional profile links.
type SocialMedia struct {
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	GitHub   string `bson:"github,omitempty" json:"github,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
}

// UserProfile mirrors an identity-provider account.
// Collection: users, keyed by the provider uid (not an ObjectID).
//
// Created lazily on first authenticated touch. IsAdmin is the sole
// authorization flag for moderation transitions and admin reads.
type UserProfile struct {
	UID         string      `bson:"_id" json:"uid"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	Email       string      `bson:"email" json:"email"`
	DisplayName string      `bson:"display_name,omitempty" json:"display_name,omitempty"`
	Bio         string      `bson:"bio,omitempty" json:"bio,omitempty"`
	Avatar      string      `bson:"avatar,omitempty" json:"avatar,omitempty"`
	SocialMedia SocialMedia `bson:"social_media" json:"social_media"`
	IsAdmin     bool        `bson:"is_admin" json:"is_admin"`
}

package repository

import (
	"context"

	"LocalLoop-App/internal/domain/model"
)

// UserProfilesRepository stores the accumulated swipe preferences per user.
// Get returns an empty profile when the user has no document yet; Upsert
// merges the liked fields into the stored document.
type UserProfilesRepository interface {
	Get(ctx context.Context, uid string) (*model.UserProfile, error)
	Upsert(ctx context.Context, profile *model.UserProfile) error
}

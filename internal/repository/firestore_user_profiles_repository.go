package repository

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
)

const userProfilesCollection = "userProfiles"

// FirestoreUserProfilesRepository stores swipe preferences as one document
// per user.
type FirestoreUserProfilesRepository struct {
	client *firestore.Client
}

// NewFirestoreUserProfilesRepository creates a new profiles repository.
func NewFirestoreUserProfilesRepository(client *firestore.Client) repository.UserProfilesRepository {
	return &FirestoreUserProfilesRepository{client: client}
}

// Get fetches a profile; a user with no document yet gets an empty profile
// rather than an error.
func (r *FirestoreUserProfilesRepository) Get(ctx context.Context, uid string) (*model.UserProfile, error) {
	doc, err := r.client.Collection(userProfilesCollection).Doc(uid).Get(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "not found") {
			return model.NewUserProfile(uid), nil
		}
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	data := doc.Data()
	return &model.UserProfile{
		UID:                uid,
		LikedTags:          asStringSlice(data["liked_tags"]),
		LikedBusinessNames: asStringSlice(data["liked_business_names"]),
		LikedProductNames:  asStringSlice(data["liked_product_names"]),
	}, nil
}

// Upsert merges the liked fields into the stored document, creating it on
// first write.
func (r *FirestoreUserProfilesRepository) Upsert(ctx context.Context, profile *model.UserProfile) error {
	_, err := r.client.Collection(userProfilesCollection).Doc(profile.UID).Set(ctx, map[string]interface{}{
		"liked_tags":           profile.LikedTags,
		"liked_business_names": profile.LikedBusinessNames,
		"liked_product_names":  profile.LikedProductNames,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to upsert user profile: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
)

const submissionsCollection = "businessSubmissions"

// FirestoreSubmissionsRepository stores pending business submissions.
type FirestoreSubmissionsRepository struct {
	client *firestore.Client
}

// NewFirestoreSubmissionsRepository creates a new submissions repository.
func NewFirestoreSubmissionsRepository(client *firestore.Client) repository.SubmissionsRepository {
	return &FirestoreSubmissionsRepository{client: client}
}

// GetByID fetches a single submission document.
func (r *FirestoreSubmissionsRepository) GetByID(ctx context.Context, id string) (*model.BusinessSubmission, error) {
	doc, err := r.client.Collection(submissionsCollection).Doc(id).Get(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("submission %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}
	return docToSubmission(doc.Ref.ID, doc.Data()), nil
}

// GetPending fetches every submission still awaiting review.
func (r *FirestoreSubmissionsRepository) GetPending(ctx context.Context) ([]*model.BusinessSubmission, error) {
	iter := r.client.Collection(submissionsCollection).
		Where("status", "==", model.BusinessStatusPending).
		Documents(ctx)
	defer iter.Stop()

	var submissions []*model.BusinessSubmission
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch pending submissions: %w", err)
		}
		submissions = append(submissions, docToSubmission(doc.Ref.ID, doc.Data()))
	}
	return submissions, nil
}

// Create writes a new submission document.
func (r *FirestoreSubmissionsRepository) Create(ctx context.Context, submission *model.BusinessSubmission) error {
	doc := map[string]interface{}{
		"submitter_id": submission.SubmitterID,
		"name":         submission.Name,
		"description":  submission.Description,
		"category":     submission.Category,
		"address":      submission.Address,
		"tags":         submission.Tags,
		"status":       submission.Status,
		"submitted_at": submission.SubmittedAt,
	}
	if submission.Website != nil {
		doc["website"] = *submission.Website
	}
	_, err := r.client.Collection(submissionsCollection).Doc(submission.ID).Set(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

// UpdateStatus records a review decision on a submission.
func (r *FirestoreSubmissionsRepository) UpdateStatus(ctx context.Context, id string, status string, reviewerID string) error {
	_, err := r.client.Collection(submissionsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "reviewed_at", Value: time.Now()},
		{Path: "reviewed_by", Value: reviewerID},
	})
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	return nil
}

func docToSubmission(id string, data map[string]interface{}) *model.BusinessSubmission {
	submission := &model.BusinessSubmission{
		ID:          id,
		SubmitterID: asString(data["submitter_id"]),
		Name:        asString(data["name"]),
		Description: asString(data["description"]),
		Category:    asString(data["category"]),
		Address:     asString(data["address"]),
		Tags:        asStringSlice(data["tags"]),
		Status:      asString(data["status"]),
	}
	if website := asString(data["website"]); website != "" {
		submission.Website = &website
	}
	if submittedAt, ok := data["submitted_at"].(time.Time); ok {
		submission.SubmittedAt = submittedAt
	}
	if reviewedAt, ok := data["reviewed_at"].(time.Time); ok {
		submission.ReviewedAt = &reviewedAt
	}
	if reviewer := asString(data["reviewed_by"]); reviewer != "" {
		submission.ReviewedBy = &reviewer
	}
	return submission
}

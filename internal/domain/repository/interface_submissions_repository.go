package repository

import (
	"context"

	"LocalLoop-App/internal/domain/model"
)

// SubmissionsRepository stores pending business submissions awaiting review.
type SubmissionsRepository interface {
	GetByID(ctx context.Context, id string) (*model.BusinessSubmission, error)
	GetPending(ctx context.Context) ([]*model.BusinessSubmission, error)
	Create(ctx context.Context, submission *model.BusinessSubmission) error
	UpdateStatus(ctx context.Context, id string, status string, reviewerID string) error
}

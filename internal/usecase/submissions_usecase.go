package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
	"LocalLoop-App/internal/domain/service"
)

var (
	// ErrSubmissionReviewed is returned when a decision already exists.
	ErrSubmissionReviewed = errors.New("submission has already been reviewed")

	// ErrAlreadyClaimed is returned when a business has an owner.
	ErrAlreadyClaimed = errors.New("business has already been claimed")
)

// SubmissionsUseCase runs the submission, review and claiming workflow.
type SubmissionsUseCase interface {
	// Submit records a new business submission as pending.
	Submit(ctx context.Context, submission *model.BusinessSubmission) (*model.BusinessSubmission, error)

	// ListPending returns every submission awaiting review.
	ListPending(ctx context.Context) ([]*model.BusinessSubmission, error)

	// Approve copies a pending submission into the public catalog, resolving
	// its address on the way.
	Approve(ctx context.Context, submissionID string, reviewerID string) (*model.Business, error)

	// Reject records a rejection decision.
	Reject(ctx context.Context, submissionID string, reviewerID string) error

	// Claim assigns an owner to an unclaimed approved business.
	Claim(ctx context.Context, businessID string, ownerID string) error
}

type submissionsUseCaseImpl struct {
	submissionsRepo repository.SubmissionsRepository
	businessesRepo  repository.BusinessesRepository
	geoRepo         repository.BusinessGeoRepository
	resolver        *service.GeocodeResolver
}

// NewSubmissionsUseCase creates a new SubmissionsUseCase instance.
func NewSubmissionsUseCase(
	submissionsRepo repository.SubmissionsRepository,
	businessesRepo repository.BusinessesRepository,
	geoRepo repository.BusinessGeoRepository,
	resolver *service.GeocodeResolver,
) SubmissionsUseCase {
	return &submissionsUseCaseImpl{
		submissionsRepo: submissionsRepo,
		businessesRepo:  businessesRepo,
		geoRepo:         geoRepo,
		resolver:        resolver,
	}
}

// Submit stamps and stores a new pending submission.
func (u *submissionsUseCaseImpl) Submit(ctx context.Context, submission *model.BusinessSubmission) (*model.BusinessSubmission, error) {
	submission.ID = uuid.New().String()
	submission.Status = model.BusinessStatusPending
	submission.SubmittedAt = time.Now()

	if err := u.submissionsRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	log.Printf("✅ submission %s recorded (%s)", submission.ID, submission.Name)
	return submission, nil
}

// ListPending returns the review queue.
func (u *submissionsUseCaseImpl) ListPending(ctx context.Context) ([]*model.BusinessSubmission, error) {
	return u.submissionsRepo.GetPending(ctx)
}

// Approve publishes the submission as an approved listing.
func (u *submissionsUseCaseImpl) Approve(ctx context.Context, submissionID string, reviewerID string) (*model.Business, error) {
	submission, err := u.submissionsRepo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission.Status != model.BusinessStatusPending {
		return nil, ErrSubmissionReviewed
	}

	// Step 1: copy into the public catalog
	business := submission.ToBusiness(uuid.New().String())

	// Step 2: resolve the address; an unknown location is a normal state
	business.Location = u.resolver.Resolve(ctx, business.Address)

	if err := u.businessesRepo.Create(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to publish business: %w", err)
	}
	if business.HasLocation() {
		if err := u.geoRepo.UpsertLocation(ctx, business); err != nil {
			log.Printf("⚠️ failed to mirror location for %s: %v", business.ID, err)
		}
	}

	// Step 3: record the decision
	if err := u.submissionsRepo.UpdateStatus(ctx, submissionID, model.BusinessStatusApproved, reviewerID); err != nil {
		return nil, fmt.Errorf("failed to record approval: %w", err)
	}

	log.Printf("✅ submission %s approved as business %s", submissionID, business.ID)
	return business, nil
}

// Reject records a rejection without touching the catalog.
func (u *submissionsUseCaseImpl) Reject(ctx context.Context, submissionID string, reviewerID string) error {
	submission, err := u.submissionsRepo.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission.Status != model.BusinessStatusPending {
		return ErrSubmissionReviewed
	}
	return u.submissionsRepo.UpdateStatus(ctx, submissionID, model.BusinessStatusRejected, reviewerID)
}

// Claim sets the owner once; a second claim is rejected.
func (u *submissionsUseCaseImpl) Claim(ctx context.Context, businessID string, ownerID string) error {
	business, err := u.businessesRepo.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	if business.IsClaimed() {
		return ErrAlreadyClaimed
	}
	if err := u.businessesRepo.SetOwner(ctx, businessID, ownerID); err != nil {
		return err
	}
	log.Printf("✅ business %s claimed by %s", businessID, ownerID)
	return nil
}

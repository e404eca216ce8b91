package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/service"
)

type stubSubmissionsRepo struct {
	submissions map[string]*model.BusinessSubmission
}

func (r *stubSubmissionsRepo) GetByID(ctx context.Context, id string) (*model.BusinessSubmission, error) {
	if submission, ok := r.submissions[id]; ok {
		return submission, nil
	}
	return nil, errors.New("submission not found")
}

func (r *stubSubmissionsRepo) GetPending(ctx context.Context) ([]*model.BusinessSubmission, error) {
	var pending []*model.BusinessSubmission
	for _, submission := range r.submissions {
		if submission.Status == model.BusinessStatusPending {
			pending = append(pending, submission)
		}
	}
	return pending, nil
}

func (r *stubSubmissionsRepo) Create(ctx context.Context, submission *model.BusinessSubmission) error {
	r.submissions[submission.ID] = submission
	return nil
}

func (r *stubSubmissionsRepo) UpdateStatus(ctx context.Context, id string, status string, reviewerID string) error {
	submission, ok := r.submissions[id]
	if !ok {
		return errors.New("submission not found")
	}
	submission.Status = status
	submission.ReviewedBy = &reviewerID
	return nil
}

type stubGeoRepo struct {
	upserts []*model.Business
}

func (r *stubGeoRepo) FindNearby(ctx context.Context, location model.LatLng, radiusMeters int, limit int) ([]*model.Business, error) {
	return nil, nil
}

func (r *stubGeoRepo) UpsertLocation(ctx context.Context, business *model.Business) error {
	r.upserts = append(r.upserts, business)
	return nil
}

func newSubmissionsFixture() (SubmissionsUseCase, *stubSubmissionsRepo, *stubBusinessesRepo, *stubGeoRepo) {
	submissions := &stubSubmissionsRepo{submissions: map[string]*model.BusinessSubmission{}}
	businesses := &stubBusinessesRepo{}
	geo := &stubGeoRepo{}
	resolver := service.NewGeocodeResolver(nil) // gazetteer-only resolution
	useCase := NewSubmissionsUseCase(submissions, businesses, geo, resolver)
	return useCase, submissions, businesses, geo
}

func TestSubmissionsUseCase_SubmitAndApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("submit stamps id, pending status and timestamp", func(t *testing.T) {
		useCase, submissions, _, _ := newSubmissionsFixture()

		stored, err := useCase.Submit(ctx, &model.BusinessSubmission{
			SubmitterID: "u1",
			Name:        "Kerr Street Market",
			Category:    "grocery",
			Address:     "287 Kerr St, Oakville, ON",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, stored.ID)
		assert.Equal(t, model.BusinessStatusPending, stored.Status)
		assert.False(t, stored.SubmittedAt.IsZero())
		assert.Contains(t, submissions.submissions, stored.ID)
	})

	t.Run("approve publishes with a resolved location", func(t *testing.T) {
		useCase, submissions, businesses, geo := newSubmissionsFixture()
		stored, err := useCase.Submit(ctx, &model.BusinessSubmission{
			SubmitterID: "u1",
			Name:        "Kerr Street Market",
			Category:    "grocery",
			Address:     "287 Kerr St, Oakville, ON",
			Tags:        []string{"Organic", "Local"},
		})
		require.NoError(t, err)

		business, err := useCase.Approve(ctx, stored.ID, "admin-1")
		require.NoError(t, err)

		assert.Equal(t, model.BusinessStatusApproved, business.Status)
		require.NotNil(t, business.Location, "Oakville address must resolve via gazetteer")
		assert.Equal(t, 43.4675, business.Location.Lat)
		assert.Len(t, businesses.approved, 1)
		assert.Len(t, geo.upserts, 1, "resolved location must be mirrored to the geo store")
		assert.Equal(t, model.BusinessStatusApproved, submissions.submissions[stored.ID].Status)
	})

	t.Run("approve with an unresolvable address still publishes", func(t *testing.T) {
		useCase, _, businesses, geo := newSubmissionsFixture()
		stored, err := useCase.Submit(ctx, &model.BusinessSubmission{
			SubmitterID: "u1",
			Name:        "Mystery Shop",
			Category:    "misc",
			Address:     "Nowhereville, Mars",
		})
		require.NoError(t, err)

		business, err := useCase.Approve(ctx, stored.ID, "admin-1")
		require.NoError(t, err)

		assert.Nil(t, business.Location)
		assert.Len(t, businesses.approved, 1)
		assert.Empty(t, geo.upserts, "unknown location must not reach the geo store")
	})

	t.Run("second review of the same submission is rejected", func(t *testing.T) {
		useCase, _, _, _ := newSubmissionsFixture()
		stored, err := useCase.Submit(ctx, &model.BusinessSubmission{
			SubmitterID: "u1",
			Name:        "Kerr Street Market",
			Category:    "grocery",
			Address:     "287 Kerr St, Oakville, ON",
		})
		require.NoError(t, err)

		_, err = useCase.Approve(ctx, stored.ID, "admin-1")
		require.NoError(t, err)

		_, err = useCase.Approve(ctx, stored.ID, "admin-2")
		assert.ErrorIs(t, err, ErrSubmissionReviewed)
		assert.ErrorIs(t, useCase.Reject(ctx, stored.ID, "admin-2"), ErrSubmissionReviewed)
	})
}

func TestSubmissionsUseCase_Claim(t *testing.T) {
	ctx := context.Background()

	useCase, _, businesses, _ := newSubmissionsFixture()
	require.NoError(t, businesses.Create(ctx, &model.Business{
		ID:     "b1",
		Name:   "Kerr Street Market",
		Status: model.BusinessStatusApproved,
	}))

	t.Run("first claim succeeds", func(t *testing.T) {
		assert.NoError(t, useCase.Claim(ctx, "b1", "owner-1"))
	})

	t.Run("second claim is rejected", func(t *testing.T) {
		owner := "owner-1"
		businesses.approved[0].OwnerID = &owner

		assert.ErrorIs(t, useCase.Claim(ctx, "b1", "owner-2"), ErrAlreadyClaimed)
	})
}

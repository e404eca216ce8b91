package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
	"LocalLoop-App/internal/domain/service"
)

// ErrSessionNotFound is returned for an unknown or expired swipe session.
var ErrSessionNotFound = errors.New("swipe session not found")

// SwipeResult is the outcome of one settled swipe.
type SwipeResult struct {
	Index   int             `json:"index"`
	Next    *model.Business `json:"next"`
	Liked   *model.Business `json:"liked,omitempty"`
	Learned []string        `json:"learned_tags,omitempty"`
}

// SwipeUseCase runs swipe sessions over the approved catalog and feeds
// likes back into the user profile.
type SwipeUseCase interface {
	// StartSession opens a swipe session at the top of the catalog.
	StartSession(ctx context.Context, userID string) (*service.SwipeSession, error)

	// Swipe applies one like/dislike gesture to a session. A like merges the
	// business tags into the user profile; a dislike only advances.
	Swipe(ctx context.Context, sessionID string, direction string, productID string) (*SwipeResult, error)
}

type swipeUseCaseImpl struct {
	businessesRepo   repository.BusinessesRepository
	productsRepo     repository.ProductsRepository
	userProfilesRepo repository.UserProfilesRepository

	mu       sync.Mutex
	sessions map[string]*service.SwipeSession
}

// NewSwipeUseCase creates a new SwipeUseCase instance. Sessions live in
// process memory; they are browse state, not data.
func NewSwipeUseCase(
	businessesRepo repository.BusinessesRepository,
	productsRepo repository.ProductsRepository,
	userProfilesRepo repository.UserProfilesRepository,
) SwipeUseCase {
	return &swipeUseCaseImpl{
		businessesRepo:   businessesRepo,
		productsRepo:     productsRepo,
		userProfilesRepo: userProfilesRepo,
		sessions:         make(map[string]*service.SwipeSession),
	}
}

// StartSession bulk-fetches the catalog and opens a session over it.
func (u *swipeUseCaseImpl) StartSession(ctx context.Context, userID string) (*service.SwipeSession, error) {
	businesses, err := u.businessesRepo.GetAllApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	session, err := service.NewSwipeSession(userID, businesses)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.sessions[session.ID] = session
	u.mu.Unlock()

	log.Printf("✅ swipe session %s opened for %s (%d businesses)", session.ID, userID, len(businesses))
	return session, nil
}

// Swipe settles one gesture and persists the positive signal.
func (u *swipeUseCaseImpl) Swipe(ctx context.Context, sessionID string, direction string, productID string) (*SwipeResult, error) {
	u.mu.Lock()
	session, ok := u.sessions[sessionID]
	u.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	liked, index, err := session.SwipeAndSettle(direction)
	if err != nil {
		return nil, err
	}

	result := &SwipeResult{
		Index: index,
		Next:  session.Current(),
	}
	if liked == nil {
		return result, nil
	}

	// A like is the only write path into future scoring passes.
	profile, err := u.userProfilesRepo.Get(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	var product *model.Product
	if productID != "" {
		product, err = u.productsRepo.GetByID(ctx, productID)
		if err != nil {
			// A stale product reference must not lose the business like.
			log.Printf("⚠️ liked product %s not found: %v", productID, err)
			product = nil
		}
	}

	profile.RecordLike(liked, product)
	if err := u.userProfilesRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save user profile: %w", err)
	}

	result.Liked = liked
	result.Learned = profile.LikedTags
	return result, nil
}

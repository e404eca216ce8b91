package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"LocalLoop-App/internal/domain/model"
)

// Swipe directions. A like feeds the preference loop; a dislike only
// advances the cursor. Only positive signal is learned.
const (
	SwipeLike    = "like"
	SwipeDislike = "dislike"
)

// defaultSettleDelay matches the card animation time on the client.
const defaultSettleDelay = 300 * time.Millisecond

var (
	// ErrAnimating is returned when a swipe arrives while the previous one
	// has not settled. Only one transition may be in flight.
	ErrAnimating = errors.New("swipe already in flight")

	// ErrEmptyCatalog is returned when a session is opened on an empty
	// catalog.
	ErrEmptyCatalog = errors.New("swipe catalog is empty")

	// ErrInvalidDirection is returned for anything but like/dislike.
	ErrInvalidDirection = errors.New("direction must be like or dislike")
)

// SwipeSession is the browsing state machine over a fixed catalog slice:
// Presenting(i) -> Animating -> Presenting((i+1) mod N). The loop is
// unbounded and wraps around; it ends only when the session is dropped.
type SwipeSession struct {
	ID     string
	UserID string

	mu          sync.Mutex
	catalog     []*model.Business
	index       int
	animating   bool
	pending     string
	settleDelay time.Duration
}

// NewSwipeSession opens a session at index 0 of the catalog.
func NewSwipeSession(userID string, catalog []*model.Business) (*SwipeSession, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &SwipeSession{
		ID:          uuid.New().String(),
		UserID:      userID,
		catalog:     catalog,
		settleDelay: defaultSettleDelay,
	}, nil
}

// SetSettleDelay overrides the animation settle delay (0 in tests).
func (s *SwipeSession) SetSettleDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleDelay = d
}

// Index returns the current browse cursor.
func (s *SwipeSession) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Size returns the catalog length.
func (s *SwipeSession) Size() int {
	return len(s.catalog)
}

// Current returns the business being presented.
func (s *SwipeSession) Current() *model.Business {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog[s.index]
}

// Swipe moves Presenting -> Animating. Further swipes are rejected until
// Settle commits the transition.
func (s *SwipeSession) Swipe(direction string) error {
	if direction != SwipeLike && direction != SwipeDislike {
		return ErrInvalidDirection
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.animating {
		return ErrAnimating
	}
	s.animating = true
	s.pending = direction
	return nil
}

// Settle commits the in-flight transition: returns the liked business (nil
// for a dislike) and advances the cursor cyclically.
func (s *SwipeSession) Settle() (*model.Business, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.animating {
		return nil, s.index
	}
	var liked *model.Business
	if s.pending == SwipeLike {
		liked = s.catalog[s.index]
	}
	s.index = (s.index + 1) % len(s.catalog)
	s.animating = false
	s.pending = ""
	return liked, s.index
}

// SwipeAndSettle performs a full swipe cycle, waiting out the settle delay
// between the two phases.
func (s *SwipeSession) SwipeAndSettle(direction string) (*model.Business, int, error) {
	if err := s.Swipe(direction); err != nil {
		return nil, s.Index(), err
	}
	s.mu.Lock()
	delay := s.settleDelay
	s.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	liked, index := s.Settle()
	return liked, index, nil
}

package service

import (
	"context"
	"log"
	"sync"
	"time"

	"LocalLoop-App/internal/domain/model"
)

// ParallelGeocodeService geocodes an entire catalog with fire-and-forget
// parallel dispatch and aggregated settlement: every business attempt is
// launched concurrently and the caller waits for all of them to settle.
// Partial failures never abort the batch.
type ParallelGeocodeService struct {
	resolver      *GeocodeResolver
	maxGoroutines int
}

// NewParallelGeocodeService creates a batch geocoder over the resolver.
func NewParallelGeocodeService(resolver *GeocodeResolver) *ParallelGeocodeService {
	return &ParallelGeocodeService{
		resolver:      resolver,
		maxGoroutines: 5, // limit concurrent provider pressure
	}
}

// GeocodeCatalog resolves every business without a location and returns the
// per-business settlement summary.
func (s *ParallelGeocodeService) GeocodeCatalog(ctx context.Context, businesses []*model.Business) *model.GeocodeSummary {
	log.Printf("🚀 batch geocode started: %d businesses", len(businesses))
	start := time.Now()

	semaphore := make(chan struct{}, s.maxGoroutines)
	results := make(chan model.GeocodeResult, len(businesses))
	var wg sync.WaitGroup

	for _, business := range businesses {
		wg.Add(1)
		go func(b *model.Business) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			location, outcome := s.resolver.ResolveWithOutcome(ctx, b.Address)
			results <- model.GeocodeResult{
				BusinessID: b.ID,
				Address:    b.Address,
				Location:   location,
				Outcome:    outcome,
			}
		}(business)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	summary := &model.GeocodeSummary{}
	for result := range results {
		if result.Outcome == model.GeocodeOutcomeFailed {
			log.Printf("⚠️ geocode unresolved: %s (%s)", result.BusinessID, result.Address)
		}
		summary.Count(result)
	}

	log.Printf("✅ batch geocode settled in %v: %d success, %d cached, %d fallback, %d failed",
		time.Since(start), summary.Success, summary.Cached, summary.Fallback, summary.Failed)
	return summary
}

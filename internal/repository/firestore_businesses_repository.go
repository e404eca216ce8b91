package repository

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
)

const businessesCollection = "businesses"

// FirestoreBusinessesRepository stores the business catalog as Firestore
// documents.
type FirestoreBusinessesRepository struct {
	client *firestore.Client
}

// NewFirestoreBusinessesRepository creates a new catalog repository.
func NewFirestoreBusinessesRepository(client *firestore.Client) repository.BusinessesRepository {
	return &FirestoreBusinessesRepository{client: client}
}

// GetByID fetches a single business document.
func (r *FirestoreBusinessesRepository) GetByID(ctx context.Context, id string) (*model.Business, error) {
	doc, err := r.client.Collection(businessesCollection).Doc(id).Get(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("business %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	return docToBusiness(doc.Ref.ID, doc.Data()), nil
}

// GetAllApproved bulk-fetches the approved catalog. No pagination: the
// whole catalog is assumed to fit in memory.
func (r *FirestoreBusinessesRepository) GetAllApproved(ctx context.Context) ([]*model.Business, error) {
	iter := r.client.Collection(businessesCollection).
		Where("status", "==", model.BusinessStatusApproved).
		Documents(ctx)
	defer iter.Stop()

	var businesses []*model.Business
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch business catalog: %w", err)
		}
		businesses = append(businesses, docToBusiness(doc.Ref.ID, doc.Data()))
	}
	return businesses, nil
}

// Create writes a new business document.
func (r *FirestoreBusinessesRepository) Create(ctx context.Context, business *model.Business) error {
	_, err := r.client.Collection(businessesCollection).Doc(business.ID).Set(ctx, businessToDoc(business))
	if err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

// UpdateLocation writes resolved coordinates onto a business document. A
// nil location clears the field.
func (r *FirestoreBusinessesRepository) UpdateLocation(ctx context.Context, id string, location *model.LatLng) error {
	var value interface{}
	if location != nil {
		value = map[string]interface{}{"lat": location.Lat, "lng": location.Lng}
	}
	_, err := r.client.Collection(businessesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "location", Value: value},
	})
	if err != nil {
		return fmt.Errorf("failed to update business location: %w", err)
	}
	return nil
}

// SetOwner records the claiming owner on a business document.
func (r *FirestoreBusinessesRepository) SetOwner(ctx context.Context, id string, ownerID string) error {
	_, err := r.client.Collection(businessesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "owner_id", Value: ownerID},
	})
	if err != nil {
		return fmt.Errorf("failed to set business owner: %w", err)
	}
	return nil
}

// docToBusiness maps raw document data onto the domain model. Upstream
// records are coerced, not rejected: missing tags become an empty set and
// a malformed location is dropped.
func docToBusiness(id string, data map[string]interface{}) *model.Business {
	business := &model.Business{
		ID:          id,
		Name:        asString(data["name"]),
		Description: asString(data["description"]),
		Category:    asString(data["category"]),
		Address:     asString(data["address"]),
		Tags:        asStringSlice(data["tags"]),
		Rating:      asFloat(data["rating"]),
		Status:      asString(data["status"]),
	}

	if website := asString(data["website"]); website != "" {
		business.Website = &website
	}
	if ownerID := asString(data["owner_id"]); ownerID != "" {
		business.OwnerID = &ownerID
	}
	if loc, ok := data["location"].(map[string]interface{}); ok {
		business.Location = model.NewLocation(asFloat(loc["lat"]), asFloat(loc["lng"]))
	}
	return business
}

// businessToDoc maps the domain model into document fields.
func businessToDoc(business *model.Business) map[string]interface{} {
	doc := map[string]interface{}{
		"name":        business.Name,
		"description": business.Description,
		"category":    business.Category,
		"address":     business.Address,
		"tags":        business.Tags,
		"rating":      business.Rating,
		"status":      business.Status,
	}
	if business.Website != nil {
		doc["website"] = *business.Website
	}
	if business.OwnerID != nil {
		doc["owner_id"] = *business.OwnerID
	}
	if business.Location != nil {
		doc["location"] = map[string]interface{}{
			"lat": business.Location.Lat,
			"lng": business.Location.Lng,
		}
	}
	return doc
}

// --- lenient field coercion helpers ---

func asString(raw interface{}) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return ""
}

func asFloat(raw interface{}) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

func asStringSlice(raw interface{}) []string {
	items, ok := raw.([]interface{})
	if !ok {
		return []string{}
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

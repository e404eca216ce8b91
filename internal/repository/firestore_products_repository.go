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

const productsCollection = "products"

// FirestoreProductsRepository stores products as Firestore documents.
type FirestoreProductsRepository struct {
	client *firestore.Client
}

// NewFirestoreProductsRepository creates a new products repository.
func NewFirestoreProductsRepository(client *firestore.Client) repository.ProductsRepository {
	return &FirestoreProductsRepository{client: client}
}

// GetByID fetches a single product document.
func (r *FirestoreProductsRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	doc, err := r.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("product %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return docToProduct(doc.Ref.ID, doc.Data()), nil
}

// GetByBusinessID fetches the products of one business by its foreign key.
func (r *FirestoreProductsRepository) GetByBusinessID(ctx context.Context, businessID string) ([]*model.Product, error) {
	iter := r.client.Collection(productsCollection).
		Where("business_id", "==", businessID).
		Documents(ctx)
	defer iter.Stop()
	return collectProducts(iter)
}

// GetAll bulk-fetches the whole product catalog.
func (r *FirestoreProductsRepository) GetAll(ctx context.Context) ([]*model.Product, error) {
	iter := r.client.Collection(productsCollection).Documents(ctx)
	defer iter.Stop()
	return collectProducts(iter)
}

// Create writes a new product document.
func (r *FirestoreProductsRepository) Create(ctx context.Context, product *model.Product) error {
	_, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, productToDoc(product))
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func collectProducts(iter *firestore.DocumentIterator) ([]*model.Product, error) {
	var products []*model.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch products: %w", err)
		}
		products = append(products, docToProduct(doc.Ref.ID, doc.Data()))
	}
	return products, nil
}

// docToProduct maps raw document data onto the domain model. Prices arrive
// as numbers or currency-formatted strings and are coerced, never rejected.
func docToProduct(id string, data map[string]interface{}) *model.Product {
	product := &model.Product{
		ID:           id,
		BusinessID:   asString(data["business_id"]),
		BusinessName: asString(data["business_name"]),
		Name:         asString(data["name"]),
		Price:        model.ParsePrice(data["price"]),
		Tags:         asStringSlice(data["tags"]),
	}
	if inStock, ok := data["in_stock"].(bool); ok {
		product.InStock = inStock
	}
	if image := asString(data["image_url"]); image != "" {
		product.ImageURL = &image
	}
	return product
}

func productToDoc(product *model.Product) map[string]interface{} {
	doc := map[string]interface{}{
		"business_id":   product.BusinessID,
		"business_name": product.BusinessName,
		"name":          product.Name,
		"price":         product.Price,
		"in_stock":      product.InStock,
		"tags":          product.Tags,
	}
	if product.ImageURL != nil {
		doc["image_url"] = *product.ImageURL
	}
	return doc
}

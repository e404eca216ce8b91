package test

import (
	"context"
	"log"
	"os"
	"testing"

	"LocalLoop-App/internal/infrastructure/firestore"
	"LocalLoop-App/internal/repository"
)

func TestFirestoreConnection(t *testing.T) {
	_ = setupTestEnvironment()

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID is not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := firestore.NewFirestoreClient(ctx, projectID)
	if err != nil {
		t.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer client.Close()

	log.Println("✅ Firestore client initialized")

	// List the collections to prove the connection is usable.
	collections := client.GetClient().Collections(ctx)
	collectionList := []string{}
	for {
		collectionRef, err := collections.Next()
		if err != nil {
			break
		}
		collectionList = append(collectionList, collectionRef.ID)
	}

	log.Printf("📚 collections available: %d", len(collectionList))
	for _, collectionID := range collectionList {
		log.Printf("   - %s", collectionID)
	}
}

func TestFirestoreCatalogRead(t *testing.T) {
	_ = setupTestEnvironment()

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID is not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := firestore.NewFirestoreClient(ctx, projectID)
	if err != nil {
		t.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer client.Close()

	businessesRepo := repository.NewFirestoreBusinessesRepository(client.GetClient())
	businesses, err := businessesRepo.GetAllApproved(ctx)
	if err != nil {
		t.Fatalf("Failed to fetch the approved catalog: %v", err)
	}

	log.Printf("📄 approved businesses: %d", len(businesses))
	for i, business := range businesses {
		if i >= 5 {
			break
		}
		log.Printf("   %d. %s (%s) tags=%v location=%v",
			i+1, business.Name, business.Category, business.Tags, business.Location)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"LocalLoop-App/internal/application"
	"LocalLoop-App/internal/domain/repository"
	"LocalLoop-App/internal/domain/service"
	"LocalLoop-App/internal/handler"
	"LocalLoop-App/internal/infrastructure/auth"
	"LocalLoop-App/internal/infrastructure/database"
	fsinfra "LocalLoop-App/internal/infrastructure/firestore"
	"LocalLoop-App/internal/infrastructure/geocoding"
	repoimpl "LocalLoop-App/internal/repository"
	"LocalLoop-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")

	if supabaseURL == "" || supabaseAnonKey == "" || projectID == "" {
		fmt.Println("⚠️  Required environment variables are missing:")
		fmt.Println("  SUPABASE_URL, SUPABASE_ANON_KEY, FIRESTORE_PROJECT_ID")
		fmt.Println("\nCreate a .env file or set the variables in the environment")
		log.Fatal("Environment variables not set")
	}

	ctx := context.Background()

	fmt.Println("Initializing Firestore client...")
	firestoreClient, err := fsinfra.NewFirestoreClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabase health check failed: %v", err)
	}

	fmt.Println("Initializing PostgreSQL connection...")
	postgresClient, err := database.NewPostgreSQLClient()
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL connection: %v", err)
	}
	defer postgresClient.Close()
	fmt.Println("✅ All backend connections established!")

	// Repositories
	businessesRepo := repoimpl.NewFirestoreBusinessesRepository(firestoreClient.GetClient())
	productsRepo := repoimpl.NewFirestoreProductsRepository(firestoreClient.GetClient())
	userProfilesRepo := repoimpl.NewFirestoreUserProfilesRepository(firestoreClient.GetClient())
	submissionsRepo := repoimpl.NewFirestoreSubmissionsRepository(firestoreClient.GetClient())
	geoRepo := repoimpl.NewPostgresBusinessGeoRepository(postgresClient)

	// Geocoding chain: fixed precedence, keyless Nominatim last. Missing
	// keys only disable their provider.
	if os.Getenv("GOOGLE_MAPS_API_KEY") == "" {
		log.Printf("⚠️ GOOGLE_MAPS_API_KEY not set, Google geocoding disabled")
	}
	if os.Getenv("OPENCAGE_API_KEY") == "" {
		log.Printf("⚠️ OPENCAGE_API_KEY not set, OpenCage geocoding disabled")
	}
	providers := []repository.GeocodingProvider{
		geocoding.NewGoogleProvider(os.Getenv("GOOGLE_MAPS_API_KEY")),
		geocoding.NewOpenCageProvider(os.Getenv("OPENCAGE_API_KEY")),
		geocoding.NewNominatimProvider(),
	}
	resolver := service.NewGeocodeResolver(providers)
	batchGeocoder := service.NewParallelGeocodeService(resolver)

	// Services and use cases
	catalogService := application.NewCatalogService(businessesRepo, productsRepo, geoRepo)
	recommendationsUseCase := usecase.NewRecommendationsUseCase(businessesRepo, userProfilesRepo, service.NewRecommendService())
	sustainableUseCase := usecase.NewSustainableUseCase(businessesRepo, service.NewSustainabilityService())
	swipeUseCase := usecase.NewSwipeUseCase(businessesRepo, productsRepo, userProfilesRepo)
	submissionsUseCase := usecase.NewSubmissionsUseCase(submissionsRepo, businessesRepo, geoRepo, resolver)
	geocodeUseCase := usecase.NewCatalogGeocodeUseCase(businessesRepo, geoRepo, batchGeocoder)

	// Auth
	authProvider := auth.NewSupabaseAuthProvider(supabaseClient)
	authMiddleware := handler.NewAuthMiddleware(authProvider)

	// Handlers
	businessesHandler := handler.NewBusinessesHandler(catalogService)
	recommendationsHandler := handler.NewRecommendationsHandler(recommendationsUseCase)
	sustainableHandler := handler.NewSustainableHandler(sustainableUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	submissionsHandler := handler.NewSubmissionsHandler(submissionsUseCase, geocodeUseCase)
	authHandler := handler.NewAuthHandler(authProvider)

	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "LocalLoop-App"})
	})

	r.POST("/auth/signin", authHandler.SignIn)
	r.POST("/auth/signout", authHandler.SignOut)

	r.GET("/businesses", businessesHandler.ListBusinesses)
	r.GET("/businesses/nearby", businessesHandler.NearbyBusinesses)
	r.GET("/businesses/:id", businessesHandler.GetBusiness)
	r.GET("/businesses/:id/products", businessesHandler.GetBusinessProducts)

	r.GET("/recommendations", recommendationsHandler.GetRecommendations)
	r.GET("/sustainable", sustainableHandler.GetSustainable)

	r.POST("/swipe/sessions", swipeHandler.StartSession)
	r.POST("/swipe/sessions/:id/swipe", swipeHandler.Swipe)

	authed := r.Group("/", authMiddleware.RequireUser())
	authed.POST("/submissions", submissionsHandler.Submit)
	authed.POST("/businesses/:id/claim", submissionsHandler.Claim)

	admin := r.Group("/admin", authMiddleware.RequireUser(), authMiddleware.RequireAdmin())
	admin.GET("/submissions", submissionsHandler.ListPending)
	admin.POST("/submissions/:id/approve", submissionsHandler.Approve)
	admin.POST("/submissions/:id/reject", submissionsHandler.Reject)
	admin.POST("/geocode/refresh", submissionsHandler.RefreshGeocode)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("LocalLoop-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server terminated: %v", err)
	}
}

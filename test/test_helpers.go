package test

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"LocalLoop-App/internal/domain/repository"
	"LocalLoop-App/internal/infrastructure/database"
	repoimpl "LocalLoop-App/internal/repository"
)

// setupTestEnvironment loads .env for local runs. CI sets the variables
// directly, so a missing file is not an error.
func setupTestEnvironment() error {
	_ = godotenv.Load("../.env")
	return nil
}

// missingEnv returns the names of unset environment variables.
func missingEnv(names ...string) []string {
	var missing []string
	for _, name := range names {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// setupTestGeoRepository connects to the PostGIS mirror with a short retry
// window and returns the repository plus its cleanup.
func setupTestGeoRepository() (repository.BusinessGeoRepository, func(), error) {
	if err := setupTestEnvironment(); err != nil {
		return nil, nil, err
	}

	postgresClient, err := database.NewPostgreSQLClientWithRetry(5, 1*time.Second)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		postgresClient.Close()
	}

	geoRepo := repoimpl.NewPostgresBusinessGeoRepository(postgresClient)
	return geoRepo, cleanup, nil
}

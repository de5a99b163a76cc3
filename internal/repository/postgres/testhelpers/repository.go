package testhelpers

import (
	"github.com/aroundme-service/internal/domain/repository"
	"github.com/aroundme-service/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewLocationRepositoryForTest creates a location repository with test database and logger
func NewLocationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LocationRepository {
	return postgres.NewLocationRepository(NewDBForTest(db, logger))
}

// NewLandmarkRepositoryForTest creates a landmark repository with test database and logger
func NewLandmarkRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LandMarkRepository {
	return postgres.NewLandmarkRepository(NewDBForTest(db, logger))
}

// NewListingRepositoryForTest creates a listing repository with test database and logger
func NewListingRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ListingRepository {
	return postgres.NewListingRepository(NewDBForTest(db, logger))
}

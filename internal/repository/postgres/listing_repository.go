package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/domain/repository"
	"github.com/aroundme-service/internal/pkg/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type listingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// listingRow - строка listings; категории и ориентиры хранятся в jsonb
type listingRow struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	LocationID uuid.UUID `db:"location_id"`
	POIs       []byte    `db:"pois"`
	Landmarks  []byte    `db:"landmarks"`
	CreatedAt  time.Time `db:"created_at"`
}

const listingColumns = `id, name, location_id, pois, landmarks, created_at`

func NewListingRepository(db *DB) repository.ListingRepository {
	return &listingRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now().UTC()
	}
	if listing.POIs == nil {
		listing.POIs = []domain.PointOfInterest{}
	}
	if listing.LandmarkIDs == nil {
		listing.LandmarkIDs = []uuid.UUID{}
	}

	pois, err := json.Marshal(listing.POIs)
	if err != nil {
		return err
	}
	landmarks, err := json.Marshal(listing.LandmarkIDs)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO listings (id, name, location_id, pois, landmarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.ExecContext(ctx, query,
		listing.ID, listing.Name, listing.LocationID, string(pois), string(landmarks), listing.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create listing", zap.String("name", listing.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *listingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	var row listingRow
	err := r.db.GetContext(ctx, &row, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get listing by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return r.toDomain(row), nil
}

func (r *listingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	var rows []listingRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+listingColumns+` FROM listings ORDER BY created_at DESC`); err != nil {
		r.logger.Error("Failed to list listings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	listings := make([]*domain.Listing, len(rows))
	for i, row := range rows {
		listings[i] = r.toDomain(row)
	}
	return listings, nil
}

func (r *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete listing", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrNotFound
	}
	return nil
}

func (r *listingRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE name = $1`, name)
	if err != nil {
		r.logger.Error("Failed to delete listings by name", zap.String("name", name), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *listingRepository) toDomain(row listingRow) *domain.Listing {
	listing := &domain.Listing{
		ID:          row.ID,
		Name:        row.Name,
		LocationID:  row.LocationID,
		POIs:        []domain.PointOfInterest{},
		LandmarkIDs: []uuid.UUID{},
		CreatedAt:   row.CreatedAt,
	}

	if err := json.Unmarshal(row.POIs, &listing.POIs); err != nil {
		r.logger.Warn("Failed to unmarshal listing pois", zap.String("id", row.ID.String()), zap.Error(err))
	}
	if err := json.Unmarshal(row.Landmarks, &listing.LandmarkIDs); err != nil {
		r.logger.Warn("Failed to unmarshal listing landmarks", zap.String("id", row.ID.String()), zap.Error(err))
	}
	return listing
}

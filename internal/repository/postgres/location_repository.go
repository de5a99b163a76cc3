package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/domain/repository"
	"github.com/aroundme-service/internal/pkg/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const locationColumns = `id, name, city, country, latitude, longitude, created_at`

type locationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLocationRepository(db *DB) repository.LocationRepository {
	return &locationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *locationRepository) Create(ctx context.Context, location *domain.SavedLocation) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	if location.CreatedAt.IsZero() {
		location.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO locations (id, name, city, country, latitude, longitude, created_at)
		VALUES (:id, :name, :city, :country, :latitude, :longitude, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, location); err != nil {
		r.logger.Error("Failed to create location", zap.String("name", location.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *locationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedLocation, error) {
	var location domain.SavedLocation
	err := r.db.GetContext(ctx, &location, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrLocationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get location by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &location, nil
}

func (r *locationRepository) GetByName(ctx context.Context, name string) (*domain.SavedLocation, error) {
	var location domain.SavedLocation
	err := r.db.GetContext(ctx, &location, `SELECT `+locationColumns+` FROM locations WHERE name = $1`, name)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrLocationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get location by name", zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &location, nil
}

// FindOrCreate вставляет локацию или возвращает уже сохранённую с тем же именем
func (r *locationRepository) FindOrCreate(ctx context.Context, location *domain.SavedLocation) (*domain.SavedLocation, error) {
	id := location.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	// DO UPDATE нужен, чтобы RETURNING вернул существующую строку
	query := `
		INSERT INTO locations (id, name, city, country, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING ` + locationColumns

	var saved domain.SavedLocation
	err := r.db.GetContext(ctx, &saved, query,
		id, location.Name, location.City, location.Country, location.Latitude, location.Longitude)
	if err != nil {
		r.logger.Error("Failed to find or create location", zap.String("name", location.Name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &saved, nil
}

func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete location", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrLocationNotFound
	}
	return nil
}

func (r *locationRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE name = $1`, name)
	if err != nil {
		r.logger.Error("Failed to delete location by name", zap.String("name", name), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	n, _ := res.RowsAffected()
	return n, nil
}

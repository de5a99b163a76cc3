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
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const landmarkColumns = `id, name, address, city, country, latitude, longitude, created_at`

type landmarkRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLandmarkRepository(db *DB) repository.LandMarkRepository {
	return &landmarkRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *landmarkRepository) Create(ctx context.Context, landmark *domain.SavedLandMark) error {
	if landmark.ID == uuid.Nil {
		landmark.ID = uuid.New()
	}
	if landmark.CreatedAt.IsZero() {
		landmark.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO landmarks (id, name, address, city, country, latitude, longitude, created_at)
		VALUES (:id, :name, :address, :city, :country, :latitude, :longitude, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, landmark); err != nil {
		r.logger.Error("Failed to create landmark", zap.String("name", landmark.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *landmarkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedLandMark, error) {
	var landmark domain.SavedLandMark
	err := r.db.GetContext(ctx, &landmark, `SELECT `+landmarkColumns+` FROM landmarks WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get landmark by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &landmark, nil
}

// GetByIDs возвращает найденные ориентиры; отсутствующие ID пропускаются
func (r *landmarkRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.SavedLandMark, error) {
	if len(ids) == 0 {
		return []*domain.SavedLandMark{}, nil
	}

	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	landmarks := []*domain.SavedLandMark{}
	query := `SELECT ` + landmarkColumns + ` FROM landmarks WHERE id = ANY($1::uuid[]) ORDER BY name`
	if err := r.db.SelectContext(ctx, &landmarks, query, pq.Array(strIDs)); err != nil {
		r.logger.Error("Failed to get landmarks by IDs", zap.Int("count", len(ids)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return landmarks, nil
}

func (r *landmarkRepository) GetByCityAndCountry(ctx context.Context, city, country string) ([]*domain.SavedLandMark, error) {
	landmarks := []*domain.SavedLandMark{}
	query := `SELECT ` + landmarkColumns + ` FROM landmarks WHERE city = $1 AND country = $2 ORDER BY name`
	if err := r.db.SelectContext(ctx, &landmarks, query, city, country); err != nil {
		r.logger.Error("Failed to get landmarks by city",
			zap.String("city", city),
			zap.String("country", country),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return landmarks, nil
}

func (r *landmarkRepository) List(ctx context.Context) ([]*domain.SavedLandMark, error) {
	landmarks := []*domain.SavedLandMark{}
	query := `SELECT ` + landmarkColumns + ` FROM landmarks ORDER BY country, city, name`
	if err := r.db.SelectContext(ctx, &landmarks, query); err != nil {
		r.logger.Error("Failed to list landmarks", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return landmarks, nil
}

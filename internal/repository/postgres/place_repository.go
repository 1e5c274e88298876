package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const placeColumns = `
	id, name, lat, lon, category, visit_duration_minutes, tags,
	description, cost_level, indoor, intensity, popularity
`

func (r *placeRepository) GetAll(ctx context.Context, limit int) ([]domain.Place, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM places
		ORDER BY popularity DESC, id ASC
	`, placeColumns)

	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	return r.queryPlaces(ctx, query, args...)
}

func (r *placeRepository) GetByTags(ctx context.Context, tags []string, limit int) ([]domain.Place, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM places
		WHERE tags && $1
		ORDER BY popularity DESC, id ASC
	`, placeColumns)

	args := []interface{}{pq.Array(tags)}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	return r.queryPlaces(ctx, query, args...)
}

func (r *placeRepository) queryPlaces(ctx context.Context, query string, args ...interface{}) ([]domain.Place, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	places := make([]domain.Place, 0)
	for rows.Next() {
		var place domain.Place
		var tags pq.StringArray

		err := rows.Scan(
			&place.ID, &place.Name, &place.Lat, &place.Lon,
			&place.Category, &place.VisitDuration, &tags,
			&place.Description, &place.CostLevel, &place.Indoor,
			&place.Intensity, &place.Popularity,
		)
		if err != nil {
			r.logger.Error("Failed to scan place row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		place.Tags = []string(tags)
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Place rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

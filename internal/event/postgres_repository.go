package event

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
//
// The location_events table carries a created_at column set at insert time;
// the retention job prunes on it so the table only ever holds recent pings
// and the unfiltered ListAll scan stays cheap.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL event repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListAll retrieves every currently stored event, in no particular order.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Event, error) {
	query := `
		SELECT
			id, address, recorded_at,
			accuracy_m, distance_home_m, distance_work_m, home_eta_s
		FROM location_events
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var e Event
		err := rows.Scan(
			&e.ID,
			&e.Address,
			&e.RecordedAt,
			&e.AccuracyMetres,
			&e.DistanceFromHomeMetres,
			&e.DistanceFromWorkMetres,
			&e.HomeETASeconds,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return events, nil
}

// Insert appends a new event to the store.
func (r *PostgresRepository) Insert(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO location_events (
			id, address, recorded_at,
			accuracy_m, distance_home_m, distance_work_m, home_eta_s,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	`

	_, err := r.pool.Exec(ctx, query,
		e.ID,
		e.Address,
		e.RecordedAt,
		e.AccuracyMetres,
		e.DistanceFromHomeMetres,
		e.DistanceFromWorkMetres,
		e.HomeETASeconds,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteOlderThan removes events inserted before cutoff.
func (r *PostgresRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM location_events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return tag.RowsAffected(), nil
}

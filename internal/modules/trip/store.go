// README: Trip and usage persistence backed by PostgreSQL.
package trip

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// SaveTrip appends one trip row. One record, one write; the store does no
// dedup.
func (s *Store) SaveTrip(ctx context.Context, rec *TripRecord) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trips (timestamp, user_input, destination, json_data)
		VALUES ($1, $2, $3, $4)`,
		rec.Timestamp,
		rec.UserInput,
		rec.Destination,
		rec.PlanJSON,
	)
	return err
}

// SaveUsage appends one token-cost row.
func (s *Store) SaveUsage(ctx context.Context, rec *UsageRecord) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trip_costs (timestamp, model, prompt_tokens, completion_tokens, total_tokens, cost_usd)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.Timestamp,
		rec.Model,
		rec.PromptTokens,
		rec.CompletionTokens,
		rec.TotalTokens,
		rec.CostUSD,
	)
	return err
}

// ListTrips returns the most recent trips, newest first.
func (s *Store) ListTrips(ctx context.Context, limit int) ([]TripRecord, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, timestamp, user_input, destination, json_data
		FROM trips
		ORDER BY id DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TripRecord
	for rows.Next() {
		var r TripRecord
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.UserInput, &r.Destination, &r.PlanJSON); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListUsage returns the most recent usage rows, newest first.
func (s *Store) ListUsage(ctx context.Context, limit int) ([]UsageRecord, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, timestamp, model, prompt_tokens, completion_tokens, total_tokens, cost_usd
		FROM trip_costs
		ORDER BY id DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UsageRecord
	for rows.Next() {
		var r UsageRecord
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Model, &r.PromptTokens, &r.CompletionTokens, &r.TotalTokens, &r.CostUSD); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

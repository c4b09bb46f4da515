package postgres

import (
	"context"
	"database/sql"

	"safar/internal/domain"
	"safar/internal/repository"
)

// HistoryRepository is the PostgreSQL implementation of
// repository.HistoryRepository.
type HistoryRepository struct {
	q Querier
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{q: db}
}

// Ensure interface compliance.
var _ repository.HistoryRepository = (*HistoryRepository)(nil)

// GetDelayHistory returns the most recent delay observations for a route.
func (r *HistoryRepository) GetDelayHistory(ctx context.Context, route string, mode domain.TransportMode, limit int) ([]domain.DelayRecord, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, route, transport_type, delay_minutes, recorded_at
		FROM delay_history
		WHERE route = $1 AND transport_type = $2
		ORDER BY recorded_at DESC
		LIMIT $3`,
		route, string(mode), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.DelayRecord
	for rows.Next() {
		var rec domain.DelayRecord
		var transportType string
		if err := rows.Scan(&rec.ID, &rec.Route, &transportType, &rec.DelayMinutes, &rec.RecordedAt); err != nil {
			return nil, err
		}
		rec.TransportType = domain.TransportMode(transportType)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetCancellationHistory returns the most recent cancellation observations
// for a route.
func (r *HistoryRepository) GetCancellationHistory(ctx context.Context, route string, mode domain.TransportMode, limit int) ([]domain.CancellationRecord, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, route, transport_type, reason, recorded_at
		FROM cancellation_history
		WHERE route = $1 AND transport_type = $2
		ORDER BY recorded_at DESC
		LIMIT $3`,
		route, string(mode), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.CancellationRecord
	for rows.Next() {
		var rec domain.CancellationRecord
		var transportType string
		if err := rows.Scan(&rec.ID, &rec.Route, &transportType, &rec.Reason, &rec.RecordedAt); err != nil {
			return nil, err
		}
		rec.TransportType = domain.TransportMode(transportType)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// LogSearch records one route search.
func (r *HistoryRepository) LogSearch(ctx context.Context, record *domain.SearchRecord) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO search_history (id, origin, destination, travel_date, optimization, route_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID, record.Origin, record.Destination, record.TravelDate,
		string(record.Optimization), record.RouteCount, record.CreatedAt,
	)
	return err
}

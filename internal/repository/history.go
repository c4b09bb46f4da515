package repository

import (
	"context"

	"safar/internal/domain"
)

// HistoryRepository stores observed delays and cancellations and logs route
// searches. It is auxiliary: the planner never reads from it on the request
// path.
type HistoryRepository interface {
	GetDelayHistory(ctx context.Context, route string, mode domain.TransportMode, limit int) ([]domain.DelayRecord, error)
	GetCancellationHistory(ctx context.Context, route string, mode domain.TransportMode, limit int) ([]domain.CancellationRecord, error)
	LogSearch(ctx context.Context, record *domain.SearchRecord) error
}

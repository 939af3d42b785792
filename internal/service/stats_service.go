package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/platform/logger"
	"github.com/gameforge/gameforge-api/internal/store"
)

// StatusCounts breaks one item type down by moderation status.
type StatusCounts struct {
	Pending  int `json:"PENDING"`
	Approved int `json:"APPROVED"`
	Rejected int `json:"REJECTED"`
	Total    int `json:"TOTAL"`
}

// StatsOverview aggregates the whole catalog for the dashboard.
type StatsOverview struct {
	Total  int                     `json:"total"`
	ByType map[string]StatusCounts `json:"byType"`
}

// StatsService reports aggregate counts over the item catalog.
type StatsService interface {
	// Overview counts every item version in the catalog, grouped by item
	// type and moderation status. Types with no items are absent from the
	// result rather than reported as zero rows.
	Overview(ctx context.Context) (*StatsOverview, error)
}

// Verify interface compliance at compile time
var _ StatsService = (*statsServiceImpl)(nil)

type statsServiceImpl struct {
	items  store.ItemStore
	logger *slog.Logger
}

// NewStatsService creates a StatsService backed by the given item store.
func NewStatsService(items store.ItemStore, log *slog.Logger) StatsService {
	if items == nil {
		panic("items cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &statsServiceImpl{
		items:  items,
		logger: log.With(slog.String("component", "stats_service")),
	}
}

// Overview implements StatsService.Overview. It performs a full catalog scan
// and aggregates in memory, which keeps the store free of reporting queries
// at moderation-scale item counts.
func (s *statsServiceImpl) Overview(ctx context.Context) (*StatsOverview, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	items, err := s.items.ScanAll(ctx)
	if err != nil {
		log.Error("failed to scan item catalog", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to scan item catalog: %w", err)
	}

	overview := &StatsOverview{
		Total:  len(items),
		ByType: make(map[string]StatusCounts),
	}

	for _, item := range items {
		counts := overview.ByType[string(item.Type)]
		switch item.Status {
		case domain.ItemStatusPending:
			counts.Pending++
		case domain.ItemStatusApproved:
			counts.Approved++
		case domain.ItemStatusRejected:
			counts.Rejected++
		}
		counts.Total++
		overview.ByType[string(item.Type)] = counts
	}

	log.Debug("computed item stats",
		slog.Int("total", overview.Total),
		slog.Int("types", len(overview.ByType)))

	return overview, nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/platform/logger"
	"github.com/gameforge/gameforge-api/internal/store"
)

// pickerPoolSize caps how many recent approved items the picker samples
// from. Sampling a bounded recent window keeps the query cheap while still
// rotating fresh content to players.
const pickerPoolSize = 100

// PickerService serves playable content to end users.
type PickerService interface {
	// RandomApproved returns one approved item chosen uniformly at random
	// from the most recently created approved items.
	//
	// Returns ErrNoApprovedItems when the catalog holds no approved items.
	RandomApproved(ctx context.Context) (*domain.Item, error)
}

// Verify interface compliance at compile time
var _ PickerService = (*pickerServiceImpl)(nil)

type pickerServiceImpl struct {
	items  store.ItemStore
	logger *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPickerService creates a PickerService backed by the given item store.
func NewPickerService(items store.ItemStore, log *slog.Logger) PickerService {
	if items == nil {
		panic("items cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &pickerServiceImpl{
		items:  items,
		logger: log.With(slog.String("component", "picker_service")),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// RandomApproved implements PickerService.RandomApproved.
func (s *pickerServiceImpl) RandomApproved(ctx context.Context) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	pool, err := s.items.QueryByStatus(
		ctx,
		domain.ItemStatusApproved,
		pickerPoolSize,
		store.OrderDescending,
	)
	if err != nil {
		log.Error("failed to query approved items", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to query approved items: %w", err)
	}

	if len(pool) == 0 {
		log.Debug("no approved items in catalog")
		return nil, ErrNoApprovedItems
	}

	s.mu.Lock()
	idx := s.rng.Intn(len(pool))
	s.mu.Unlock()

	item := pool[idx]
	log.Debug("picked approved item",
		slog.String("item_id", item.ID),
		slog.Int("pool_size", len(pool)))

	return item, nil
}

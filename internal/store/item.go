package store

import (
	"context"

	"github.com/gameforge/gameforge-api/internal/domain"
)

// QueryOrder controls the created_at ordering of QueryByStatus results.
type QueryOrder string

const (
	// OrderAscending returns oldest items first (moderation queue order).
	OrderAscending QueryOrder = "asc"

	// OrderDescending returns newest items first (serving order).
	OrderDescending QueryOrder = "desc"
)

// ItemStore defines the interface for content item persistence.
//
// The store keys rows by (itemId, version). Writes are single-row and rely
// on the database's native row atomicity; concurrent writers to the same
// key resolve last-write-wins. No multi-row transactions are needed because
// each generation task writes exactly one row.
type ItemStore interface {
	// Put writes a new (itemId, version) row unconditionally. It performs
	// no existence check: IDs are freshly generated per task, so overwrite
	// collisions are not expected in practice but are not structurally
	// prevented either.
	Put(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by its (itemId, version) key.
	// Returns ErrItemNotFound if the row does not exist.
	GetByID(ctx context.Context, itemID string, version int) (*domain.Item, error)

	// QueryByStatus returns items in the given status using the
	// (status, created_at) index, ordered by created_at. A limit of zero
	// means no limit. Moderation reads PENDING ascending; serving reads
	// APPROVED descending capped at the serving window.
	QueryByStatus(ctx context.Context, status domain.ItemStatus, limit int, order QueryOrder) ([]*domain.Item, error)

	// UpdateStatus applies a review outcome to the (itemId, version) row.
	// The target status is restricted to {APPROVED, REJECTED}; any other
	// value returns ErrInvalidStatus. The item's current status is NOT
	// checked before the transition, so a second review overwrites the
	// first.
	// Returns ErrItemNotFound if the row does not exist.
	UpdateStatus(ctx context.Context, itemID string, version int, status domain.ItemStatus, reviewer, comment string) error

	// ScanAll returns every item row without pagination. Used only by the
	// stats aggregator; accuracy degrades silently once the table outgrows
	// what a single scan can return.
	ScanAll(ctx context.Context) ([]*domain.Item, error)
}

// PromptStore defines the interface for the single-row prompt configuration.
type PromptStore interface {
	// Get returns the current prompt template with a strongly-consistent
	// read. Returns ErrPromptNotFound if the row has never been written.
	Get(ctx context.Context) (string, error)

	// Set overwrites the prompt template in place. Rejects empty input with
	// domain.ErrPromptEmpty. There is no versioning and no concurrency
	// control; the last write wins.
	Set(ctx context.Context, prompt string) error
}

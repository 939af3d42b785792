package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/platform/logger"
	"github.com/gameforge/gameforge-api/internal/store"
)

// PostgresItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemStore creates a new PostgreSQL implementation of the
// ItemStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresItemStore(db store.DBTX, logger *slog.Logger) *PostgresItemStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure PostgresItemStore implements store.ItemStore interface
var _ store.ItemStore = (*PostgresItemStore)(nil)

const itemColumns = `item_id, version, type, lang, status, spec, created_at, reviewer, review_comment, reviewed_at`

// Put implements store.ItemStore.Put.
// It writes the (itemId, version) row unconditionally: an existing row with
// the same key is overwritten, matching the store's last-write-wins policy.
func (s *PostgresItemStore) Put(ctx context.Context, item *domain.Item) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("item validation failed during put",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO items (item_id, version, type, lang, status, spec, created_at, reviewer, review_comment, reviewed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (item_id, version) DO UPDATE SET
			type = EXCLUDED.type,
			lang = EXCLUDED.lang,
			status = EXCLUDED.status,
			spec = EXCLUDED.spec,
			created_at = EXCLUDED.created_at,
			reviewer = EXCLUDED.reviewer,
			review_comment = EXCLUDED.review_comment,
			reviewed_at = EXCLUDED.reviewed_at
	`

	_, err := s.db.ExecContext(ctx, query,
		item.ID,
		item.Version,
		item.Type,
		item.Lang,
		item.Status,
		[]byte(item.Spec),
		item.CreatedAt,
		nullString(item.Reviewer),
		nullString(item.ReviewComment),
		item.ReviewedAt,
	)
	if err != nil {
		log.Error("failed to put item",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID),
			slog.Int("version", item.Version))
		return MapError(err)
	}

	log.Debug("item persisted",
		slog.String("item_id", item.ID),
		slog.String("type", string(item.Type)),
		slog.String("status", string(item.Status)))
	return nil
}

// GetByID implements store.ItemStore.GetByID.
// Returns store.ErrItemNotFound if the (itemId, version) row does not exist.
func (s *PostgresItemStore) GetByID(ctx context.Context, itemID string, version int) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1 AND version = $2`

	row := s.db.QueryRowContext(ctx, query, itemID, version)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s v%d", store.ErrItemNotFound, itemID, version)
		}
		return nil, MapError(err)
	}

	return item, nil
}

// QueryByStatus implements store.ItemStore.QueryByStatus.
// The query is served by the (status, created_at) index; a limit of zero
// means no limit.
func (s *PostgresItemStore) QueryByStatus(
	ctx context.Context,
	status domain.ItemStatus,
	limit int,
	order store.QueryOrder,
) ([]*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	direction := "ASC"
	if order == store.OrderDescending {
		direction = "DESC"
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE status = $1 ORDER BY created_at ` + direction
	args := []any{status}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query items by status",
			slog.String("error", err.Error()),
			slog.String("status", string(status)))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items, err := collectItems(rows)
	if err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// UpdateStatus implements store.ItemStore.UpdateStatus.
// The target status must be APPROVED or REJECTED; the row's current status
// is deliberately not checked, so a repeated review overwrites the first.
func (s *PostgresItemStore) UpdateStatus(
	ctx context.Context,
	itemID string,
	version int,
	status domain.ItemStatus,
	reviewer, comment string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.IsTerminalStatus(status) {
		return fmt.Errorf("%w: got %q", store.ErrInvalidStatus, status)
	}

	if reviewer == "" {
		reviewer = "unknown"
	}

	query := `
		UPDATE items
		SET status = $1, reviewer = $2, review_comment = $3, reviewed_at = $4
		WHERE item_id = $5 AND version = $6
	`

	result, err := s.db.ExecContext(ctx, query,
		status, reviewer, comment, time.Now().UTC(), itemID, version)
	if err != nil {
		log.Error("failed to update item status",
			slog.String("error", err.Error()),
			slog.String("item_id", itemID),
			slog.String("status", string(status)))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s v%d", store.ErrItemNotFound, itemID, version)
	}

	log.Info("item status updated",
		slog.String("item_id", itemID),
		slog.String("status", string(status)),
		slog.String("reviewer", reviewer))
	return nil
}

// ScanAll implements store.ItemStore.ScanAll.
// Unpaginated full scan for the stats aggregator only.
func (s *PostgresItemStore) ScanAll(ctx context.Context) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items, err := collectItems(rows)
	if err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanItem.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem reads one item row into a domain.Item.
func scanItem(row rowScanner) (*domain.Item, error) {
	var (
		item       domain.Item
		spec       []byte
		reviewer   sql.NullString
		comment    sql.NullString
		reviewedAt sql.NullTime
	)

	err := row.Scan(
		&item.ID,
		&item.Version,
		&item.Type,
		&item.Lang,
		&item.Status,
		&spec,
		&item.CreatedAt,
		&reviewer,
		&comment,
		&reviewedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Spec = spec
	if reviewer.Valid {
		item.Reviewer = reviewer.String
	}
	if comment.Valid {
		item.ReviewComment = comment.String
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time.UTC()
		item.ReviewedAt = &t
	}

	return &item, nil
}

// collectItems drains rows into a slice of items.
func collectItems(rows *sql.Rows) ([]*domain.Item, error) {
	var items []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// nullString maps an empty string to SQL NULL so unreviewed items keep
// their review columns absent rather than empty.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

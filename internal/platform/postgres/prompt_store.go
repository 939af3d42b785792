package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/platform/logger"
	"github.com/gameforge/gameforge-api/internal/store"
)

// PostgresPromptStore implements the store.PromptStore interface using a
// single row in the prompt_config table, keyed by domain.PromptConfigKey.
type PostgresPromptStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPromptStore creates a new PostgreSQL implementation of the
// PromptStore interface. If logger is nil, a default logger will be used.
func NewPostgresPromptStore(db store.DBTX, logger *slog.Logger) *PostgresPromptStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPromptStore{
		db:     db,
		logger: logger.With(slog.String("component", "prompt_store")),
	}
}

// Ensure PostgresPromptStore implements store.PromptStore interface
var _ store.PromptStore = (*PostgresPromptStore)(nil)

// Get implements store.PromptStore.Get.
// Returns store.ErrPromptNotFound when the row has never been written;
// the service layer treats that as an empty template.
func (s *PostgresPromptStore) Get(ctx context.Context) (string, error) {
	query := `SELECT prompt FROM prompt_config WHERE key = $1`

	var prompt string
	err := s.db.QueryRowContext(ctx, query, domain.PromptConfigKey).Scan(&prompt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrPromptNotFound
		}
		return "", MapError(err)
	}

	return prompt, nil
}

// Set implements store.PromptStore.Set.
// The row is created on first write and overwritten in place afterwards;
// there is no versioning and no optimistic lock.
func (s *PostgresPromptStore) Set(ctx context.Context, prompt string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if prompt == "" {
		return domain.ErrPromptEmpty
	}

	query := `
		INSERT INTO prompt_config (key, prompt, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			prompt = EXCLUDED.prompt,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, domain.PromptConfigKey, prompt, time.Now().UTC())
	if err != nil {
		log.Error("failed to set prompt config", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("prompt config updated", slog.Int("prompt_length", len(prompt)))
	return nil
}

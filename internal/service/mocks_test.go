package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/store"
)

// fakeItemStore is an in-memory store.ItemStore for service tests.
type fakeItemStore struct {
	mu    sync.Mutex
	items []*domain.Item

	putErr    error
	queryErr  error
	scanErr   error
	updateErr error

	updateCalls []updateCall
}

type updateCall struct {
	itemID   string
	version  int
	status   domain.ItemStatus
	reviewer string
	comment  string
}

var _ store.ItemStore = (*fakeItemStore)(nil)

func (f *fakeItemStore) Put(ctx context.Context, item *domain.Item) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, item)
	return nil
}

func (f *fakeItemStore) GetByID(ctx context.Context, itemID string, version int) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == itemID && item.Version == version {
			return item, nil
		}
	}
	return nil, store.ErrItemNotFound
}

func (f *fakeItemStore) QueryByStatus(
	ctx context.Context,
	status domain.ItemStatus,
	limit int,
	order store.QueryOrder,
) ([]*domain.Item, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Item
	for _, item := range f.items {
		if item.Status == status {
			out = append(out, item)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeItemStore) UpdateStatus(
	ctx context.Context,
	itemID string,
	version int,
	status domain.ItemStatus,
	reviewer, comment string,
) error {
	f.mu.Lock()
	f.updateCalls = append(f.updateCalls, updateCall{itemID, version, status, reviewer, comment})
	f.mu.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == itemID && item.Version == version {
			item.Status = status
			return nil
		}
	}
	return fmt.Errorf("update item status: %w", store.ErrItemNotFound)
}

func (f *fakeItemStore) ScanAll(ctx context.Context) ([]*domain.Item, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Item(nil), f.items...), nil
}

// fakePromptStore is an in-memory store.PromptStore for service tests.
type fakePromptStore struct {
	prompt string
	getErr error
	setErr error
}

var _ store.PromptStore = (*fakePromptStore)(nil)

func (f *fakePromptStore) Get(ctx context.Context) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	if f.prompt == "" {
		return "", store.ErrPromptNotFound
	}
	return f.prompt, nil
}

func (f *fakePromptStore) Set(ctx context.Context, prompt string) error {
	if f.setErr != nil {
		return f.setErr
	}
	if prompt == "" {
		return domain.ErrPromptEmpty
	}
	f.prompt = prompt
	return nil
}

// makeItem builds a valid item with the given type and status.
func makeItem(itemType domain.ItemType, status domain.ItemStatus) *domain.Item {
	item, err := domain.NewItem(itemType, "en", []byte(`{"title":"t"}`))
	if err != nil {
		panic(err)
	}
	item.Status = status
	return item
}

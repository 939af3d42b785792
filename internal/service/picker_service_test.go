package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameforge/gameforge-api/internal/domain"
)

func TestRandomApprovedReturnsApprovedItem(t *testing.T) {
	t.Parallel()

	approved := makeItem(domain.ItemTypeQuizMCQ, domain.ItemStatusApproved)
	items := &fakeItemStore{items: []*domain.Item{
		makeItem(domain.ItemTypeQuizMCQ, domain.ItemStatusPending),
		approved,
		makeItem(domain.ItemTypeJigsaw, domain.ItemStatusRejected),
	}}
	svc := NewPickerService(items, nil)

	item, err := svc.RandomApproved(context.Background())
	require.NoError(t, err)

	assert.Equal(t, approved.ID, item.ID)
	assert.Equal(t, domain.ItemStatusApproved, item.Status)
}

func TestRandomApprovedCoversPool(t *testing.T) {
	t.Parallel()

	first := makeItem(domain.ItemTypeQuizMCQ, domain.ItemStatusApproved)
	second := makeItem(domain.ItemTypeJigsaw, domain.ItemStatusApproved)
	items := &fakeItemStore{items: []*domain.Item{first, second}}
	svc := NewPickerService(items, nil)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		item, err := svc.RandomApproved(context.Background())
		require.NoError(t, err)
		seen[item.ID] = true
	}

	assert.True(t, seen[first.ID], "first item never picked")
	assert.True(t, seen[second.ID], "second item never picked")
	assert.Len(t, seen, 2)
}

func TestRandomApprovedEmptyCatalog(t *testing.T) {
	t.Parallel()

	items := &fakeItemStore{items: []*domain.Item{
		makeItem(domain.ItemTypeQuizMCQ, domain.ItemStatusPending),
	}}
	svc := NewPickerService(items, nil)

	item, err := svc.RandomApproved(context.Background())

	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrNoApprovedItems)
}

func TestRandomApprovedStoreFailure(t *testing.T) {
	t.Parallel()

	items := &fakeItemStore{queryErr: errors.New("timeout")}
	svc := NewPickerService(items, nil)

	item, err := svc.RandomApproved(context.Background())

	assert.Nil(t, item)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoApprovedItems)
}

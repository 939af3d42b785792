package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/service"
)

func getRandomApproved(t *testing.T, handler *ContentHandler) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/random-approved", nil)
	rec := httptest.NewRecorder()
	handler.RandomApproved(rec, req)
	return rec
}

func TestRandomApprovedServesItem(t *testing.T) {
	t.Parallel()

	item := makeItem(domain.ItemTypeJigsaw, domain.ItemStatusApproved)
	handler := NewContentHandler(&fakePickerService{item: item}, nil)

	rec := getRandomApproved(t, handler)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, item.ID, resp.ID)
	assert.Equal(t, "jigsaw", resp.Type)
	assert.Equal(t, "APPROVED", resp.Status)
	assert.Empty(t, resp.Reviewer, "unreviewed fields stay off the wire")
}

func TestRandomApprovedEmptyCatalog(t *testing.T) {
	t.Parallel()

	handler := NewContentHandler(&fakePickerService{err: service.ErrNoApprovedItems}, nil)

	rec := getRandomApproved(t, handler)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No approved items found")
}

func TestRandomApprovedStoreFailure(t *testing.T) {
	t.Parallel()

	handler := NewContentHandler(&fakePickerService{err: errors.New("pg down")}, nil)

	rec := getRandomApproved(t, handler)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pg down")
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/service"
)

func TestListPendingReturnsItems(t *testing.T) {
	t.Parallel()

	pending := makeItem(domain.ItemTypeQuizMCQ, domain.ItemStatusPending)
	handler := NewModerationHandler(
		&fakeReviewService{pending: []*domain.Item{pending}},
		&fakeStatsService{},
		nil,
	)

	req := httptest.NewRequest(http.MethodGet, "/pending", nil)
	rec := httptest.NewRecorder()
	handler.ListPending(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PendingItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, pending.ID, resp.Items[0].ID)
	assert.Equal(t, "PENDING", resp.Items[0].Status)
	assert.Equal(t, 1, resp.Items[0].Version)
}

func TestListPendingEmptyQueueIsAnArray(t *testing.T) {
	t.Parallel()

	handler := NewModerationHandler(&fakeReviewService{}, &fakeStatsService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/pending", nil)
	rec := httptest.NewRecorder()
	handler.ListPending(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestSubmitReviewSuccess(t *testing.T) {
	t.Parallel()

	reviews := &fakeReviewService{
		result: &service.ReviewResult{ItemID: "item_0a1b2c3d", Status: domain.ItemStatusApproved},
	}
	handler := NewModerationHandler(reviews, &fakeStatsService{}, nil)

	body := `{"itemId":"item_0a1b2c3d","version":1,"status":"APPROVED","reviewer":"alice","comment":"ok"}`
	req := httptest.NewRequest(http.MethodPost, "/review", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SubmitReview(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "item_0a1b2c3d", resp.ItemID)
	assert.Equal(t, "APPROVED", resp.Status)

	require.Len(t, reviews.submitted, 1)
	assert.Equal(t, "alice", reviews.submitted[0].Reviewer)
	assert.Equal(t, "ok", reviews.submitted[0].Comment)
}

func TestSubmitReviewValidationFailure(t *testing.T) {
	t.Parallel()

	reviews := &fakeReviewService{
		submitErr: service.NewValidationError("status", "must be APPROVED or REJECTED"),
	}
	handler := NewModerationHandler(reviews, &fakeStatsService{}, nil)

	body := `{"itemId":"item_0a1b2c3d","version":1,"status":"PENDING"}`
	req := httptest.NewRequest(http.MethodPost, "/review", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SubmitReview(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "status")
}

func TestSubmitReviewMissingItemIsServerError(t *testing.T) {
	t.Parallel()

	reviews := &fakeReviewService{
		submitErr: fmt.Errorf("%w: item_deadbeef version 1", service.ErrItemNotFound),
	}
	handler := NewModerationHandler(reviews, &fakeStatsService{}, nil)

	body := `{"itemId":"item_deadbeef","version":1,"status":"APPROVED"}`
	req := httptest.NewRequest(http.MethodPost, "/review", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SubmitReview(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSubmitReviewMalformedBody(t *testing.T) {
	t.Parallel()

	reviews := &fakeReviewService{}
	handler := NewModerationHandler(reviews, &fakeStatsService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/review", strings.NewReader(`{"itemId":`))
	rec := httptest.NewRecorder()
	handler.SubmitReview(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, reviews.submitted)
}

func TestItemStats(t *testing.T) {
	t.Parallel()

	stats := &fakeStatsService{overview: &service.StatsOverview{
		Total: 3,
		ByType: map[string]service.StatusCounts{
			"quiz_mcq": {Pending: 1, Approved: 2, Total: 3},
		},
	}}
	handler := NewModerationHandler(&fakeReviewService{}, stats, nil)

	req := httptest.NewRequest(http.MethodGet, "/item-stats", nil)
	rec := httptest.NewRecorder()
	handler.ItemStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp service.StatsOverview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.ByType["quiz_mcq"].Approved)
}

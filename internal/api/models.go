package api

import (
	"encoding/json"
	"time"

	"github.com/gameforge/gameforge-api/internal/domain"
)

// ItemResponse is the wire representation of a content item. Review fields
// are omitted until a moderator has acted on the item.
type ItemResponse struct {
	ID            string          `json:"id"`
	Version       int             `json:"version"`
	Type          string          `json:"type"`
	Lang          string          `json:"lang"`
	Status        string          `json:"status"`
	Spec          json.RawMessage `json:"spec"`
	CreatedAt     time.Time       `json:"createdAt"`
	Reviewer      string          `json:"reviewer,omitempty"`
	ReviewComment string          `json:"reviewComment,omitempty"`
	ReviewedAt    *time.Time      `json:"reviewedAt,omitempty"`
}

// itemToResponse converts a domain item to its wire representation.
func itemToResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		Version:       item.Version,
		Type:          string(item.Type),
		Lang:          item.Lang,
		Status:        string(item.Status),
		Spec:          item.Spec,
		CreatedAt:     item.CreatedAt,
		Reviewer:      item.Reviewer,
		ReviewComment: item.ReviewComment,
		ReviewedAt:    item.ReviewedAt,
	}
}

// itemsToResponse converts a slice of domain items, returning an empty slice
// rather than null for an empty list.
func itemsToResponse(items []*domain.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemToResponse(item))
	}
	return out
}

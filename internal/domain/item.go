package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ItemType identifies the kind of interactive content an item holds.
type ItemType string

// Supported content item types.
const (
	ItemTypeWordSearch   ItemType = "word_search"
	ItemTypeQuizMCQ      ItemType = "quiz_mcq"
	ItemTypeMemoryMatch  ItemType = "memory_match"
	ItemTypeSpaceShooter ItemType = "space_shooter"
	ItemTypeJigsaw       ItemType = "jigsaw"
	ItemTypeTrueFalse    ItemType = "true_false"
	ItemTypeOddOneOut    ItemType = "odd_one_out"
)

// ItemStatus represents an item's position in the moderation lifecycle.
type ItemStatus string

// Lifecycle states. An item is created PENDING and moves to APPROVED or
// REJECTED exactly once by convention; the store does not enforce it.
const (
	ItemStatusPending  ItemStatus = "PENDING"
	ItemStatusApproved ItemStatus = "APPROVED"
	ItemStatusRejected ItemStatus = "REJECTED"
)

// Item-specific validation errors. Each wraps ErrValidation.
var (
	// ErrItemIDInvalid is returned when an item ID does not match the
	// item_[0-9a-f]{8} format.
	ErrItemIDInvalid = fmt.Errorf("%w: item ID must match item_ followed by 8 lowercase hex characters", ErrValidation)

	// ErrItemTypeInvalid is returned when an item's type is not one of the
	// supported content types.
	ErrItemTypeInvalid = fmt.Errorf("%w: item type is not supported", ErrValidation)

	// ErrItemLangEmpty is returned when an item's language is empty.
	ErrItemLangEmpty = fmt.Errorf("%w: item language cannot be empty", ErrValidation)

	// ErrItemSpecEmpty is returned when an item's spec payload is empty.
	ErrItemSpecEmpty = fmt.Errorf("%w: item spec cannot be empty", ErrValidation)

	// ErrItemSpecInvalid is returned when an item's spec is not valid JSON.
	ErrItemSpecInvalid = fmt.Errorf("%w: item spec must be valid JSON", ErrValidation)

	// ErrItemVersionInvalid is returned when an item's version is not positive.
	ErrItemVersionInvalid = fmt.Errorf("%w: item version must be positive", ErrValidation)

	// ErrItemStatusInvalid is returned when an item's status is not a known
	// lifecycle state.
	ErrItemStatusInvalid = fmt.Errorf("%w: item status is not valid", ErrValidation)
)

// itemIDPattern is the required shape of every persisted item ID.
var itemIDPattern = regexp.MustCompile(`^item_[0-9a-f]{8}$`)

// validItemTypes is the closed set of content types the pipeline produces.
var validItemTypes = map[ItemType]bool{
	ItemTypeWordSearch:   true,
	ItemTypeQuizMCQ:      true,
	ItemTypeMemoryMatch:  true,
	ItemTypeSpaceShooter: true,
	ItemTypeJigsaw:       true,
	ItemTypeTrueFalse:    true,
	ItemTypeOddOneOut:    true,
}

// Item represents one generated interactive content unit. The spec payload
// is stored as JSONB so each content type can carry its own shape. The pair
// (ID, Version) uniquely identifies a row; Version is always 1 in current
// flows and is reserved for a future regenerate-in-place path.
type Item struct {
	ID            string          `json:"id"`
	Version       int             `json:"version"`
	Type          ItemType        `json:"type"`
	Lang          string          `json:"lang"`
	Status        ItemStatus      `json:"status"`
	Spec          json.RawMessage `json:"spec"`
	CreatedAt     time.Time       `json:"created_at"`
	Reviewer      string          `json:"reviewer,omitempty"`
	ReviewComment string          `json:"review_comment,omitempty"`
	ReviewedAt    *time.Time      `json:"reviewed_at,omitempty"`
}

// NewItemID derives a fresh item identifier from a random UUID: the UUID's
// separators are stripped and the first 8 lowercase hex characters are kept.
func NewItemID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "item_" + raw[:8]
}

// NewItem creates a new PENDING item with a freshly derived ID, version 1
// and the current UTC timestamp. Returns an error if validation fails.
func NewItem(itemType ItemType, lang string, spec json.RawMessage) (*Item, error) {
	item := &Item{
		ID:        NewItemID(),
		Version:   1,
		Type:      itemType,
		Lang:      lang,
		Status:    ItemStatusPending,
		Spec:      spec,
		CreatedAt: time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
// Returns an error if any field fails validation.
func (i *Item) Validate() error {
	if !itemIDPattern.MatchString(i.ID) {
		return fmt.Errorf("%w: got %q", ErrItemIDInvalid, i.ID)
	}

	if i.Version < 1 {
		return ErrItemVersionInvalid
	}

	if !validItemTypes[i.Type] {
		return fmt.Errorf("%w: got %q", ErrItemTypeInvalid, i.Type)
	}

	if i.Lang == "" {
		return ErrItemLangEmpty
	}

	if len(i.Spec) == 0 {
		return ErrItemSpecEmpty
	}

	var js json.RawMessage
	if err := json.Unmarshal(i.Spec, &js); err != nil {
		return ErrItemSpecInvalid
	}

	switch i.Status {
	case ItemStatusPending, ItemStatusApproved, ItemStatusRejected:
	default:
		return fmt.Errorf("%w: got %q", ErrItemStatusInvalid, i.Status)
	}

	return nil
}

// IsValidItemType reports whether s names a supported content type.
func IsValidItemType(s string) bool {
	return validItemTypes[ItemType(s)]
}

// IsTerminalStatus reports whether s is one of the review outcomes.
// Terminal by convention only; nothing prevents a second review.
func IsTerminalStatus(s ItemStatus) bool {
	return s == ItemStatusApproved || s == ItemStatusRejected
}

// ApplyReview records a review decision on the item. The target status must
// be APPROVED or REJECTED. An empty reviewer defaults to "unknown".
func (i *Item) ApplyReview(status ItemStatus, reviewer, comment string) error {
	if !IsTerminalStatus(status) {
		return fmt.Errorf("%w: got %q", ErrInvalidReviewStatus, status)
	}

	if reviewer == "" {
		reviewer = "unknown"
	}

	now := time.Now().UTC()
	i.Status = status
	i.Reviewer = reviewer
	i.ReviewComment = comment
	i.ReviewedAt = &now
	return nil
}

// Package guestbook defines the guestbook domain model and services.
package guestbook

import (
	"fmt"
	"time"
)

// Entry is a single guestbook submission. Entries are create and read only;
// no operation mutates an entry after the store has assigned its id and
// creation time.
type Entry struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Caller is the authenticated identity resolved from request credentials.
// It gates inserts but never overrides the submitted author.
type Caller struct {
	Subject  string
	Email    string
	ClientID string
}

// SortOrder selects the direction entries are listed in.
type SortOrder string

const (
	SortOrderNewest SortOrder = "newest"
	SortOrderOldest SortOrder = "oldest"

	// DefaultSortOrder applies when a list request carries no sortOrder.
	DefaultSortOrder = SortOrderNewest

	// DefaultMaxResults applies when a list request carries no maxResults.
	DefaultMaxResults = 100
)

// String returns the string representation of the sort order.
func (o SortOrder) String() string {
	return string(o)
}

// ParseSortOrder resolves a raw request value to a SortOrder. Empty input
// resolves to DefaultSortOrder.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch raw {
	case "":
		return DefaultSortOrder, nil
	case string(SortOrderNewest):
		return SortOrderNewest, nil
	case string(SortOrderOldest):
		return SortOrderOldest, nil
	default:
		return "", fmt.Errorf("unknown sort order %q", raw)
	}
}

// ListParams bounds and orders a list operation.
type ListParams struct {
	MaxResults int
	SortOrder  SortOrder
}

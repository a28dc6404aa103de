package guestbook

import "context"

// Repository exposes data access for guestbook entries. The store assigns id
// and creation time; ListByCreatedAt is side-effect free and safe to call
// concurrently with Create.
type Repository interface {
	Create(ctx context.Context, author, text string) (*Entry, error)
	ListByCreatedAt(ctx context.Context, order SortOrder, limit int) ([]Entry, error)
}

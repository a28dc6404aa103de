package guestbook

import (
	"context"
	"sync"
	"time"

	domain "guestbook-api/internal/domain/guestbook"
)

// InMemoryRepository is a thread-safe entry store for local runs and tests.
// Entries are held in insertion order, which matches ascending creation time.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries []domain.Entry
	nextID  int64
}

// NewInMemoryRepository creates an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

// Create appends a new entry, assigning id and creation time.
func (r *InMemoryRepository) Create(ctx context.Context, author, text string) (*domain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := domain.Entry{
		ID:        r.nextID,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.entries = append(r.entries, entry)
	return &entry, nil
}

// ListByCreatedAt returns up to limit entries ordered by creation time.
func (r *InMemoryRepository) ListByCreatedAt(ctx context.Context, order domain.SortOrder, limit int) ([]domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.entries)
	if limit < n {
		n = limit
	}
	if n < 0 {
		n = 0
	}

	result := make([]domain.Entry, 0, n)
	if order == domain.SortOrderOldest {
		result = append(result, r.entries[:n]...)
		return result, nil
	}
	for i := len(r.entries) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, r.entries[i])
	}
	return result, nil
}

// Len reports the number of stored entries.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

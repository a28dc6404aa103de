package handlers

import (
	"github.com/rs/zerolog"

	"guestbook-api/internal/domain/guestbook"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Guestbook *GuestbookHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(guestbookService guestbook.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Guestbook: NewGuestbookHandler(guestbookService, log),
	}
}

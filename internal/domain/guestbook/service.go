package guestbook

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"guestbook-api/internal/utils/platformerrors"
)

// Service describes the business logic surface for guestbook operations.
type Service interface {
	// ListEntries returns up to MaxResults entries ordered by creation time.
	// Requires no authentication and has no side effects.
	ListEntries(ctx context.Context, params ListParams) ([]Entry, error)

	// InsertEntry persists a new entry. The caller is the explicitly resolved
	// authenticated identity; a nil caller fails Unauthorized with no write.
	// Author is taken from the request, not derived from the caller.
	InsertEntry(ctx context.Context, caller *Caller, author, text string) (*Entry, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the guestbook service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "guestbook-service").Logger(),
	}
}

func (s *service) ListEntries(ctx context.Context, params ListParams) ([]Entry, error) {
	if params.MaxResults < 0 {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"maxResults must not be negative",
			nil,
			"guestbook-list-max-001",
		)
	}

	order := params.SortOrder
	if order == "" {
		order = DefaultSortOrder
	}

	entries, err := s.repo.ListByCreatedAt(ctx, order, params.MaxResults)
	if err != nil {
		s.log.Error().Err(err).Msg("list entries")
		return nil, err
	}
	return entries, nil
}

func (s *service) InsertEntry(ctx context.Context, caller *Caller, author, text string) (*Entry, error) {
	if caller == nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeUnauthorized,
			"authentication required",
			nil,
			"guestbook-insert-auth-001",
		)
	}

	author = strings.TrimSpace(author)
	text = strings.TrimSpace(text)
	if author == "" || text == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"author and text are required",
			nil,
			"guestbook-insert-validate-001",
		)
	}

	entry, err := s.repo.Create(ctx, author, text)
	if err != nil {
		s.log.Error().Err(err).Msg("create entry")
		return nil, err
	}

	s.log.Info().
		Int64("entry_id", entry.ID).
		Str("caller", caller.Subject).
		Msg("entry created")
	return entry, nil
}

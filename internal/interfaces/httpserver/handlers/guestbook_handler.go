package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"guestbook-api/internal/domain/guestbook"
	"guestbook-api/internal/infrastructure/auth"
	"guestbook-api/internal/interfaces/httpserver/requests"
	"guestbook-api/internal/interfaces/httpserver/responses"
	"guestbook-api/internal/utils/platformerrors"
)

// GuestbookHandler exposes HTTP entrypoints for the guestbook API.
type GuestbookHandler struct {
	service guestbook.Service
	log     zerolog.Logger
}

// NewGuestbookHandler constructs the handler.
func NewGuestbookHandler(service guestbook.Service, log zerolog.Logger) *GuestbookHandler {
	return &GuestbookHandler{
		service: service,
		log:     log.With().Str("handler", "guestbook").Logger(),
	}
}

// List handles GET /entries
// @Summary List guestbook entries
// @Description Returns up to maxResults entries ordered by submission time
// @Tags Entries
// @Produce json
// @Param maxResults query int false "Maximum number of entries" default(100)
// @Param sortOrder query string false "newest or oldest" default(newest)
// @Success 200 {object} responses.EntryListPayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /entries [get]
func (h *GuestbookHandler) List(c *gin.Context) {
	var req requests.ListEntriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid list query", "entries-list-bind-001")
		return
	}

	order, err := guestbook.ParseSortOrder(req.SortOrder)
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid sort order", "entries-list-order-001")
		return
	}

	entries, err := h.service.ListEntries(c.Request.Context(), guestbook.ListParams{
		MaxResults: req.MaxResults,
		SortOrder:  order,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to list entries")
		return
	}

	c.JSON(http.StatusOK, responses.MapEntryListToPayload(entries))
}

// Insert handles POST /entries/new
// @Summary Insert a guestbook entry
// @Description Persists a new entry for an authenticated caller
// @Tags Entries
// @Accept json
// @Produce json
// @Param request body requests.InsertEntryRequest true "Entry to insert"
// @Success 201 {object} responses.EntryPayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /entries/new [post]
func (h *GuestbookHandler) Insert(c *gin.Context) {
	var req requests.InsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "author and text are required", "entries-insert-bind-001")
		return
	}

	caller := auth.CallerFromContext(c)
	entry, err := h.service.InsertEntry(c.Request.Context(), caller, req.Author, req.Text)
	if err != nil {
		responses.HandleError(c, err, "failed to insert entry")
		return
	}

	c.JSON(http.StatusCreated, responses.MapEntryToPayload(*entry))
}

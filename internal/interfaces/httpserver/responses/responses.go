// Package responses defines the wire-level response shapes and the mapping
// from domain entries to transport objects.
package responses

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"guestbook-api/internal/domain/guestbook"
	"guestbook-api/internal/utils/platformerrors"
)

// dateLayout renders creation timestamps at second precision with no zone
// offset, matching the published wire format.
const dateLayout = "2006-01-02T15:04:05"

// FormatDate renders a creation timestamp in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// EntryPayload is the wire representation of a single entry.
type EntryPayload struct {
	ID     int64  `json:"id"`
	Author string `json:"author"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// EntryListPayload wraps an ordered sequence of entries.
type EntryListPayload struct {
	Items []EntryPayload `json:"items"`
}

// MapEntryToPayload converts a domain entry into its wire representation.
func MapEntryToPayload(entry guestbook.Entry) EntryPayload {
	return EntryPayload{
		ID:     entry.ID,
		Author: entry.Author,
		Text:   entry.Text,
		Date:   FormatDate(entry.CreatedAt),
	}
}

// MapEntryListToPayload converts domain entries preserving their order.
func MapEntryListToPayload(entries []guestbook.Entry) EntryListPayload {
	items := make([]EntryPayload, 0, len(entries))
	for _, entry := range entries {
		items = append(items, MapEntryToPayload(entry))
	}
	return EntryListPayload{Items: items}
}

// ErrorResponse represents an error response with platform error details.
type ErrorResponse struct {
	Code      string `json:"code,omitempty"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError maps domain errors to appropriate HTTP responses.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var domainErr *platformerrors.PlatformError
	if errors.As(err, &domainErr) {
		statusCode := platformerrors.ErrorTypeToHTTPStatus(domainErr.GetErrorType())

		reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{
			Code:      domainErr.GetUUID(),
			Error:     message,
			RequestID: domainErr.GetRequestID(),
		})
		return
	}

	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error: message,
	})
}

// HandleNewError creates a new typed error at the route layer and handles it.
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string, uuid string) {
	err := platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerRoute, errorType, message, nil, uuid)
	HandleError(reqCtx, err, message)
}

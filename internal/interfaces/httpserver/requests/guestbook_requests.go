// Package requests defines the wire-level request shapes for the guestbook
// endpoints, decoupled from the storage record shape.
package requests

// ListEntriesRequest carries the query parameters for GET /entries. Absent
// fields resolve to the documented defaults at the binding layer.
type ListEntriesRequest struct {
	MaxResults int    `form:"maxResults,default=100" binding:"gte=0"`
	SortOrder  string `form:"sortOrder,default=newest" binding:"omitempty,oneof=newest oldest"`
}

// InsertEntryRequest carries the body for POST /entries/new. Both fields are
// required wire fields; a request missing either never reaches the store.
type InsertEntryRequest struct {
	Author string `json:"author" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

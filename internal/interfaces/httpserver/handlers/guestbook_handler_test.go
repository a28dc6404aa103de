package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"guestbook-api/internal/domain/guestbook"
	"guestbook-api/internal/infrastructure/auth"
	"guestbook-api/internal/interfaces/httpserver/handlers"
	"guestbook-api/internal/utils/platformerrors"
)

// MockGuestbookService is a mock implementation of guestbook.Service.
type MockGuestbookService struct {
	ListEntriesFunc func(ctx context.Context, params guestbook.ListParams) ([]guestbook.Entry, error)
	InsertEntryFunc func(ctx context.Context, caller *guestbook.Caller, author, text string) (*guestbook.Entry, error)
}

func (m *MockGuestbookService) ListEntries(ctx context.Context, params guestbook.ListParams) ([]guestbook.Entry, error) {
	if m.ListEntriesFunc != nil {
		return m.ListEntriesFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockGuestbookService) InsertEntry(ctx context.Context, caller *guestbook.Caller, author, text string) (*guestbook.Entry, error) {
	if m.InsertEntryFunc != nil {
		return m.InsertEntryFunc(ctx, caller, author, text)
	}
	return nil, nil
}

func setupGuestbookTestRouter(handler *handlers.GuestbookHandler, caller *guestbook.Caller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/entries", handler.List)
	r.POST("/entries/new", func(c *gin.Context) {
		if caller != nil {
			auth.SetCaller(c, caller)
		}
		c.Next()
	}, handler.Insert)
	return r
}

func TestGuestbookHandler_List_Defaults(t *testing.T) {
	var gotParams guestbook.ListParams
	mockService := &MockGuestbookService{
		ListEntriesFunc: func(ctx context.Context, params guestbook.ListParams) ([]guestbook.Entry, error) {
			gotParams = params
			return []guestbook.Entry{
				{ID: 2, Author: "Bob", Text: "Hi", CreatedAt: time.Date(2013, 4, 9, 19, 0, 0, 0, time.UTC)},
				{ID: 1, Author: "Alice", Text: "Hello", CreatedAt: time.Date(2013, 4, 9, 18, 0, 0, 0, time.UTC)},
			}, nil
		},
	}

	handler := handlers.NewGuestbookHandler(mockService, zerolog.Nop())
	router := setupGuestbookTestRouter(handler, nil)

	req, _ := http.NewRequest("GET", "/entries", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if gotParams.MaxResults != 100 {
		t.Errorf("Expected default maxResults 100, got %d", gotParams.MaxResults)
	}
	if gotParams.SortOrder != guestbook.SortOrderNewest {
		t.Errorf("Expected default sortOrder newest, got %q", gotParams.SortOrder)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	items, ok := response["items"].([]interface{})
	if !ok {
		t.Fatalf("Expected items array, got %v", response["items"])
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	first := items[0].(map[string]interface{})
	if first["author"] != "Bob" {
		t.Errorf("Expected first item author 'Bob', got %v", first["author"])
	}
	if first["date"] != "2013-04-09T19:00:00" {
		t.Errorf("Expected formatted date, got %v", first["date"])
	}
}

func TestGuestbookHandler_List_QueryParams(t *testing.T) {
	var gotParams guestbook.ListParams
	mockService := &MockGuestbookService{
		ListEntriesFunc: func(ctx context.Context, params guestbook.ListParams) ([]guestbook.Entry, error) {
			gotParams = params
			return nil, nil
		},
	}

	handler := handlers.NewGuestbookHandler(mockService, zerolog.Nop())
	router := setupGuestbookTestRouter(handler, nil)

	req, _ := http.NewRequest("GET", "/entries?maxResults=1&sortOrder=oldest", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if gotParams.MaxResults != 1 {
		t.Errorf("Expected maxResults 1, got %d", gotParams.MaxResults)
	}
	if gotParams.SortOrder != guestbook.SortOrderOldest {
		t.Errorf("Expected sortOrder oldest, got %q", gotParams.SortOrder)
	}
}

func TestGuestbookHandler_List_InvalidSortOrder(t *testing.T) {
	called := false
	mockService := &MockGuestbookService{
		ListEntriesFunc: func(ctx context.Context, params guestbook.ListParams) ([]guestbook.Entry, error) {
			called = true
			return nil, nil
		},
	}

	handler := handlers.NewGuestbookHandler(mockService, zerolog.Nop())
	router := setupGuestbookTestRouter(handler, nil)

	req, _ := http.NewRequest("GET", "/entries?sortOrder=sideways", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if called {
		t.Error("Expected service not to be called")
	}
}

func TestGuestbookHandler_Insert(t *testing.T) {
	mockService := &MockGuestbookService{
		InsertEntryFunc: func(ctx context.Context, caller *guestbook.Caller, author, text string) (*guestbook.Entry, error) {
			if caller == nil {
				t.Error("Expected caller to be passed to the service")
			}
			return &guestbook.Entry{
				ID:        7,
				Author:    author,
				Text:      text,
				CreatedAt: time.Date(2013, 4, 9, 18, 30, 5, 0, time.UTC),
			}, nil
		},
	}

	handler := handlers.NewGuestbookHandler(mockService, zerolog.Nop())
	router := setupGuestbookTestRouter(handler, &guestbook.Caller{Subject: "user-1", Email: "alice@example.com"})

	body := bytes.NewBufferString(`{"author": "Alice", "text": "Hello"}`)
	req, _ := http.NewRequest("POST", "/entries/new", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["id"] != 7.0 {
		t.Errorf("Expected id 7, got %v", response["id"])
	}
	if response["author"] != "Alice" {
		t.Errorf("Expected author 'Alice', got %v", response["author"])
	}
	if response["text"] != "Hello" {
		t.Errorf("Expected text 'Hello', got %v", response["text"])
	}
	if response["date"] != "2013-04-09T18:30:05" {
		t.Errorf("Expected formatted date, got %v", response["date"])
	}
}

func TestGuestbookHandler_Insert_MissingFields(t *testing.T) {
	called := false
	mockService := &MockGuestbookService{
		InsertEntryFunc: func(ctx context.Context, caller *guestbook.Caller, author, text string) (*guestbook.Entry, error) {
			called = true
			return nil, nil
		},
	}

	handler := handlers.NewGuestbookHandler(mockService, zerolog.Nop())
	router := setupGuestbookTestRouter(handler, &guestbook.Caller{Subject: "user-1"})

	body := bytes.NewBufferString(`{"author": "Alice"}`)
	req, _ := http.NewRequest("POST", "/entries/new", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if called {
		t.Error("Expected service not to be called")
	}
}

func TestGuestbookHandler_Insert_Unauthenticated(t *testing.T) {
	mockService := &MockGuestbookService{
		InsertEntryFunc: func(ctx context.Context, caller *guestbook.Caller, author, text string) (*guestbook.Entry, error) {
			if caller != nil {
				t.Errorf("Expected nil caller, got %+v", caller)
			}
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeUnauthorized, "authentication required", nil, "guestbook-insert-auth-001")
		},
	}

	handler := handlers.NewGuestbookHandler(mockService, zerolog.Nop())
	router := setupGuestbookTestRouter(handler, nil)

	body := bytes.NewBufferString(`{"author": "Alice", "text": "Hello"}`)
	req, _ := http.NewRequest("POST", "/entries/new", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

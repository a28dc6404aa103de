// Package v1 registers the guestbook routing table: an explicit
// {method, path} -> handler mapping built at startup.
package v1

import (
	"github.com/gin-gonic/gin"

	"guestbook-api/internal/infrastructure/auth"
	"guestbook-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register attaches the guestbook routes. Listing is public; inserting
// requires the caller identity resolved by the auth middleware.
func (r *Routes) Register(engine *gin.Engine, authValidator *auth.Validator) {
	group := engine.Group("/entries")
	group.GET("", r.handlers.Guestbook.List)
	group.POST("/new", authValidator.Middleware(), r.handlers.Guestbook.Insert)
}

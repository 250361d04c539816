// Package router wires the HTTP routes of the service.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stock_journal/internal/api"
	authhandler "stock_journal/internal/feature/auth/transport/handler"
	journalhandler "stock_journal/internal/feature/journal/transport/handler"
	watchlisthandler "stock_journal/internal/feature/watchlist/transport/handler"
	"stock_journal/internal/platform/http/handler"
	jwtmw "stock_journal/internal/platform/jwt"
)

// New builds the gin engine with all routes. The journal is served to a
// browser client, so CORS is enabled with defaults.
func New(jwtSecret string, auth *authhandler.AuthHandler, entries *journalhandler.EntryHandler,
	watchlist *watchlisthandler.WatchlistHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Open routes
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.POST("/refresh", auth.Refresh)

	// Authenticated routes: the session gate. Requests without a valid
	// bearer token never reach the journal.
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired(jwtSecret))
	{
		authed.GET("/session", auth.Session)
		authed.POST("/logout", auth.Logout)

		authed.GET("/entries", entries.List)
		authed.POST("/entries", entries.Create)
		authed.PUT("/entries/:id", entries.Update)
		authed.DELETE("/entries/:id", entries.Delete)

		authed.GET("/watchlist", watchlist.List)
		authed.GET("/watchlist/:ticker/entries", watchlist.Entries)
	}

	return r
}

// NewInitError builds a router that serves nothing but the initialization
// failure. When required configuration is missing the diagnostic replaces
// the application instead of failing silently.
func NewInitError(initErr error) *gin.Engine {
	r := gin.Default()
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{
			Error: "application initialization failed: " + initErr.Error(),
		})
	})
	return r
}

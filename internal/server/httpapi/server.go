// Package httpapi exposes the session lifecycle over HTTP. It wires the Gin
// router, the CORS policy, and the refresh-token cookie handling around the
// user service.
package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Dev-Puneet-V/xianinfotech/internal/logging"
	"github.com/Dev-Puneet-V/xianinfotech/internal/server/config"
	"github.com/Dev-Puneet-V/xianinfotech/internal/server/models"
	"github.com/Dev-Puneet-V/xianinfotech/internal/server/services"
)

// RefreshCookieName is the cookie carrying the refresh token between calls.
const RefreshCookieName = "refreshToken"

// SessionService is the slice of the user service the handlers need.
type SessionService interface {
	Signup(ctx context.Context, in services.SignupInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// UserHandler holds the dependencies shared by all session endpoints.
type UserHandler struct {
	svc          SessionService
	logger       logging.Logger
	cookieMaxAge int
}

// NewUserHandler builds the handler set. The refresh cookie lifetime follows
// the configured refresh-token validity.
func NewUserHandler(svc SessionService, logger logging.Logger, cfg *config.Config) *UserHandler {
	return &UserHandler{
		svc:          svc,
		logger:       logger,
		cookieMaxAge: int(cfg.RefreshTokenValidityDuration.Seconds()),
	}
}

// NewRouter assembles the Gin engine with CORS and all routes registered.
func NewRouter(h *UserHandler, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", handleHealth)

	api := router.Group("/api")
	{
		api.POST("/signup", h.Signup)
		api.POST("/login", h.Login)
		api.POST("/refresh-token", h.Refresh)
		api.POST("/logout", h.Logout)
	}

	return router
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// setRefreshCookie attaches the refresh token as an HTTP-only cookie.
func (h *UserHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(RefreshCookieName, token, h.cookieMaxAge, "/", "", false, true)
}

// clearRefreshCookie tells the client to drop the refresh cookie immediately.
func (h *UserHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(RefreshCookieName, "", -1, "/", "", false, true)
}

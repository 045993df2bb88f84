package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prezumi-backend/internal/admin"
	googleauth "prezumi-backend/internal/auth"
	"prezumi-backend/internal/coverletters"
	"prezumi-backend/internal/generate"
	"prezumi-backend/internal/render"
	"prezumi-backend/internal/resumes"
	"prezumi-backend/internal/shared/config"
	"prezumi-backend/internal/shared/metrics"
	"prezumi-backend/internal/shared/server/middleware"
	"prezumi-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up. Construction happens
// in bootstrap so tests can substitute pieces.
type RouterDeps struct {
	Config          config.Config
	ResumeHandler   *resumes.Handler
	LetterHandler   *coverletters.Handler
	RenderHandler   *render.Handler
	GenerateHandler *generate.Handler
	AdminHandler    *admin.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	registerTemplateRoutes(api)
	registerMeRoutes(api)
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.LetterHandler != nil {
		deps.LetterHandler.RegisterRoutes(api)
	}
	if deps.RenderHandler != nil {
		deps.RenderHandler.RegisterRoutes(api)
	}
	if deps.GenerateHandler != nil {
		deps.GenerateHandler.RegisterRoutes(api)
	}
	if deps.AdminHandler != nil {
		deps.AdminHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

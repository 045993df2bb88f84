package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prezumi-backend/internal/shared/server/respond"
	"prezumi-backend/internal/templates"
)

// registerTemplateRoutes attaches the public template listing.
func registerTemplateRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, templates.List())
	})
}

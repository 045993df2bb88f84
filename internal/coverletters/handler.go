package coverletters

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prezumi-backend/internal/shared/server/middleware"
	"prezumi-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cover-letters", h.create)
	rg.GET("/cover-letters", h.list)
	rg.GET("/cover-letters/:id", h.get)
	rg.PUT("/cover-letters/:id", h.update)
	rg.DELETE("/cover-letters/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req letterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", err.Error())
		return
	}

	letter, err := h.Svc.Create(c.Request.Context(), userID, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("documentId", letter.ID)
	respond.JSON(c, http.StatusCreated, toResponse(letter))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	letters, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, toResponses(letters))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	letter, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("documentId", letter.ID)
	respond.JSON(c, http.StatusOK, toResponse(letter))
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	var req letterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", err.Error())
		return
	}

	letter, err := h.Svc.Update(c.Request.Context(), userID, id, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("documentId", letter.ID)
	respond.JSON(c, http.StatusOK, toResponse(letter))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("documentId", id)
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input", err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "cover letter not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}

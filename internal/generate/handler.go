package generate

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"prezumi-backend/internal/shared/metrics"
	"prezumi-backend/internal/shared/server/middleware"
	"prezumi-backend/internal/shared/telemetry"
)

type Handler struct {
	Client Client
}

func NewHandler(client Client) *Handler {
	return &Handler{Client: client}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

type generateRequest struct {
	Kind    string  `json:"kind"`
	Context Context `json:"context"`
}

type generateResponse struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
	Kind    string `json:"kind"`
}

// The failure shape is a bare {"error": "..."} object rather than the error
// envelope used elsewhere; generation clients key on the message text.
type generateError struct {
	Error string `json:"error"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, generateError{Error: "Type is required"})
		return
	}
	if strings.TrimSpace(req.Kind) == "" {
		c.JSON(http.StatusBadRequest, generateError{Error: "Type is required"})
		return
	}

	metrics.IncGenerationStarted()
	start := time.Now()

	content, err := h.Client.Generate(c.Request.Context(), req.Kind, req.Context)
	metrics.ObserveGenerationDurationMs(float64(time.Since(start)) / float64(time.Millisecond))

	if err != nil {
		metrics.IncGenerationFailed()
		status, message := mapGenerationError(err)
		telemetry.Error("generation.failed", map[string]any{
			"kind":    req.Kind,
			"user_id": middleware.UserIDFromContext(c),
			"status":  status,
			"error":   err.Error(),
		})
		c.JSON(status, generateError{Error: message})
		return
	}

	metrics.IncGenerationCompleted()
	c.JSON(http.StatusOK, generateResponse{Success: true, Content: content, Kind: req.Kind})
}

func mapGenerationError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrUnknownKind):
		return http.StatusBadRequest, "Invalid generation type"
	case errors.Is(err, ErrNotConfigured):
		return http.StatusInternalServerError, "OpenAI API key not configured. Please add OPENAI_API_KEY to your environment variables."
	case errors.Is(err, ErrInvalidCredential):
		return http.StatusUnauthorized, "Invalid OpenAI API key"
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, "OpenAI rate limit reached. Please try again later."
	case errors.Is(err, ErrQuotaExhausted):
		return http.StatusPaymentRequired, "OpenAI quota exceeded. Please add credits to your account."
	default:
		return http.StatusInternalServerError, "AI generation failed"
	}
}

package render

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prezumi-backend/internal/coverletters"
	"prezumi-backend/internal/resumes"
	"prezumi-backend/internal/shared/metrics"
	"prezumi-backend/internal/shared/server/middleware"
	"prezumi-backend/internal/shared/server/respond"
	"prezumi-backend/internal/shared/telemetry"
)

// Handler serves the preview and print surfaces for both document types.
type Handler struct {
	Resumes *resumes.Service
	Letters *coverletters.Service
	PDF     PDFExporter
}

func NewHandler(resumeSvc *resumes.Service, letterSvc *coverletters.Service, pdf PDFExporter) *Handler {
	return &Handler{Resumes: resumeSvc, Letters: letterSvc, PDF: pdf}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:id/preview", h.resumePreview)
	rg.GET("/resumes/:id/print", h.resumePrint)
	rg.GET("/cover-letters/:id/print", h.letterPrint)
}

func (h *Handler) resumePreview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	res, err := h.Resumes.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondDocumentError(c, err)
		return
	}
	c.Set("documentId", res.ID)
	respond.JSON(c, http.StatusOK, BuildPreview(res))
}

func (h *Handler) resumePrint(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	res, err := h.Resumes.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondDocumentError(c, err)
		return
	}
	c.Set("documentId", res.ID)

	html, err := ResumeHTML(res)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "render failed", nil)
		return
	}
	h.deliver(c, html, "resume.pdf")
}

func (h *Handler) letterPrint(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	letter, err := h.Letters.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondDocumentError(c, err)
		return
	}
	c.Set("documentId", letter.ID)

	opts := LetterOptions{
		HiringManager: c.Query("hiringManager"),
		SenderName:    c.Query("name"),
	}
	if opts.SenderName == "" {
		opts.SenderName = middleware.UserNameFromContext(c)
	}

	html, err := LetterHTML(letter, opts)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "render failed", nil)
		return
	}
	h.deliver(c, html, "cover-letter.pdf")
}

// deliver writes the page as HTML, or as PDF when format=pdf is requested.
func (h *Handler) deliver(c *gin.Context, html, filename string) {
	if c.Query("format") != "pdf" {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, html)
		return
	}

	if h.PDF == nil {
		metrics.IncPrintExportFailed()
		respond.Error(c, http.StatusServiceUnavailable, "export_unavailable", "PDF export is not configured", nil)
		return
	}

	pdf, err := h.PDF.ExportPDF(c.Request.Context(), html)
	if err != nil {
		metrics.IncPrintExportFailed()
		telemetry.Warn("print.export_failed", map[string]any{
			"document_id": c.Param("id"),
			"error":       err.Error(),
		})
		respond.Error(c, http.StatusBadGateway, "export_failed", "PDF export failed", nil)
		return
	}

	metrics.IncPrintExport()
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func respondDocumentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resumes.ErrInvalidInput), errors.Is(err, coverletters.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input", err.Error())
	case errors.Is(err, resumes.ErrNotFound), errors.Is(err, coverletters.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}

package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"prezumi-backend/internal/coverletters"
	"prezumi-backend/internal/resumes"
	"prezumi-backend/internal/shared/server/middleware"
	"prezumi-backend/internal/shared/server/respond"
)

// adminListLimit bounds both the per-type document lists and the window the
// stats aggregation reads per type.
const adminListLimit = 50

type Handler struct {
	Resumes resumes.Repo
	Letters coverletters.Repo
	Auth    Authorizer
}

func NewHandler(resumeRepo resumes.Repo, letterRepo coverletters.Repo, auth Authorizer) *Handler {
	return &Handler{Resumes: resumeRepo, Letters: letterRepo, Auth: auth}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	grp := rg.Group("/admin", h.requireAdmin)
	grp.GET("/stats", h.stats)
	grp.GET("/resumes", h.listResumes)
	grp.GET("/cover-letters", h.listLetters)
	grp.DELETE("/resumes/:id", h.deleteResume)
	grp.DELETE("/cover-letters/:id", h.deleteLetter)
}

func (h *Handler) requireAdmin(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)
	if h.Auth == nil || !h.Auth.Allowed(email) {
		respond.Error(c, http.StatusForbidden, "forbidden", "admin access required", nil)
		return
	}
	c.Next()
}

type statsResponse struct {
	Stats   Stats                 `json:"stats"`
	PerUser map[string]UserCounts `json:"perUser"`
	Recent  []FeedItem            `json:"recent"`
}

func (h *Handler) stats(c *gin.Context) {
	ctx := c.Request.Context()

	rs, err := h.Resumes.ListRecent(ctx, adminListLimit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
		return
	}
	ls, err := h.Letters.ListRecent(ctx, adminListLimit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
		return
	}

	respond.JSON(c, http.StatusOK, statsResponse{
		Stats:   ComputeStats(rs, ls, time.Now()),
		PerUser: PerUserCounts(rs, ls),
		Recent:  RecentFeed(rs, ls),
	})
}

type adminResume struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *Handler) listResumes(c *gin.Context) {
	rs, err := h.Resumes.ListRecent(c.Request.Context(), adminListLimit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
		return
	}
	out := make([]adminResume, 0, len(rs))
	for _, r := range rs {
		out = append(out, adminResume{
			ID:        r.ID,
			UserID:    r.UserID,
			Title:     r.Title,
			Template:  r.Template,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, out)
}

type adminLetter struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	CompanyName string    `json:"companyName"`
	JobTitle    string    `json:"jobTitle"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (h *Handler) listLetters(c *gin.Context) {
	ls, err := h.Letters.ListRecent(c.Request.Context(), adminListLimit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
		return
	}
	out := make([]adminLetter, 0, len(ls))
	for _, l := range ls {
		out = append(out, adminLetter{
			ID:          l.ID,
			UserID:      l.UserID,
			Title:       l.Title,
			CompanyName: l.CompanyName,
			JobTitle:    l.JobTitle,
			CreatedAt:   l.CreatedAt,
			UpdatedAt:   l.UpdatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, out)
}

func (h *Handler) deleteResume(c *gin.Context) {
	err := h.Resumes.DeleteAny(c.Request.Context(), c.Param("id"))
	h.respondDelete(c, err)
}

func (h *Handler) deleteLetter(c *gin.Context) {
	err := h.Letters.DeleteAny(c.Request.Context(), c.Param("id"))
	h.respondDelete(c, err)
}

func (h *Handler) respondDelete(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, resumes.ErrNotFound), errors.Is(err, coverletters.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}

package admin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"prezumi-backend/internal/admin"
	"prezumi-backend/internal/coverletters"
	"prezumi-backend/internal/resumes"
)

func newAdminRouter(t *testing.T, email string) (*gin.Engine, resumes.Repo, coverletters.Repo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resumeRepo := resumes.NewMemoryRepo()
	letterRepo := coverletters.NewMemoryRepo()
	handler := admin.NewHandler(resumeRepo, letterRepo, admin.NewEmailAllowList([]string{"admin@example.com"}))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "u1")
		if email != "" {
			c.Set("userEmail", email)
		}
	})
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r, resumeRepo, letterRepo
}

func seedDocuments(t *testing.T, resumeRepo resumes.Repo, letterRepo coverletters.Repo) {
	t.Helper()
	ctx := context.Background()

	resumeSvc := &resumes.Service{Repo: resumeRepo}
	letterSvc := coverletters.NewService(letterRepo)

	for _, user := range []string{"alice", "alice", "bob"} {
		if _, err := resumeSvc.Create(ctx, user, resumes.Input{
			PersonalInfo: resumes.PersonalInfo{FirstName: user},
		}); err != nil {
			t.Fatalf("seed resume: %v", err)
		}
	}
	for _, user := range []string{"carol", "dave"} {
		if _, err := letterSvc.Create(ctx, user, coverletters.Input{CompanyName: "Acme"}); err != nil {
			t.Fatalf("seed letter: %v", err)
		}
	}
}

func TestAdminStatsRequiresAllowListedEmail(t *testing.T) {
	router, _, _ := newAdminRouter(t, "user@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.Code)
	}
}

func TestAdminStatsAggregates(t *testing.T) {
	router, resumeRepo, letterRepo := newAdminRouter(t, "admin@example.com")
	seedDocuments(t, resumeRepo, letterRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Stats struct {
			TotalUsers        int `json:"totalUsers"`
			TotalResumes      int `json:"totalResumes"`
			TotalCoverLetters int `json:"totalCoverLetters"`
			TodayActivity     int `json:"todayActivity"`
		} `json:"stats"`
		PerUser map[string]struct {
			Resumes      int `json:"resumes"`
			CoverLetters int `json:"coverLetters"`
		} `json:"perUser"`
		Recent []struct {
			Type string `json:"type"`
		} `json:"recent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if out.Stats.TotalUsers != 4 {
		t.Fatalf("expected 4 distinct users, got %d", out.Stats.TotalUsers)
	}
	if out.Stats.TotalResumes != 3 || out.Stats.TotalCoverLetters != 2 {
		t.Fatalf("unexpected totals: %+v", out.Stats)
	}
	if out.Stats.TodayActivity != 5 {
		t.Fatalf("expected all 5 seeded today, got %d", out.Stats.TodayActivity)
	}
	if len(out.Recent) != 5 {
		t.Fatalf("expected 5 feed entries, got %d", len(out.Recent))
	}
	if got := out.PerUser["alice"].Resumes; got != 2 {
		t.Fatalf("expected alice to own 2 resumes, got %d", got)
	}
}

func TestAdminDeleteAnyDocument(t *testing.T) {
	router, resumeRepo, _ := newAdminRouter(t, "admin@example.com")

	resumeSvc := &resumes.Service{Repo: resumeRepo}
	created, err := resumeSvc.Create(context.Background(), "alice", resumes.Input{})
	if err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/resumes/"+created.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	// Idempotence is not promised: a second delete is 404.
	respAgain := httptest.NewRecorder()
	router.ServeHTTP(respAgain, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/resumes/"+created.ID, nil))
	if respAgain.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", respAgain.Code)
	}
}

func TestAdminListResumes(t *testing.T) {
	router, resumeRepo, letterRepo := newAdminRouter(t, "admin@example.com")
	seedDocuments(t, resumeRepo, letterRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/resumes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var list []struct {
		ID     string `json:"id"`
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 resumes, got %d", len(list))
	}
	if list[0].UserID == "" {
		t.Fatalf("expected owner ids in admin listing")
	}
}

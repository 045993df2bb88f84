package render_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"prezumi-backend/internal/coverletters"
	"prezumi-backend/internal/render"
	"prezumi-backend/internal/resumes"
)

type stubExporter struct {
	pdf []byte
	err error
}

func (s *stubExporter) ExportPDF(ctx context.Context, html string) ([]byte, error) {
	return s.pdf, s.err
}

func newRenderRouter(t *testing.T, pdf render.PDFExporter) (*gin.Engine, *resumes.Service, *coverletters.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resumeSvc := &resumes.Service{Repo: resumes.NewMemoryRepo()}
	letterSvc := coverletters.NewService(coverletters.NewMemoryRepo())
	handler := render.NewHandler(resumeSvc, letterSvc, pdf)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "u1")
		c.Set("userName", "Jane Doe")
	})
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r, resumeSvc, letterSvc
}

func TestResumePreviewEndpoint(t *testing.T) {
	router, resumeSvc, _ := newRenderRouter(t, nil)

	created, err := resumeSvc.Create(context.Background(), "u1", resumes.Input{
		PersonalInfo: resumes.PersonalInfo{FirstName: "Jane", LastName: "Doe"},
		Summary:      "Engineer.",
	})
	if err != nil {
		t.Fatalf("create resume: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ID+"/preview", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var preview struct {
		Name     string `json:"name"`
		Sections []struct {
			ID string `json:"id"`
		} `json:"sections"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&preview); err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if preview.Name != "Jane Doe" {
		t.Fatalf("expected name Jane Doe, got %q", preview.Name)
	}
	if len(preview.Sections) != 1 || preview.Sections[0].ID != "summary" {
		t.Fatalf("unexpected sections: %+v", preview.Sections)
	}
}

func TestResumePrintHTML(t *testing.T) {
	router, resumeSvc, _ := newRenderRouter(t, nil)

	created, err := resumeSvc.Create(context.Background(), "u1", resumes.Input{
		PersonalInfo: resumes.PersonalInfo{FirstName: "Jane", LastName: "Doe"},
	})
	if err != nil {
		t.Fatalf("create resume: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ID+"/print", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected text/html, got %q", ct)
	}
	if !strings.Contains(resp.Body.String(), "Jane Doe") {
		t.Fatalf("expected rendered name in body")
	}
}

func TestResumePrintPDF(t *testing.T) {
	router, resumeSvc, _ := newRenderRouter(t, &stubExporter{pdf: []byte("%PDF-1.4 fake")})

	created, err := resumeSvc.Create(context.Background(), "u1", resumes.Input{
		PersonalInfo: resumes.PersonalInfo{FirstName: "Jane"},
	})
	if err != nil {
		t.Fatalf("create resume: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ID+"/print?format=pdf", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); !strings.Contains(cd, "resume.pdf") {
		t.Fatalf("expected attachment filename, got %q", cd)
	}
}

func TestResumePrintPDFExportFailure(t *testing.T) {
	router, resumeSvc, _ := newRenderRouter(t, &stubExporter{err: errors.New("chrome crashed")})

	created, err := resumeSvc.Create(context.Background(), "u1", resumes.Input{})
	if err != nil {
		t.Fatalf("create resume: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ID+"/print?format=pdf", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "export_failed" {
		t.Fatalf("expected export_failed, got %q", body.Error.Code)
	}
}

func TestLetterPrintUsesQueryParams(t *testing.T) {
	router, _, letterSvc := newRenderRouter(t, nil)

	created, err := letterSvc.Create(context.Background(), "u1", coverletters.Input{
		CompanyName: "Acme",
		JobTitle:    "Engineer",
		Content:     "Paragraph one.\n\nParagraph two.",
	})
	if err != nil {
		t.Fatalf("create letter: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/cover-letters/"+created.ID+"/print?hiringManager=Jordan+Smith&name=Jane+Doe", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "Dear Jordan Smith,") {
		t.Fatalf("expected greeting with hiring manager")
	}
	if !strings.Contains(body, "Jane Doe") {
		t.Fatalf("expected sender name in signature")
	}
}

func TestLetterPrintFallsBackToSessionName(t *testing.T) {
	router, _, letterSvc := newRenderRouter(t, nil)

	created, err := letterSvc.Create(context.Background(), "u1", coverletters.Input{
		CompanyName: "Acme",
		Content:     "Body.",
	})
	if err != nil {
		t.Fatalf("create letter: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cover-letters/"+created.ID+"/print", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Jane Doe") {
		t.Fatalf("expected session display name as signature fallback")
	}
}

func TestPrintUnknownDocumentIs404(t *testing.T) {
	router, _, _ := newRenderRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/missing/print", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

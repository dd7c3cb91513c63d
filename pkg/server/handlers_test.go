package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hmandava/career-compass/pkg/logger"
	"github.com/hmandava/career-compass/pkg/plan"
	"github.com/hmandava/career-compass/pkg/renderer"
	"github.com/pkg/errors"
)

// stubGenerator substitutes the Claude client in handler tests.
type stubGenerator struct {
	plan    plan.LearningPlan
	err     error
	calls   int
	lastReq plan.Request
}

func (s *stubGenerator) GeneratePlan(ctx context.Context, req plan.Request) (plan.LearningPlan, error) {
	s.calls++
	s.lastReq = req
	return s.plan, s.err
}

func testPlan() (p plan.LearningPlan) {
	p = plan.LearningPlan{
		WeeklyPlan: []plan.WeekEntry{
			{
				Week:      "Week 1",
				Topic:     "Python Fundamentals",
				Details:   []string{"Install Python"},
				Resources: []string{"python.org tutorial"},
			},
		},
	}
	return p
}

func newTestRouter(t *testing.T, gen PlanGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("Failed to build logger: %v", err)
	}

	return NewRouter(RouterConfig{
		PlanHandler: NewPlanHandler(gen, log),
		Logger:      log,
	})
}

func TestGenerateMissingFields(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing goal",
			body:      `{"skillLevel": "Beginner", "skills": "Python", "hours": "10"}`,
			wantField: "goal",
		},
		{
			name:      "missing skillLevel",
			body:      `{"goal": "Data Scientist", "skills": "Python", "hours": "10"}`,
			wantField: "skillLevel",
		},
		{
			name:      "missing skills",
			body:      `{"goal": "Data Scientist", "skillLevel": "Beginner", "hours": "10"}`,
			wantField: "skills",
		},
		{
			name:      "missing hours",
			body:      `{"goal": "Data Scientist", "skillLevel": "Beginner", "skills": "Python"}`,
			wantField: "hours",
		},
		{
			name:      "empty goal",
			body:      `{"goal": "", "skillLevel": "Beginner", "skills": "Python", "hours": "10"}`,
			wantField: "goal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{plan: testPlan()}
			router := newTestRouter(t, gen)

			req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rec.Code)
			}

			if !strings.Contains(rec.Body.String(), tt.wantField) {
				t.Errorf("Error body should name field '%s': %s", tt.wantField, rec.Body.String())
			}

			if gen.calls != 0 {
				t.Error("Generator must not be called for invalid input")
			}
		})
	}
}

func TestGenerateEmptyBody(t *testing.T) {
	gen := &stubGenerator{plan: testPlan()}
	router := newTestRouter(t, gen)

	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty body, got %d", rec.Code)
	}
}

func TestGenerateSuccess(t *testing.T) {
	gen := &stubGenerator{plan: testPlan()}
	router := newTestRouter(t, gen)

	body := `{"goal": "Data Scientist", "skillLevel": "Beginner", "skills": "Python, SQL", "hours": "10"}`
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if gen.calls != 1 {
		t.Errorf("Expected exactly one generator call, got %d", gen.calls)
	}

	want := plan.Request{Goal: "Data Scientist", SkillLevel: "Beginner", Skills: "Python, SQL", Hours: "10"}
	if gen.lastReq != want {
		t.Errorf("Generator received %+v, want %+v", gen.lastReq, want)
	}

	var p plan.LearningPlan
	err := json.Unmarshal(rec.Body.Bytes(), &p)
	if err != nil {
		t.Fatalf("Response is not a plan: %v", err)
	}

	if len(p.WeeklyPlan) != 1 || p.WeeklyPlan[0].Topic != "Python Fundamentals" {
		t.Errorf("Unexpected plan in response: %+v", p)
	}
}

func TestGenerateHoursAsNumber(t *testing.T) {
	gen := &stubGenerator{plan: testPlan()}
	router := newTestRouter(t, gen)

	body := `{"goal": "Data Scientist", "skillLevel": "Beginner", "skills": "Python", "hours": 10}`
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for numeric hours, got %d", rec.Code)
	}

	if gen.lastReq.Hours != "10" {
		t.Errorf("Expected hours normalized to '10', got '%s'", gen.lastReq.Hours)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream timeout")}
	router := newTestRouter(t, gen)

	body := `{"goal": "Data Scientist", "skillLevel": "Beginner", "skills": "Python", "hours": "10"}`
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}

	// Generic message only - no upstream detail, no partial plan.
	if strings.Contains(rec.Body.String(), "timeout") {
		t.Error("Upstream error detail must not leak to the client")
	}

	if strings.Contains(rec.Body.String(), "weekly_plan") {
		t.Error("No partial plan may be returned on failure")
	}
}

func TestDownloadPDF(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	body, _ := json.Marshal(testPlan())
	req := httptest.NewRequest(http.MethodPost, "/download_pdf", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if got := rec.Header().Get("Content-Type"); got != renderer.ContentType {
		t.Errorf("Expected content type '%s', got '%s'", renderer.ContentType, got)
	}

	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") || !strings.Contains(disposition, renderer.AttachmentFilename) {
		t.Errorf("Unexpected Content-Disposition: %s", disposition)
	}

	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("Response body is not a PDF")
	}
}

func TestDownloadPDFEmptyBody(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/download_pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty body, got %d", rec.Code)
	}
}

func TestDownloadPDFMalformedEntry(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	// resources key absent on the entry - must fail, not render.
	body := `{"weekly_plan": [{"week": "Week 1", "topic": "Python", "details": ["x"]}]}`
	req := httptest.NewRequest(http.MethodPost, "/download_pdf", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 for malformed entry, got %d", rec.Code)
	}
}

func TestGenerateDownloadRoundTrip(t *testing.T) {
	gen := &stubGenerator{plan: testPlan()}
	router := newTestRouter(t, gen)

	body := `{"goal": "Data Scientist", "skillLevel": "Beginner", "skills": "Python, SQL", "hours": "10"}`
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Generate failed: %d", rec.Code)
	}

	// Feed the generate response unmodified into the download endpoint.
	req = httptest.NewRequest(http.MethodPost, "/download_pdf", bytes.NewReader(rec.Body.Bytes()))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Download failed: %d: %s", rec.Code, rec.Body.String())
	}

	if rec.Body.Len() == 0 {
		t.Error("Expected non-empty PDF stream")
	}

	if got := rec.Header().Get("Content-Type"); got != renderer.ContentType {
		t.Errorf("Expected content type '%s', got '%s'", renderer.ContentType, got)
	}
}

func TestHealthcheck(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}

	if rec.Body.String() != "ok" {
		t.Errorf("Expected body 'ok', got '%s'", rec.Body.String())
	}
}

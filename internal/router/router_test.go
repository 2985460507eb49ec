package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
	"github.com/folio/internal/handler"
	"github.com/gin-gonic/gin"
)

type testServer struct {
	engine    *gin.Engine
	uploadDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano()))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if _, err := db.EnsureUser(gdb, "admin", "secret123"); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	store, err := content.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	uploadDir := t.TempDir()
	api := handler.NewAPI(gdb, store, nil, handler.Options{UploadDir: uploadDir, UploadURL: "/uploads"})
	r, err := SetupRouter(api, nil, Options{SessionSecret: "test-secret", UploadDir: uploadDir, UploadURLPath: "/uploads"})
	if err != nil {
		t.Fatalf("failed to set up router: %v", err)
	}
	return &testServer{engine: r, uploadDir: uploadDir}
}

func (s *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	w := s.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "password": "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	return body["token"]
}

func TestProjectScenario(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	if w := s.request(t, http.MethodGet, "/api/projects", "", nil); w.Body.String() != "[]" {
		t.Fatalf("expected empty project list, got %q", w.Body.String())
	}

	w := s.request(t, http.MethodPost, "/api/projects", token, map[string]string{"title": "A", "description": "d"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var created content.Project
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode project: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}

	var projects []content.Project
	w = s.request(t, http.MethodGet, "/api/projects", "", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &projects); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != created.ID {
		t.Fatalf("expected one project, got %+v", projects)
	}

	w = s.request(t, http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w := s.request(t, http.MethodGet, "/api/projects", "", nil); w.Body.String() != "[]" {
		t.Fatalf("expected empty list after delete, got %q", w.Body.String())
	}
}

func TestWriteRoutesRequireAuth(t *testing.T) {
	s := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/personal-info"},
		{http.MethodPost, "/api/projects"},
		{http.MethodPut, "/api/projects/1"},
		{http.MethodDelete, "/api/projects/1"},
		{http.MethodPut, "/api/tech-stack"},
		{http.MethodPost, "/api/links"},
		{http.MethodPut, "/api/links/1"},
		{http.MethodPatch, "/api/links/1/toggle"},
		{http.MethodDelete, "/api/links/1"},
		{http.MethodPost, "/api/upload"},
		{http.MethodPost, "/api/auth/change-password"},
	}
	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := s.request(t, route.method, route.path, "", map[string]string{})
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", w.Code)
			}
		})
	}
}

func TestPublicPagesRender(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	info := map[string]interface{}{
		"name":        "Ada Lovelace",
		"title":       "Engineer",
		"email":       "ada@example.com",
		"socialLinks": map[string]string{"github": "https://github.com/ada"},
		"navigation":  []map[string]string{{"name": "Projects", "href": "/projects"}},
	}
	if w := s.request(t, http.MethodPut, "/api/personal-info", token, info); w.Code != http.StatusOK {
		t.Fatalf("failed to save personal info: %d %s", w.Code, w.Body.String())
	}
	w := s.request(t, http.MethodPost, "/api/projects", token, map[string]interface{}{
		"title": "Folio", "description": "Portfolio site", "tags": []string{"go", "gin", "gorm", "sqlite"},
		"overview": "# Overview\n\nBuilt with **Go**.",
	})
	var created content.Project
	json.Unmarshal(w.Body.Bytes(), &created)

	home := s.request(t, http.MethodGet, "/", "", nil)
	if home.Code != http.StatusOK {
		t.Fatalf("expected home status 200, got %d: %s", home.Code, home.Body.String())
	}
	for _, want := range []string{"Ada Lovelace", "Folio", "+1 more", "data-contact-form", "https://github.com/ada"} {
		if !strings.Contains(home.Body.String(), want) {
			t.Fatalf("expected home page to contain %q", want)
		}
	}

	if w := s.request(t, http.MethodGet, "/projects", "", nil); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Folio") {
		t.Fatalf("expected projects page to list project, got %d", w.Code)
	}

	detail := s.request(t, http.MethodGet, fmt.Sprintf("/projects/%d", created.ID), "", nil)
	if detail.Code != http.StatusOK || !strings.Contains(detail.Body.String(), "<strong>Go</strong>") {
		t.Fatalf("expected rendered markdown overview, got %d", detail.Code)
	}

	if w := s.request(t, http.MethodGet, "/projects/404", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if w := s.request(t, http.MethodGet, "/missing/page", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown route, got %d", w.Code)
	}
}

func TestServesUploadsAndStatic(t *testing.T) {
	s := newTestServer(t)

	if err := os.WriteFile(filepath.Join(s.uploadDir, "example.txt"), []byte("hello uploads"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	w := s.request(t, http.MethodGet, "/uploads/example.txt", "", nil)
	if w.Code != http.StatusOK || w.Body.String() != "hello uploads" {
		t.Fatalf("unexpected upload response %d %q", w.Code, w.Body.String())
	}

	if w := s.request(t, http.MethodGet, "/static/site.css", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected stylesheet, got %d", w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)
	w := s.request(t, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Status    string            `json:"status"`
		Documents map[string]string `json:"documents"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if body.Status != "ok" || len(body.Documents) != len(content.Kinds) {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
	if body.Documents[string(content.KindProjects)] != "missing" {
		t.Fatalf("expected projects document to be missing on a fresh store, got %q", body.Documents[string(content.KindProjects)])
	}
}

func TestAdminDashboardRedirects(t *testing.T) {
	s := newTestServer(t)
	w := s.request(t, http.MethodGet, "/admin/dashboard", "", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}

	w = s.request(t, http.MethodGet, "/admin/login", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Admin Login") {
		t.Fatalf("expected login page, got %d", w.Code)
	}
}

func TestAdminDashboardEditsThroughSession(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{"username": {"admin"}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect after login, got %d", w.Code)
	}
	cookies := w.Result().Cookies()

	withSession := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			if err := json.NewEncoder(&buf).Encode(body); err != nil {
				t.Fatalf("failed to encode body: %v", err)
			}
		}
		req := httptest.NewRequest(method, path, &buf)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)
		return w
	}

	w = withSession(http.MethodGet, "/admin/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected dashboard, got %d: %s", w.Code, w.Body.String())
	}
	page := w.Body.String()
	for _, marker := range []string{
		`id="personal-info-form"`, `id="project-form"`, `data-tech-stack`, `id="link-form"`,
		`id="password-form"`, `<option value="On Hold">`, `name="tech-frontend"`, `/static/admin.js`,
	} {
		if !strings.Contains(page, marker) {
			t.Fatalf("dashboard is missing %s", marker)
		}
	}

	if w := s.request(t, http.MethodGet, "/static/admin.js", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected admin script, got %d", w.Code)
	}

	info := map[string]interface{}{
		"name": "Ada", "title": "Engineer", "email": "ada@example.com",
		"navigation": []map[string]string{{"name": "Home", "href": "/"}},
		"footer":     map[string]interface{}{"copyright": "© Ada", "links": []interface{}{}},
	}
	if w := withSession(http.MethodPut, "/api/personal-info", info); w.Code != http.StatusOK {
		t.Fatalf("expected session write to succeed, got %d: %s", w.Code, w.Body.String())
	}
	w = withSession(http.MethodPost, "/api/projects", map[string]interface{}{
		"title": "Folio", "description": "Site", "tags": []string{"go"},
		"technologies": map[string][]string{"backend": {"Go"}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected project create through session, got %d: %s", w.Code, w.Body.String())
	}

	w = withSession(http.MethodGet, "/admin/dashboard", nil)
	if !strings.Contains(w.Body.String(), "Home | /") || !strings.Contains(w.Body.String(), "data-project-edit=") {
		t.Fatalf("expected dashboard to reflect saved content: %s", w.Body.String())
	}
}

package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

type stubHTMLRender struct {
	name string
	data interface{}
}

type stubHTMLInstance struct{}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	r.name = name
	r.data = data
	return stubHTMLInstance{}
}

func (stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

type testEnv struct {
	api      *API
	store    *content.Store
	engine   *gin.Engine
	renderer *stubHTMLRender
	token    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano()))
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

	api := NewAPI(gdb, store, nil, Options{UploadDir: t.TempDir(), UploadURL: "/uploads"})
	token, _, err := api.auth.Login("admin", "secret123")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	renderer := &stubHTMLRender{}
	engine := gin.New()
	engine.HTMLRender = renderer
	engine.Use(sessions.Sessions("folio_session", cookie.NewStore([]byte("test-secret"))))

	return &testEnv{api: api, store: store, engine: engine, renderer: renderer, token: token}
}

func (e *testEnv) do(method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

package core

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type mockReloader struct {
	broadcasts int
}

func (m *mockReloader) BroadcastReload() { m.broadcasts++ }
func (m *mockReloader) Close()           {}
func (m *mockReloader) Handler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("reload ok"))
}

func serve(t *testing.T, h http.Handler, method, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Result()
}

func TestRouterServesGreeting(t *testing.T) {
	router := NewRouter(DefaultConfig(), RuntimeContext{Env: "prod"})

	resp := serve(t, router, http.MethodGet, "/")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "Wild Rydes App is running!" {
		t.Errorf("unexpected body: %q", body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("unexpected content-type: %s", ct)
	}
	if resp.Header.Get("X-Wildrydes-Route") != "" {
		t.Error("did not expect debug header when debugHeaders is off")
	}
}

func TestRouterHeadHasNoBody(t *testing.T) {
	router := NewRouter(DefaultConfig(), RuntimeContext{})

	resp := serve(t, router, http.MethodHead, "/")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if len(body) != 0 {
		t.Errorf("expected empty body for HEAD, got %q", body)
	}
}

func TestRouterNotFound(t *testing.T) {
	router := NewRouter(DefaultConfig(), RuntimeContext{Env: "prod"})

	paths := []string{"/nonexistent", "/index.html", "/a/b/c", ReloadPath}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			resp := serve(t, router, http.MethodGet, path)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusNotFound {
				t.Errorf("expected 404 for %s, got %d", path, resp.StatusCode)
			}
		})
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := NewRouter(DefaultConfig(), RuntimeContext{})

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			resp := serve(t, router, method, "/")
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusMethodNotAllowed {
				t.Errorf("expected 405, got %d", resp.StatusCode)
			}
			if allow := resp.Header.Get("Allow"); !strings.Contains(allow, http.MethodGet) {
				t.Errorf("expected Allow to list GET, got %q", allow)
			}
		})
	}
}

func TestRouterDebugHeaders(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DebugHeaders = true
	router := NewRouter(cfg, RuntimeContext{})

	resp := serve(t, router, http.MethodGet, "/")
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Wildrydes-Route"); got != "index" {
		t.Errorf("expected X-Wildrydes-Route 'index', got %q", got)
	}
}

func TestRouterSetConfigTogglesDebugHeaders(t *testing.T) {
	router := NewRouter(DefaultConfig(), RuntimeContext{})

	cfg := DefaultConfig()
	cfg.DebugHeaders = true
	router.SetConfig(cfg)

	if !router.Config().DebugHeaders {
		t.Fatal("expected updated config")
	}

	resp := serve(t, router, http.MethodGet, "/")
	defer resp.Body.Close()
	if resp.Header.Get("X-Wildrydes-Route") != "index" {
		t.Error("expected debug header after SetConfig")
	}
}

func TestRouterDevMountsReload(t *testing.T) {
	router := NewRouter(DefaultConfig(), RuntimeContext{Env: "dev", Reloader: &mockReloader{}})

	resp := serve(t, router, http.MethodGet, ReloadPath)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from reload route, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "reload ok" {
		t.Errorf("unexpected body: %q", body)
	}

	if len(router.Routes()) != 2 {
		t.Errorf("expected 2 routes in dev, got %d", len(router.Routes()))
	}
}

func TestRouterRoutesIsCopy(t *testing.T) {
	router := NewRouter(DefaultConfig(), RuntimeContext{})

	routes := router.Routes()
	if len(routes) != 1 || routes[0].Method != http.MethodGet || routes[0].Path != "/" {
		t.Fatalf("unexpected routes: %d entries", len(routes))
	}

	routes[0].Path = "/changed"
	if router.Routes()[0].Path != "/" {
		t.Error("expected Routes to return a copy")
	}
}

func TestPattern(t *testing.T) {
	tests := map[string]Route{
		"GET /{$}":          {Method: http.MethodGet, Path: "/"},
		"GET " + ReloadPath: {Method: http.MethodGet, Path: ReloadPath},
		"/docs/{$}":         {Path: "/docs/"},
		"POST /rides":       {Method: http.MethodPost, Path: "/rides"},
	}

	for expected, route := range tests {
		if got := pattern(route); got != expected {
			t.Errorf("pattern(%s %s) = %q, want %q", route.Method, route.Path, got, expected)
		}
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// corsRequest sends a request with the given origin through a router that
// carries only the CORS middleware and returns the recorded response.
func corsRequest(t *testing.T, mw gin.HandlerFunc, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.Use(mw)
	r.GET("/resource", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(method, "/resource", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_DefaultConfig(t *testing.T) {
	w := corsRequest(t, CORS(), http.MethodGet, "http://example.com")

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d; want 200", w.Code)
	}
	for header, want := range map[string]string{
		"Access-Control-Allow-Origin": "*",
		"Access-Control-Max-Age":      "86400",
		"Vary":                        "Origin",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s=%q; want %q", header, got, want)
		}
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Allow-Methods missing")
	}
	if w.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Error("Allow-Headers missing")
	}
}

func TestCORS_Preflight(t *testing.T) {
	w := corsRequest(t, CORS(), http.MethodOptions, "http://example.com")

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status=%d; want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin=%q; want *", got)
	}
}

func TestCORS_SameOriginRequestUntouched(t *testing.T) {
	w := corsRequest(t, CORS(), http.MethodGet, "")

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d; want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin=%q on request without Origin; want unset", got)
	}
}

func TestCORSWithConfig_Allowlist(t *testing.T) {
	cfg := CORSConfig{
		AllowOrigins: []string{"http://app.example.com", "http://localhost:3000"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       "3600",
	}

	tests := []struct {
		name            string
		origin          string
		wantAllowOrigin string
	}{
		{"listed origin is echoed", "http://app.example.com", "http://app.example.com"},
		{"unlisted origin gets no grant", "http://evil.example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := corsRequest(t, CORSWithConfig(cfg), http.MethodGet, tt.origin)

			if w.Code != http.StatusOK {
				t.Fatalf("status=%d; want 200", w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowOrigin {
				t.Errorf("Allow-Origin=%q; want %q", got, tt.wantAllowOrigin)
			}
			// Vary is set whenever an Origin header was processed, denied or not.
			if got := w.Header().Get("Vary"); got != "Origin" {
				t.Errorf("Vary=%q; want Origin", got)
			}
		})
	}

	t.Run("max-age comes from config", func(t *testing.T) {
		w := corsRequest(t, CORSWithConfig(cfg), http.MethodGet, "http://localhost:3000")
		if got := w.Header().Get("Access-Control-Max-Age"); got != "3600" {
			t.Errorf("Max-Age=%q; want 3600", got)
		}
	})
}

func TestCORSWithConfig_EmptyAllowlistDeniesAll(t *testing.T) {
	cfg := CORSConfig{
		AllowOrigins: []string{},
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       "3600",
	}
	w := corsRequest(t, CORSWithConfig(cfg), http.MethodGet, "http://example.com")

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d; want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin=%q with empty allowlist; want unset", got)
	}
	if got := w.Header().Get("Vary"); got != "Origin" {
		t.Errorf("Vary=%q; want Origin", got)
	}
}

func TestCORSWithConfig_CredentialsEchoOrigin(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowCredentials = true

	w := corsRequest(t, CORSWithConfig(cfg), http.MethodGet, "http://example.com")

	// With credentials enabled the wildcard must not appear; the concrete
	// origin is echoed instead.
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Errorf("Allow-Origin=%q; want echoed http://example.com", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials=%q; want true", got)
	}
}

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"wildcard matches anything", []string{"*"}, "http://any.example.com", true},
		{"exact match", []string{"http://a.example.com"}, "http://a.example.com", true},
		{"no match", []string{"http://a.example.com"}, "http://b.example.com", false},
		{"match among several", []string{"http://a.example.com", "http://b.example.com"}, "http://b.example.com", true},
		{"empty list", nil, "http://a.example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := originAllowed(tt.allowed, tt.origin); got != tt.want {
				t.Errorf("originAllowed(%v, %q) = %v; want %v", tt.allowed, tt.origin, got, tt.want)
			}
		})
	}
}

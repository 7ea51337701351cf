package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openTestSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

// pingModule registers a single route; enough to observe the module wiring.
type pingModule struct{}

func (pingModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

func TestHealthHandler_OK(t *testing.T) {
	r := gin.New()
	r.GET("/health", healthHandler(openTestSQLiteDB(t)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
	comps, ok := body["components"].(map[string]any)
	if !ok {
		t.Fatal("missing components")
	}
	if comps["database"] != "ok" {
		t.Errorf("expected database ok, got %v", comps["database"])
	}
}

func TestHealthHandler_DBDown(t *testing.T) {
	r := gin.New()

	db := openTestSQLiteDB(t)
	// Close the underlying sql.DB so Ping fails.
	sqlDB, _ := db.DB()
	sqlDB.Close()

	r.GET("/health", healthHandler(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "degraded" {
		t.Errorf("expected status degraded, got %v", body["status"])
	}
}

func TestHealthHandler_NilDB(t *testing.T) {
	r := gin.New()
	r.GET("/health", healthHandler(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestRegisterRoutes(t *testing.T) {
	t.Run("wires modules under /api/v1", func(t *testing.T) {
		r := gin.New()
		deps := &RouteDeps{
			Modules: []Module{pingModule{}},
			DB:      openTestSQLiteDB(t),
		}
		if err := RegisterRoutes(r, deps); err != nil {
			t.Fatalf("RegisterRoutes: %v", err)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "pong" {
			t.Errorf("got %d %q; want 200 pong", w.Code, w.Body.String())
		}
	})

	t.Run("unmatched path returns JSON 404", func(t *testing.T) {
		r := gin.New()
		deps := &RouteDeps{
			Modules: []Module{pingModule{}},
			DB:      openTestSQLiteDB(t),
		}
		if err := RegisterRoutes(r, deps); err != nil {
			t.Fatalf("RegisterRoutes: %v", err)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("expected JSON body, got %q: %v", w.Body.String(), err)
		}
	})

	t.Run("nil router", func(t *testing.T) {
		if err := RegisterRoutes(nil, &RouteDeps{Modules: []Module{pingModule{}}}); err == nil {
			t.Error("expected error for nil router")
		}
	})

	t.Run("nil deps", func(t *testing.T) {
		if err := RegisterRoutes(gin.New(), nil); err == nil {
			t.Error("expected error for nil deps")
		}
	})

	t.Run("no modules", func(t *testing.T) {
		if err := RegisterRoutes(gin.New(), &RouteDeps{}); err == nil {
			t.Error("expected error for empty module list")
		}
	})

	t.Run("nil module", func(t *testing.T) {
		deps := &RouteDeps{Modules: []Module{nil}}
		if err := RegisterRoutes(gin.New(), deps); err == nil {
			t.Error("expected error for nil module")
		}
	})
}

package auth

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAuthModuleRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")

	NewModule(&AuthHandler{}).RegisterRoutes(api)

	expected := []string{
		"/api/v1/auth/login",
		"/api/v1/auth/register",
		"/api/v1/auth/confirm",
		"/api/v1/auth/resend-confirmation",
	}

	registered := make(map[string]bool)
	for _, ri := range r.Routes() {
		registered[ri.Method+":"+ri.Path] = true
	}

	for _, path := range expected {
		if !registered[http.MethodPost+":"+path] {
			t.Errorf("expected route POST %s to be registered", path)
		}
	}
}

func TestNewModule_PanicsOnNilHandler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewModule() expected panic for nil handler, got none")
		}
	}()

	_ = NewModule(nil)
}

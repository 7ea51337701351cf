package blog

import "github.com/gin-gonic/gin"

// BlogModule implements the app.Module interface for the blog domain.
type BlogModule struct {
	handler *BlogHandler
}

// NewModule creates a BlogModule with the given handler. Panics if h is nil.
func NewModule(h *BlogHandler) *BlogModule {
	if h == nil {
		panic("blog.NewModule: handler must not be nil")
	}
	return &BlogModule{handler: h}
}

// RegisterRoutes registers blog API routes.
func (m *BlogModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/blogs", m.handler.Create)
	api.GET("/blogs/:id", m.handler.Get)
	api.GET("/blogs", m.handler.List)
	api.PUT("/blogs/:id", m.handler.Update)
	api.DELETE("/blogs/:id", m.handler.Delete)
}

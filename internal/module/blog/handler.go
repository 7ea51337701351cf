package blog

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dkotelev/blogplatform/internal/domain"
	"github.com/dkotelev/blogplatform/internal/pkg"
)

// BlogHandler handles REST API requests for the blog resource.
type BlogHandler struct {
	svc  domain.BlogService
	opts pkg.ListOptions
}

// NewBlogHandler creates a BlogHandler with the given service and page size cap.
func NewBlogHandler(svc domain.BlogService, maxPageSize int) *BlogHandler {
	return &BlogHandler{svc: svc, opts: ListOptions(maxPageSize)}
}

// Create handles POST /api/v1/blogs.
func (h *BlogHandler) Create(c *gin.Context) {
	var req CreateBlogRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	blog, err := h.svc.CreateBlog(c.Request.Context(), req.Name, req.Description, req.WebsiteURL)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, toResponse(blog))
}

// Get handles GET /api/v1/blogs/:id.
func (h *BlogHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	blog, err := h.svc.GetBlog(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, toResponse(blog))
}

// List handles GET /api/v1/blogs.
func (h *BlogHandler) List(c *gin.Context) {
	q := pkg.ParseListQuery(c, h.opts)

	page, err := h.svc.ListBlogs(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, toResponsePage(page))
}

// Update handles PUT /api/v1/blogs/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateBlogRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	upd := domain.BlogUpdate{
		Name:        req.Name,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
	}
	if err := h.svc.UpdateBlog(c.Request.Context(), id, upd); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Delete handles DELETE /api/v1/blogs/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteBlog(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// parseID extracts the numeric :id path parameter.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

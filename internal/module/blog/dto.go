package blog

import (
	"time"

	"github.com/simp-lee/pagination"

	"github.com/dkotelev/blogplatform/internal/domain"
	"github.com/dkotelev/blogplatform/internal/pkg"
)

// CreateBlogRequest represents the input for creating a new blog.
type CreateBlogRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=100"`
	Description string `json:"description" form:"description" binding:"required,max=500"`
	WebsiteURL  string `json:"websiteUrl" form:"websiteUrl" binding:"required,url,max=255"`
}

// UpdateBlogRequest represents the input for updating an existing blog.
type UpdateBlogRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=100"`
	Description string `json:"description" form:"description" binding:"required,max=500"`
	WebsiteURL  string `json:"websiteUrl" form:"websiteUrl" binding:"required,url,max=255"`
}

// BlogResponse is the public projection of a blog row. It is an explicit
// allow-list of columns; internal columns never pass through it.
type BlogResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	WebsiteURL   string    `json:"websiteUrl"`
	IsMembership bool      `json:"isMembership"`
	CreatedAt    time.Time `json:"createdAt"`
}

// toResponse projects a blog entity onto its public shape.
func toResponse(b *domain.Blog) BlogResponse {
	return BlogResponse{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		WebsiteURL:   b.WebsiteURL,
		IsMembership: b.IsMembership,
		CreatedAt:    b.CreatedAt,
	}
}

// toResponsePage projects each item of a blog page onto its public shape,
// carrying the pagination metadata over to the wire envelope.
func toResponsePage(p *pagination.Pagination[domain.Blog]) *pkg.PageResponse[BlogResponse] {
	items := make([]BlogResponse, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, toResponse(&p.Items[i]))
	}
	return &pkg.PageResponse[BlogResponse]{
		PagesCount: p.TotalPages,
		Page:       p.CurrentPage,
		PageSize:   p.ItemsPerPage,
		TotalCount: p.TotalItems,
		Items:      items,
	}
}

package blog

import (
	"context"

	"github.com/simp-lee/pagination"
	"gorm.io/gorm"

	"github.com/dkotelev/blogplatform/internal/domain"
	"github.com/dkotelev/blogplatform/internal/pkg"
)

// Allowed fields for sorting and searching in List queries.
// Blogs search on name only.
var (
	sortFields   = []string{"name", "website_url", "created_at"}
	searchFields = map[string]string{"searchNameTerm": "name"}
)

// ListOptions returns the listing options for the blog resource.
func ListOptions(maxPageSize int) pkg.ListOptions {
	return pkg.ListOptions{
		SortFields:   sortFields,
		SearchFields: searchFields,
		MaxPageSize:  maxPageSize,
	}
}

// blogRepository implements domain.BlogRepository on top of the generic store.
type blogRepository struct {
	store *pkg.Store[domain.Blog]
}

// NewBlogRepository creates a BlogRepository backed by the given database.
func NewBlogRepository(db *gorm.DB) domain.BlogRepository {
	return &blogRepository{store: pkg.NewStore[domain.Blog](db)}
}

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	return r.store.Create(ctx, blog)
}

func (r *blogRepository) FindActiveByID(ctx context.Context, id uint) (*domain.Blog, error) {
	return r.store.FindActiveByID(ctx, id)
}

func (r *blogRepository) RequireActiveByID(ctx context.Context, id uint) (*domain.Blog, error) {
	return r.store.RequireActiveByID(ctx, id)
}

func (r *blogRepository) List(ctx context.Context, q domain.ListQuery) (*pagination.Pagination[domain.Blog], error) {
	return r.store.List(ctx, q)
}

func (r *blogRepository) Count(ctx context.Context, q domain.ListQuery) (int64, error) {
	return r.store.Count(ctx, q)
}

func (r *blogRepository) Update(ctx context.Context, id uint, upd domain.BlogUpdate) error {
	return r.store.Update(ctx, id, map[string]any{
		"name":        upd.Name,
		"description": upd.Description,
		"website_url": upd.WebsiteURL,
	})
}

func (r *blogRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.store.SoftDelete(ctx, id)
}

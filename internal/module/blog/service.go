package blog

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/simp-lee/pagination"

	"github.com/dkotelev/blogplatform/internal/domain"
)

// blogService implements domain.BlogService.
type blogService struct {
	repo domain.BlogRepository
}

// NewBlogService creates a BlogService with the given repository.
func NewBlogService(repo domain.BlogRepository) domain.BlogService {
	return &blogService{repo: repo}
}

// CreateBlog validates input, builds a Blog, and persists it via the repository.
func (s *blogService) CreateBlog(ctx context.Context, name, description, websiteURL string) (*domain.Blog, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	websiteURL = strings.TrimSpace(websiteURL)

	if err := validateBlogInput(name, description, websiteURL); err != nil {
		return nil, err
	}

	blog := &domain.Blog{
		Name:        name,
		Description: description,
		WebsiteURL:  websiteURL,
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// GetBlog retrieves an active blog by ID.
func (s *blogService) GetBlog(ctx context.Context, id uint) (*domain.Blog, error) {
	return s.repo.RequireActiveByID(ctx, id)
}

// ListBlogs returns a paginated list of active blogs.
func (s *blogService) ListBlogs(ctx context.Context, q domain.ListQuery) (*pagination.Pagination[domain.Blog], error) {
	return s.repo.List(ctx, q)
}

// UpdateBlog validates input and applies it to an active blog. The existence
// guard runs first so a missing blog produces a not-found error before any
// mutation is attempted; the update statement itself re-checks the active
// condition, so a concurrent delete still resolves to not found.
func (s *blogService) UpdateBlog(ctx context.Context, id uint, upd domain.BlogUpdate) error {
	upd.Name = strings.TrimSpace(upd.Name)
	upd.Description = strings.TrimSpace(upd.Description)
	upd.WebsiteURL = strings.TrimSpace(upd.WebsiteURL)

	if err := validateBlogInput(upd.Name, upd.Description, upd.WebsiteURL); err != nil {
		return err
	}

	if _, err := s.repo.RequireActiveByID(ctx, id); err != nil {
		return err
	}

	return s.repo.Update(ctx, id, upd)
}

// DeleteBlog soft-deletes an active blog.
func (s *blogService) DeleteBlog(ctx context.Context, id uint) error {
	if _, err := s.repo.RequireActiveByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

// validateBlogInput checks blog field constraints.
func validateBlogInput(name, description, websiteURL string) error {
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(name) > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must be at most 100 characters", nil)
	}
	if description == "" {
		return domain.NewAppError(domain.CodeValidation, "description is required", nil)
	}
	if utf8.RuneCountInString(description) > 500 {
		return domain.NewAppError(domain.CodeValidation, "description must be at most 500 characters", nil)
	}
	if websiteURL == "" {
		return domain.NewAppError(domain.CodeValidation, "websiteUrl is required", nil)
	}
	u, err := url.Parse(websiteURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewAppError(domain.CodeValidation, "websiteUrl must be a valid http(s) URL", nil)
	}
	return nil
}

package domain

import (
	"context"

	"github.com/simp-lee/pagination"
)

// Blog represents a blog in the platform.
type Blog struct {
	Model
	Name         string `gorm:"size:100;not null" json:"name"`
	Description  string `gorm:"size:500;not null" json:"description"`
	WebsiteURL   string `gorm:"column:website_url;size:255;not null" json:"websiteUrl"`
	IsMembership bool   `gorm:"not null;default:false" json:"isMembership"`
}

// BlogUpdate carries the mutable blog fields for an update operation.
type BlogUpdate struct {
	Name        string
	Description string
	WebsiteURL  string
}

// BlogRepository defines the data access interface for blogs.
//
// All read paths see active rows only; Update and SoftDelete are conditioned
// on the row still being active and report ErrNotFound otherwise.
type BlogRepository interface {
	Create(ctx context.Context, blog *Blog) error
	// FindActiveByID returns (nil, nil) when no active row has the id;
	// absence is a normal result here, not a failure.
	FindActiveByID(ctx context.Context, id uint) (*Blog, error)
	// RequireActiveByID is FindActiveByID with absence turned into ErrNotFound,
	// for callers that want a descriptive error before attempting a mutation.
	RequireActiveByID(ctx context.Context, id uint) (*Blog, error)
	List(ctx context.Context, q ListQuery) (*pagination.Pagination[Blog], error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	Update(ctx context.Context, id uint, upd BlogUpdate) error
	SoftDelete(ctx context.Context, id uint) error
}

// BlogService defines the business logic interface for blogs.
type BlogService interface {
	CreateBlog(ctx context.Context, name, description, websiteURL string) (*Blog, error)
	GetBlog(ctx context.Context, id uint) (*Blog, error)
	ListBlogs(ctx context.Context, q ListQuery) (*pagination.Pagination[Blog], error)
	UpdateBlog(ctx context.Context, id uint, upd BlogUpdate) error
	DeleteBlog(ctx context.Context, id uint) error
}

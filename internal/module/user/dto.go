package user

import (
	"time"

	"github.com/simp-lee/pagination"

	"github.com/dkotelev/blogplatform/internal/domain"
	"github.com/dkotelev/blogplatform/internal/pkg"
)

// CreateUserRequest represents the input for creating a new user.
type CreateUserRequest struct {
	Login    string `json:"login" form:"login" binding:"required,min=3,max=30"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=72"`
}

// UpdateUserRequest represents the input for updating an existing user.
type UpdateUserRequest struct {
	Login string `json:"login" form:"login" binding:"required,min=3,max=30"`
	Email string `json:"email" form:"email" binding:"required,email"`
}

// UserResponse is the public projection of a user row: id, login, email, and
// creation time. Password hash and confirmation columns never pass through it.
type UserResponse struct {
	ID        uint      `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// toResponse projects a user entity onto its public shape.
func toResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Login:     u.Login,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// toResponsePage projects each item of a user page onto its public shape,
// carrying the pagination metadata over to the wire envelope.
func toResponsePage(p *pagination.Pagination[domain.User]) *pkg.PageResponse[UserResponse] {
	items := make([]UserResponse, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, toResponse(&p.Items[i]))
	}
	return &pkg.PageResponse[UserResponse]{
		PagesCount: p.TotalPages,
		Page:       p.CurrentPage,
		PageSize:   p.ItemsPerPage,
		TotalCount: p.TotalItems,
		Items:      items,
	}
}

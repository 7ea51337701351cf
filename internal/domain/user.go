package domain

import (
	"context"
	"time"

	"github.com/simp-lee/pagination"
)

// User represents a user account.
//
// PasswordHash and the confirmation columns are internal to the
// authentication flow and are never serialized.
type User struct {
	Model
	Login                      string     `gorm:"size:30;uniqueIndex;not null" json:"login"`
	Email                      string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash               string     `gorm:"size:255;not null" json:"-"`
	IsEmailConfirmed           bool       `gorm:"not null;default:false" json:"-"`
	ConfirmationCode           *string    `gorm:"size:64;index" json:"-"`
	ConfirmationCodeExpiration *time.Time `json:"-"`
	UpdatedAt                  time.Time  `json:"-"`
}

// UserUpdate carries the mutable user fields for an update operation.
type UserUpdate struct {
	Login string
	Email string
}

// UserRepository defines the data access interface for users.
//
// The same visibility rule applies as for blogs: every lookup filters to
// active rows, and Update/SoftDelete collapse "absent" and "already deleted"
// into ErrNotFound via their conditional statements.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindActiveByID(ctx context.Context, id uint) (*User, error)
	RequireActiveByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context, q ListQuery) (*pagination.Pagination[User], error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	Update(ctx context.Context, id uint, upd UserUpdate) error
	SoftDelete(ctx context.Context, id uint) error

	// Authentication lookups.
	GetByLoginOrEmail(ctx context.Context, loginOrEmail string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByConfirmationCode(ctx context.Context, code string) (*User, error)
	ConfirmEmail(ctx context.Context, id uint) error
	UpdateConfirmationCode(ctx context.Context, id uint, code string, expiration time.Time) error
}

// UserService defines the business logic interface for users.
type UserService interface {
	CreateUser(ctx context.Context, login, email, password string) (*User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
	ListUsers(ctx context.Context, q ListQuery) (*pagination.Pagination[User], error)
	UpdateUser(ctx context.Context, id uint, upd UserUpdate) error
	DeleteUser(ctx context.Context, id uint) error
}

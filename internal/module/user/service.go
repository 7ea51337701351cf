package user

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/simp-lee/pagination"
	"golang.org/x/crypto/bcrypt"

	"github.com/dkotelev/blogplatform/internal/domain"
)

// userService implements domain.UserService.
type userService struct {
	repo domain.UserRepository
}

// NewUserService creates a UserService with the given repository.
func NewUserService(repo domain.UserRepository) domain.UserService {
	return &userService{repo: repo}
}

// CreateUser validates input, hashes the password, and persists a new user.
// This is the administrative creation path; such users do not go through the
// email confirmation flow and are created confirmed.
func (s *userService) CreateUser(ctx context.Context, login, email, password string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	email = strings.TrimSpace(email)

	if err := validateLoginEmail(login, email); err != nil {
		return nil, err
	}
	if len(password) < 6 {
		return nil, domain.NewAppError(domain.CodeValidation, "password must be at least 6 characters", nil)
	}
	if len(password) > 72 {
		return nil, domain.NewAppError(domain.CodeValidation, "password must not exceed 72 characters", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	user := &domain.User{
		Login:            login,
		Email:            email,
		PasswordHash:     string(hash),
		IsEmailConfirmed: true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves an active user by ID.
func (s *userService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.RequireActiveByID(ctx, id)
}

// ListUsers returns a paginated list of active users.
func (s *userService) ListUsers(ctx context.Context, q domain.ListQuery) (*pagination.Pagination[domain.User], error) {
	return s.repo.List(ctx, q)
}

// UpdateUser validates input and applies it to an active user.
func (s *userService) UpdateUser(ctx context.Context, id uint, upd domain.UserUpdate) error {
	upd.Login = strings.TrimSpace(upd.Login)
	upd.Email = strings.TrimSpace(upd.Email)

	if err := validateLoginEmail(upd.Login, upd.Email); err != nil {
		return err
	}

	if _, err := s.repo.RequireActiveByID(ctx, id); err != nil {
		return err
	}

	return s.repo.Update(ctx, id, upd)
}

// DeleteUser soft-deletes an active user.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.repo.RequireActiveByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

// validateLoginEmail checks login and email constraints.
func validateLoginEmail(login, email string) error {
	loginLen := utf8.RuneCountInString(login)
	if loginLen == 0 {
		return domain.NewAppError(domain.CodeValidation, "login is required", nil)
	}
	if loginLen < 3 {
		return domain.NewAppError(domain.CodeValidation, "login must be at least 3 characters", nil)
	}
	if loginLen > 30 {
		return domain.NewAppError(domain.CodeValidation, "login must be at most 30 characters", nil)
	}
	if email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	return nil
}

package user

import (
	"context"
	"time"

	"github.com/simp-lee/pagination"
	"gorm.io/gorm"

	"github.com/dkotelev/blogplatform/internal/domain"
	"github.com/dkotelev/blogplatform/internal/pkg"
)

// Allowed fields for sorting and searching in List queries.
// Users search on login and email; the two terms combine with OR, so a row
// matches when either field contains its term.
var (
	sortFields   = []string{"login", "email", "created_at"}
	searchFields = map[string]string{
		"searchLoginTerm": "login",
		"searchEmailTerm": "email",
	}
)

// ListOptions returns the listing options for the user resource.
func ListOptions(maxPageSize int) pkg.ListOptions {
	return pkg.ListOptions{
		SortFields:   sortFields,
		SearchFields: searchFields,
		MaxPageSize:  maxPageSize,
	}
}

// userRepository implements domain.UserRepository. Listing and lifecycle
// operations delegate to the generic store; the authentication lookups are
// single parameterized statements with the same active-only visibility.
type userRepository struct {
	db    *gorm.DB
	store *pkg.Store[domain.User]
}

// NewUserRepository creates a UserRepository backed by the given database.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db, store: pkg.NewStore[domain.User](db)}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.store.Create(ctx, user)
}

func (r *userRepository) FindActiveByID(ctx context.Context, id uint) (*domain.User, error) {
	return r.store.FindActiveByID(ctx, id)
}

func (r *userRepository) RequireActiveByID(ctx context.Context, id uint) (*domain.User, error) {
	return r.store.RequireActiveByID(ctx, id)
}

func (r *userRepository) List(ctx context.Context, q domain.ListQuery) (*pagination.Pagination[domain.User], error) {
	return r.store.List(ctx, q)
}

func (r *userRepository) Count(ctx context.Context, q domain.ListQuery) (int64, error) {
	return r.store.Count(ctx, q)
}

func (r *userRepository) Update(ctx context.Context, id uint, upd domain.UserUpdate) error {
	return r.store.Update(ctx, id, map[string]any{
		"login": upd.Login,
		"email": upd.Email,
	})
}

func (r *userRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.store.SoftDelete(ctx, id)
}

// GetByLoginOrEmail finds an active user whose login or email equals the
// given value. Used by the login flow.
func (r *userRepository) GetByLoginOrEmail(ctx context.Context, loginOrEmail string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Scopes(pkg.ActiveOnly).
		Where("login = ? OR email = ?", loginOrEmail, loginOrEmail).
		First(&user).Error
	if err != nil {
		return nil, pkg.MapStoreError(err)
	}
	return &user, nil
}

// GetByEmail finds an active user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Scopes(pkg.ActiveOnly).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, pkg.MapStoreError(err)
	}
	return &user, nil
}

// GetByConfirmationCode finds an active user by confirmation code.
func (r *userRepository) GetByConfirmationCode(ctx context.Context, code string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Scopes(pkg.ActiveOnly).
		Where("confirmation_code = ?", code).
		First(&user).Error
	if err != nil {
		return nil, pkg.MapStoreError(err)
	}
	return &user, nil
}

// ConfirmEmail marks the user's email confirmed and clears the confirmation
// code. Conditioned on the row still being active.
func (r *userRepository) ConfirmEmail(ctx context.Context, id uint) error {
	return r.store.Update(ctx, id, map[string]any{
		"is_email_confirmed":           true,
		"confirmation_code":            nil,
		"confirmation_code_expiration": nil,
	})
}

// UpdateConfirmationCode replaces the user's confirmation code and its expiry.
// Conditioned on the row still being active.
func (r *userRepository) UpdateConfirmationCode(ctx context.Context, id uint, code string, expiration time.Time) error {
	return r.store.Update(ctx, id, map[string]any{
		"confirmation_code":            code,
		"confirmation_code_expiration": expiration,
	})
}

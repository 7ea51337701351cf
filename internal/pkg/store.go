package pkg

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/simp-lee/pagination"
	"gorm.io/gorm"

	"github.com/dkotelev/blogplatform/internal/domain"
)

// Store is the generic paginated repository engine. It composes the
// normalized list query, the search filter, and the active-status visibility
// rule into count and page queries, and provides the soft-delete lifecycle
// operations with uniform not-found semantics. Resource repositories wrap a
// Store instead of re-implementing pagination math or filter construction.
//
// Entity types are expected to embed domain.Model, which supplies the id,
// created_at, and deletion_status columns the engine relies on.
type Store[T any] struct {
	db *gorm.DB
}

// NewStore creates a Store for entity type T backed by the given database.
func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// Create inserts a new row. The domain.Model BeforeCreate hook guarantees the
// row starts in the active state.
func (s *Store[T]) Create(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return MapStoreError(err)
	}
	return nil
}

// filtered builds the base query for q: active rows matching the search
// predicate. List reuses one such query for both its count and its page
// fetch, so the two can never disagree on the filter.
func (s *Store[T]) filtered(ctx context.Context, q domain.ListQuery) *gorm.DB {
	return s.db.WithContext(ctx).Model(new(T)).Scopes(ActiveOnly, Search(q))
}

// Count returns the number of active rows matching the query's filter.
func (s *Store[T]) Count(ctx context.Context, q domain.ListQuery) (int64, error) {
	var total int64
	if err := s.filtered(ctx, q).Count(&total).Error; err != nil {
		return 0, MapStoreError(err)
	}
	return total, nil
}

// List returns one page of active rows matching the query, with pagination
// metadata computed from the same filter the page fetch used.
func (s *Store[T]) List(ctx context.Context, q domain.ListQuery) (*pagination.Pagination[T], error) {
	base := s.filtered(ctx, q)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, MapStoreError(err)
	}

	var items []T
	if err := base.Scopes(Sort(q), Paginate(q)).Find(&items).Error; err != nil {
		return nil, MapStoreError(err)
	}

	return NewPagination(items, total, q), nil
}

// FindActiveByID returns the active row with the given id, or (nil, nil) when
// no such row exists. Absence is a normal result, not a failure.
func (s *Store[T]) FindActiveByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := s.db.WithContext(ctx).Scopes(ActiveOnly).Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, MapStoreError(err)
	}
	return &entity, nil
}

// RequireActiveByID is FindActiveByID with absence reported as ErrNotFound,
// for callers that want a descriptive error before attempting a mutation.
func (s *Store[T]) RequireActiveByID(ctx context.Context, id uint) (*T, error) {
	entity, err := s.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, domain.ErrNotFound
	}
	return entity, nil
}

// Update applies the given column values to the row with the given id,
// conditioned on the row still being active. The single conditional statement
// collapses "absent" and "already deleted" into ErrNotFound and leaves no
// window for a concurrent soft delete between check and mutation.
func (s *Store[T]) Update(ctx context.Context, id uint, fields map[string]any) error {
	result := s.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND deletion_status = ?", id, domain.StatusActive).
		Updates(fields)
	if result.Error != nil {
		return MapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete transitions the row from active to deleted. The transition is
// one-way: a second call on the same id affects zero rows and returns
// ErrNotFound.
func (s *Store[T]) SoftDelete(ctx context.Context, id uint) error {
	return s.Update(ctx, id, map[string]any{"deletion_status": domain.StatusDeleted})
}

// NewPagination assembles a pagination envelope with computed TotalPages.
func NewPagination[T any](items []T, total int64, q domain.ListQuery) *pagination.Pagination[T] {
	totalPages := 0
	if q.PageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(q.PageSize)))
	}

	if items == nil {
		items = []T{}
	}

	return &pagination.Pagination[T]{
		Items:        items,
		TotalItems:   total,
		CurrentPage:  q.Page,
		ItemsPerPage: q.PageSize,
		TotalPages:   totalPages,
	}
}

// MapStoreError converts GORM errors to domain errors. Store failures other
// than not-found and duplicate-key are wrapped as internal errors and
// propagated unchanged; nothing here retries.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}

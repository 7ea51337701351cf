package domain

import (
	"time"

	"gorm.io/gorm"
)

// DeletionStatus is the lifecycle state of a row.
//
// Rows are created active, become deleted through a soft delete, and may
// eventually be marked permanently deleted by an external retention process.
// This layer never produces or queries for StatusPermanentlyDeleted.
type DeletionStatus string

const (
	StatusActive             DeletionStatus = "active"
	StatusDeleted            DeletionStatus = "deleted"
	StatusPermanentlyDeleted DeletionStatus = "permanently_deleted"
)

// Valid reports whether s is one of the known deletion statuses.
func (s DeletionStatus) Valid() bool {
	switch s {
	case StatusActive, StatusDeleted, StatusPermanentlyDeleted:
		return true
	}
	return false
}

// Model is the common base struct for all domain models. It replaces
// gorm.Model so that soft deletion is driven by DeletionStatus instead of
// GORM's implicit DeletedAt handling.
type Model struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time      `json:"createdAt"`
	DeletionStatus DeletionStatus `gorm:"size:32;not null;default:active;index" json:"-"`
}

// BeforeCreate forces newly inserted rows into the active state, regardless
// of what the caller put in the struct.
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	m.DeletionStatus = StatusActive
	return nil
}

// ListQuery holds normalized pagination, sorting, and search parameters for
// one listing call. Instances must be produced by pkg.NormalizeListQuery:
// SortField and the Search keys are whitelist-validated column names there,
// which is what makes them safe to splice into ORDER BY and WHERE clauses.
type ListQuery struct {
	Page      int
	PageSize  int
	SortField string
	SortDesc  bool
	// Search maps a storage column to a lower-cased substring term.
	// Terms across columns combine with OR: a row matches if any one
	// searched column contains its term.
	Search map[string]string
}

// Offset returns the OFFSET value for the query's page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

package pkg

import (
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dkotelev/blogplatform/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	// fallbackMaxPageSize bounds page size when no limit is configured.
	fallbackMaxPageSize = 100
	fallbackSortField   = "created_at"
)

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ListOptions declares, per resource, which columns a listing call may sort
// and search on. SearchFields maps a query parameter name (e.g.
// "searchLoginTerm") to the storage column it searches.
type ListOptions struct {
	SortFields   []string
	SearchFields map[string]string
	MaxPageSize  int
}

// RawListQuery holds untrusted listing parameters as they arrived, before
// normalization. SearchTerms is keyed by query parameter name.
type RawListQuery struct {
	PageNumber    string
	PageSize      string
	SortBy        string
	SortDirection string
	SearchTerms   map[string]string
}

// NormalizeListQuery turns raw listing input into a validated domain.ListQuery.
//
// It never fails: non-numeric or non-positive page values fall back to 1 and 10,
// page size is capped at opts.MaxPageSize, a sort field outside opts.SortFields
// is silently replaced by created_at, and only an exact case-insensitive "ASC"
// sorts ascending. Empty search terms are dropped rather than turned into
// match-everything wildcards; non-empty terms are lower-cased for
// case-insensitive substring matching. Malformed parameters shape the result,
// they never reject the request.
func NormalizeListQuery(raw RawListQuery, opts ListOptions) domain.ListQuery {
	page, err := strconv.Atoi(raw.PageNumber)
	if err != nil || page < 1 {
		page = defaultPage
	}

	pageSize, err := strconv.Atoi(raw.PageSize)
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	maxPageSize := opts.MaxPageSize
	if maxPageSize < 1 {
		maxPageSize = fallbackMaxPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	sortField := fallbackSortField
	if f := strings.TrimSpace(raw.SortBy); validFieldName.MatchString(f) && isAllowed(f, opts.SortFields) {
		sortField = f
	}

	sortDesc := !strings.EqualFold(strings.TrimSpace(raw.SortDirection), "ASC")

	var search map[string]string
	for param, column := range opts.SearchFields {
		term := raw.SearchTerms[param]
		if term == "" {
			continue
		}
		if search == nil {
			search = make(map[string]string, len(opts.SearchFields))
		}
		search[column] = strings.ToLower(term)
	}

	return domain.ListQuery{
		Page:      page,
		PageSize:  pageSize,
		SortField: sortField,
		SortDesc:  sortDesc,
		Search:    search,
	}
}

// ParseListQuery extracts listing parameters from the request query string and
// normalizes them. Parameter names follow the public API contract: pageNumber,
// pageSize, sortBy, sortDirection, plus the per-resource search term
// parameters declared in opts.SearchFields.
func ParseListQuery(c *gin.Context, opts ListOptions) domain.ListQuery {
	raw := RawListQuery{
		PageNumber:    c.Query("pageNumber"),
		PageSize:      c.Query("pageSize"),
		SortBy:        c.Query("sortBy"),
		SortDirection: c.Query("sortDirection"),
	}
	for param := range opts.SearchFields {
		if v := c.Query(param); v != "" {
			if raw.SearchTerms == nil {
				raw.SearchTerms = make(map[string]string, len(opts.SearchFields))
			}
			raw.SearchTerms[param] = v
		}
	}
	return NormalizeListQuery(raw, opts)
}

// ActiveOnly returns a GORM scope restricting a query to active rows.
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("deletion_status = ?", domain.StatusActive)
}

// Search returns a GORM scope applying the query's case-insensitive substring
// predicates. Terms against different columns combine with OR: a row matches
// when any one searched column contains its term. With no terms the scope is
// a no-op and every row (within the surrounding filters) matches.
//
// Column names in q.Search come from the normalizer's whitelist; term values
// are always passed as bound parameters, never spliced into the SQL text.
func Search(q domain.ListQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(q.Search) == 0 {
			return db
		}

		columns := make([]string, 0, len(q.Search))
		for col := range q.Search {
			columns = append(columns, col)
		}
		sort.Strings(columns)

		conds := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, col := range columns {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, "%"+q.Search[col]+"%")
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// Sort returns a GORM scope applying ORDER BY for the query. SortField is
// trusted here because NormalizeListQuery only emits whitelisted columns.
func Sort(q domain.ListQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		direction := "ASC"
		if q.SortDesc {
			direction = "DESC"
		}
		return db.Order(q.SortField + " " + direction)
	}
}

// Paginate returns a GORM scope applying LIMIT and OFFSET for the query's page.
func Paginate(q domain.ListQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset()).Limit(q.PageSize)
	}
}

// isAllowed checks if a field name is in the allowed list.
func isAllowed(field string, allowed []string) bool {
	return slices.Contains(allowed, field)
}

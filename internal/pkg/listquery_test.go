package pkg

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testOpts = ListOptions{
	SortFields:   []string{"name", "website_url", "created_at"},
	SearchFields: map[string]string{"searchNameTerm": "name"},
	MaxPageSize:  100,
}

func newTestContext(queryParams url.Values) *gin.Context {
	req := httptest.NewRequest(http.MethodGet, "/?"+queryParams.Encode(), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestNormalizeListQuery_Defaults(t *testing.T) {
	q := NormalizeListQuery(RawListQuery{}, testOpts)

	if q.Page != 1 {
		t.Errorf("expected Page=1, got %d", q.Page)
	}
	if q.PageSize != 10 {
		t.Errorf("expected PageSize=10, got %d", q.PageSize)
	}
	if q.SortField != "created_at" {
		t.Errorf("expected SortField=created_at, got %s", q.SortField)
	}
	if !q.SortDesc {
		t.Error("expected descending sort by default")
	}
	if len(q.Search) != 0 {
		t.Errorf("expected empty Search, got %v", q.Search)
	}
}

func TestNormalizeListQuery_InvalidNumbersFallBack(t *testing.T) {
	cases := []struct {
		name     string
		page     string
		pageSize string
	}{
		{"non_numeric", "abc", "xyz"},
		{"zero", "0", "0"},
		{"negative", "-3", "-10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := NormalizeListQuery(RawListQuery{PageNumber: tc.page, PageSize: tc.pageSize}, testOpts)
			if q.Page != 1 || q.PageSize != 10 {
				t.Errorf("expected defaults 1/10, got %d/%d", q.Page, q.PageSize)
			}
		})
	}
}

func TestNormalizeListQuery_PageSizeCapped(t *testing.T) {
	q := NormalizeListQuery(RawListQuery{PageSize: "10000"}, testOpts)
	if q.PageSize != 100 {
		t.Errorf("expected PageSize capped at 100, got %d", q.PageSize)
	}

	// Zero MaxPageSize falls back to the built-in cap.
	q = NormalizeListQuery(RawListQuery{PageSize: "10000"}, ListOptions{SortFields: testOpts.SortFields})
	if q.PageSize != fallbackMaxPageSize {
		t.Errorf("expected PageSize capped at %d, got %d", fallbackMaxPageSize, q.PageSize)
	}
}

func TestNormalizeListQuery_SortFieldWhitelist(t *testing.T) {
	q := NormalizeListQuery(RawListQuery{SortBy: "name"}, testOpts)
	if q.SortField != "name" {
		t.Errorf("expected SortField=name, got %s", q.SortField)
	}

	// Non-whitelisted fields silently fall back to created_at.
	for _, field := range []string{"password_hash", "id; DROP TABLE users", "unknown", ""} {
		q := NormalizeListQuery(RawListQuery{SortBy: field}, testOpts)
		if q.SortField != "created_at" {
			t.Errorf("sortBy=%q: expected fallback created_at, got %s", field, q.SortField)
		}
	}
}

func TestNormalizeListQuery_SortDirection(t *testing.T) {
	cases := []struct {
		input    string
		wantDesc bool
	}{
		{"ASC", false},
		{"asc", false},
		{" aSc ", false},
		{"DESC", true},
		{"desc", true},
		{"", true},
		{"ascending", true},
	}
	for _, tc := range cases {
		q := NormalizeListQuery(RawListQuery{SortDirection: tc.input}, testOpts)
		if q.SortDesc != tc.wantDesc {
			t.Errorf("sortDirection=%q: SortDesc=%v, want %v", tc.input, q.SortDesc, tc.wantDesc)
		}
	}
}

func TestNormalizeListQuery_SearchTerms(t *testing.T) {
	q := NormalizeListQuery(RawListQuery{
		SearchTerms: map[string]string{"searchNameTerm": "TeCh"},
	}, testOpts)
	if q.Search["name"] != "tech" {
		t.Errorf("expected lower-cased term bound to name column, got %v", q.Search)
	}

	// Empty terms are dropped, not turned into match-everything wildcards.
	q = NormalizeListQuery(RawListQuery{
		SearchTerms: map[string]string{"searchNameTerm": ""},
	}, testOpts)
	if len(q.Search) != 0 {
		t.Errorf("expected empty term to be dropped, got %v", q.Search)
	}

	// Unknown search params are ignored.
	q = NormalizeListQuery(RawListQuery{
		SearchTerms: map[string]string{"searchBogusTerm": "x"},
	}, testOpts)
	if len(q.Search) != 0 {
		t.Errorf("expected unknown search param to be ignored, got %v", q.Search)
	}
}

func TestParseListQuery(t *testing.T) {
	c := newTestContext(url.Values{
		"pageNumber":     {"3"},
		"pageSize":       {"25"},
		"sortBy":         {"name"},
		"sortDirection":  {"asc"},
		"searchNameTerm": {"Blog"},
	})
	q := ParseListQuery(c, testOpts)

	if q.Page != 3 || q.PageSize != 25 {
		t.Errorf("expected page 3 size 25, got %d/%d", q.Page, q.PageSize)
	}
	if q.SortField != "name" || q.SortDesc {
		t.Errorf("expected name ASC, got %s desc=%v", q.SortField, q.SortDesc)
	}
	if q.Search["name"] != "blog" {
		t.Errorf("expected search name=blog, got %v", q.Search)
	}
}

func TestListQuery_Offset(t *testing.T) {
	q := NormalizeListQuery(RawListQuery{PageNumber: "4", PageSize: "15"}, testOpts)
	if got := q.Offset(); got != 45 {
		t.Errorf("expected offset 45, got %d", got)
	}
}

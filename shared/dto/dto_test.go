package dto_test

import (
	"mahalo/shared/dto"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParamsFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/reservations?page=3&limit=25&sort_by=date&sort_dir=asc", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "date", q.SortBy)
	assert.Equal(t, dto.SortDirAsc, q.SortDir)
}

func TestQueryParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/reservations", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestFilterMatches(t *testing.T) {
	fields := map[string]string{
		"email": "guest@example.com",
		"type":  "room",
		"name":  "Jane Guest",
	}

	tests := []struct {
		name   string
		filter dto.Filter
		want   bool
	}{
		{"eq match", dto.Filter{Field: "type", Value: "room", Operator: dto.FilterOperatorEq}, true},
		{"eq miss", dto.Filter{Field: "type", Value: "event", Operator: dto.FilterOperatorEq}, false},
		{"not_eq", dto.Filter{Field: "type", Value: "event", Operator: dto.FilterOperatorNotEq}, true},
		{"like folds case", dto.Filter{Field: "name", Value: "jane", Operator: dto.FilterOperatorLike}, true},
		{"any over all fields", dto.Filter{Value: "example.com", Operator: dto.FilterOperatorAny}, true},
		{"any miss", dto.Filter{Value: "nothing", Operator: dto.FilterOperatorAny}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(fields))
		})
	}
}

func TestFilterGroupMatches(t *testing.T) {
	fields := map[string]string{"type": "room", "email": "a@b.c"}

	and := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "type", Value: "room", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "email", Value: "a@b.c", Operator: dto.FilterOperatorEq},
		},
	}
	assert.True(t, and.Matches(fields))

	or := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "type", Value: "event", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "email", Value: "a@b.c", Operator: dto.FilterOperatorEq},
		},
	}
	assert.True(t, or.Matches(fields))

	empty := dto.FilterGroup{}
	assert.True(t, empty.Matches(fields))
}

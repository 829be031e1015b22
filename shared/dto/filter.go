package dto

import (
	"strings"
)

const (
	FilterOperatorEq    = "eq"
	FilterOperatorLike  = "like"
	FilterOperatorNotEq = "not_eq"
	// FilterOperatorAny matches when the value appears as a substring in any
	// field of the record, ignoring the Field name.
	FilterOperatorAny = "any"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter is a single predicate evaluated against the string fields of a
// stored record. Matching is case-insensitive for like/any.
type Filter struct {
	Field    string
	Value    string
	Operator string `validate:"required,oneof=eq like not_eq any"`
}

func (f *Filter) Matches(fields map[string]string) bool {
	switch f.Operator {
	case FilterOperatorEq:
		return fields[f.Field] == f.Value
	case FilterOperatorNotEq:
		return fields[f.Field] != f.Value
	case FilterOperatorLike:
		return strings.Contains(strings.ToLower(fields[f.Field]), strings.ToLower(f.Value))
	case FilterOperatorAny:
		needle := strings.ToLower(f.Value)
		for _, value := range fields {
			if strings.Contains(strings.ToLower(value), needle) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

// FilterGroup combines filters and nested groups with a single AND/OR
// operator. An empty group matches everything.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) Matches(fields map[string]string) bool {
	if len(f.Filters) == 0 {
		return true
	}

	anyOf := f.Operator == FilterGroupOperatorOr

	for _, filter := range f.Filters {
		matched := false

		switch fill := filter.(type) {
		case Filter:
			matched = fill.Matches(fields)
		case FilterGroup:
			matched = fill.Matches(fields)
		}

		if anyOf && matched {
			return true
		}

		if !anyOf && !matched {
			return false
		}
	}

	return !anyOf
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSortOrder(t *testing.T) {
	asc := PaginationParams{SortBy: "department", Order: "asc"}
	assert.Equal(t, map[string]int{"department": 1}, asc.GetSortOrder())

	desc := PaginationParams{SortBy: "department", Order: "desc"}
	assert.Equal(t, map[string]int{"department": -1}, desc.GetSortOrder())
}

func TestGetSortOrderDefaultsToName(t *testing.T) {
	p := PaginationParams{}
	assert.Equal(t, map[string]int{"name": 1}, p.GetSortOrder())
}

func TestGetSkip(t *testing.T) {
	p := PaginationParams{Page: 3, Limit: 10}
	assert.Equal(t, int64(20), p.GetSkip())
}

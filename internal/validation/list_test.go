package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeListOptions(t *testing.T) {
	allowed := []string{"createdAt", "updatedAt"}

	tests := []struct {
		name      string
		sortBy    string
		order     string
		limit     string
		wantSort  string
		wantDesc  bool
		wantLimit int
	}{
		{name: "all defaults", wantSort: "createdAt", wantDesc: true, wantLimit: 10},
		{name: "asc honored", order: "asc", wantSort: "createdAt", wantDesc: false, wantLimit: 10},
		{name: "unknown order is desc", order: "sideways", wantSort: "createdAt", wantDesc: true, wantLimit: 10},
		{name: "allowed sort", sortBy: "updatedAt", wantSort: "updatedAt", wantDesc: true, wantLimit: 10},
		{name: "unknown sort falls back", sortBy: "price", wantSort: "createdAt", wantDesc: true, wantLimit: 10},
		{name: "limit in range", limit: "25", wantSort: "createdAt", wantDesc: true, wantLimit: 25},
		{name: "limit above cap", limit: "500", wantSort: "createdAt", wantDesc: true, wantLimit: 50},
		{name: "limit below one", limit: "0", wantSort: "createdAt", wantDesc: true, wantLimit: 10},
		{name: "limit unparseable", limit: "ten", wantSort: "createdAt", wantDesc: true, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NormalizeListOptions(tt.sortBy, tt.order, tt.limit, "", allowed)

			assert.Equal(t, tt.wantSort, opts.SortBy)
			assert.Equal(t, tt.wantDesc, opts.Desc)
			assert.Equal(t, tt.wantLimit, opts.Limit)
		})
	}
}

func TestNormalizeListOptions_PageTokenPassedThrough(t *testing.T) {
	opts := NormalizeListOptions("", "", "", "doc-abc", []string{"createdAt"})

	assert.Equal(t, "doc-abc", opts.PageToken)
}

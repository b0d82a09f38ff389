package validation

import (
	"slices"
	"strconv"

	"storefront/internal/domain/repository"
)

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

// NormalizeListOptions applies the lenient-default policy to list query
// parameters: an unrecognized sort field falls back to createdAt, anything
// other than "asc" sorts descending, and an unparseable or out-of-range
// limit is clamped into [1, 50] with a default of 10. Nothing here fails.
func NormalizeListOptions(sortBy, order, limit, pageToken string, allowedSorts []string) repository.ListOptions {
	opts := repository.ListOptions{
		SortBy:    "createdAt",
		Desc:      order != "asc",
		Limit:     defaultListLimit,
		PageToken: pageToken,
	}

	if slices.Contains(allowedSorts, sortBy) {
		opts.SortBy = sortBy
	}

	if n, err := strconv.Atoi(limit); err == nil {
		switch {
		case n < 1:
			opts.Limit = defaultListLimit
		case n > maxListLimit:
			opts.Limit = maxListLimit
		default:
			opts.Limit = n
		}
	}

	return opts
}

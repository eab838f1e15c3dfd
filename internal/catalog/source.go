// Package catalog is the data layer behind repositories pages: it fetches
// sorted repository lists from a backend and generates page contexts and
// page paths.
package catalog

import (
	"context"
	"sort"

	"schemegrip/internal/domain"
)

// Query selects one page of the catalog
type Query struct {
	Sort  domain.SortField // always descending
	Skip  int
	Limit int
}

// Source is the data query contract: it returns the total count, the page,
// the full catalog in the same order and the site platform.
type Source interface {
	Page(ctx context.Context, q Query) (domain.PageData, error)
	Close(ctx context.Context) error
}

// sortRepositories orders repos by field, descending, keeping input order for ties
func sortRepositories(repos []domain.Repository, field domain.SortField) {
	sort.SliceStable(repos, func(i, j int) bool {
		a, b := repos[i], repos[j]
		switch field {
		case domain.SortStargazers:
			return a.StargazersCount > b.StargazersCount
		case domain.SortCreatedAt:
			return a.CreatedAt.After(b.CreatedAt)
		case domain.SortLastCommitAt:
			return a.LastCommitAt.After(b.LastCommitAt)
		default:
			return a.WeekStargazersCount > b.WeekStargazersCount
		}
	})
}

// window returns the [skip, skip+limit) slice of repos, clamped to its bounds
func window(repos []domain.Repository, skip, limit int) []domain.Repository {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(repos) {
		return []domain.Repository{}
	}
	end := len(repos)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	out := make([]domain.Repository, end-skip)
	copy(out, repos[skip:end])
	return out
}

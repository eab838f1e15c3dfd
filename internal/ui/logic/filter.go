package logic

import (
	"strings"

	"schemegrip/internal/domain"
)

// FilterByName returns the repositories whose name contains query, in their
// original order. Matching is case-sensitive. An empty query matches nothing;
// callers show the unfiltered page instead.
func FilterByName(repos []domain.Repository, query string) []domain.Repository {
	if query == "" {
		return nil
	}

	matches := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if strings.Contains(repo.Name, query) {
			matches = append(matches, repo)
		}
	}
	return matches
}

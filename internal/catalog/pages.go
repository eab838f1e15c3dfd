package catalog

import (
	"strconv"
	"strings"

	"schemegrip/internal/domain"
)

// PageCount returns how many pages of pageSize are needed for total repositories.
// An empty catalog still has one (empty) page.
func PageCount(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = domain.RepositoryCountPerPage
	}
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// PageContexts generates the context of every page of a listing
func PageContexts(total, pageSize int) []domain.PageContext {
	if pageSize < 1 {
		pageSize = domain.RepositoryCountPerPage
	}
	count := PageCount(total, pageSize)
	pages := make([]domain.PageContext, count)
	for i := range pages {
		pages[i] = domain.PageContext{
			Limit:       pageSize,
			Skip:        i * pageSize,
			CurrentPage: i + 1,
			PageCount:   count,
		}
	}
	return pages
}

// QueryFor builds the catalog query behind a page of an action's listing
func QueryFor(action domain.Action, page, pageSize int) Query {
	if page < 1 {
		page = 1
	}
	return Query{
		Sort:  action.SortField,
		Skip:  (page - 1) * pageSize,
		Limit: pageSize,
	}
}

// PagePath returns the path of a page of an action's listing: "/top", "/top/page/2", "/page/3"
func PagePath(action domain.Action, page int) string {
	if page <= 1 {
		return action.Route
	}
	return strings.TrimSuffix(action.Route, "/") + "/page/" + strconv.Itoa(page)
}

// ParsePath routes a path to its action and page number.
// Unknown segments fall back to the default action and page 1.
func ParsePath(path string) (domain.Action, int) {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })

	action := domain.DefaultAction
	if len(segments) > 0 {
		for _, a := range domain.Actions {
			if a.Route != domain.DefaultAction.Route && a.Route == "/"+segments[0] {
				action = a
				segments = segments[1:]
				break
			}
		}
	}

	page := 1
	if len(segments) >= 2 && segments[0] == "page" {
		if n, err := strconv.Atoi(segments[1]); err == nil && n > 0 {
			page = n
		}
	}
	return action, page
}

package domain

import "time"

// Repository represents a color scheme repository in the catalog
type Repository struct {
	Name                string
	Description         string
	StargazersCount     int
	CreatedAt           time.Time
	LastCommitAt        time.Time
	GithubURL           string
	WeekStargazersCount int
	Owner               Owner
	FeaturedImage       string   // primary image URL
	Images              []string // secondary image URLs
}

// Owner is the account a repository belongs to
type Owner struct {
	Name string
}

// Key returns the stable identity used to key cards
func (r Repository) Key() string {
	return "repository-" + r.Owner.Name + "-" + r.Name
}

// FullName returns "owner/name"
func (r Repository) FullName() string {
	return r.Owner.Name + "/" + r.Name
}

// PageContext is the pagination context supplied by page generation
type PageContext struct {
	Limit       int
	Skip        int
	CurrentPage int // 1-based
	PageCount   int
}

// PageData is everything a repositories page receives up front
type PageData struct {
	TotalCount      int
	Repositories    []Repository // current page, sorted
	AllRepositories []Repository // whole catalog, same sort
	Platform        string
	Context         PageContext
}

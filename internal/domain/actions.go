package domain

// SortField names a catalog field pages can be sorted by
type SortField string

const (
	SortWeekStargazers SortField = "week_stargazers_count"
	SortStargazers     SortField = "stargazers_count"
	SortCreatedAt      SortField = "github_created_at"
	SortLastCommitAt   SortField = "last_commit_at"
)

// Action is a sort mode of the gallery, selected by route segment
type Action struct {
	Label     string
	Route     string
	SortField SortField
}

var (
	ActionTrending = Action{Label: "Trending", Route: "/", SortField: SortWeekStargazers}
	ActionTop      = Action{Label: "Top", Route: "/top", SortField: SortStargazers}
	ActionNew      = Action{Label: "New", Route: "/new", SortField: SortCreatedAt}
	ActionRecent   = Action{Label: "Recently updated", Route: "/recent", SortField: SortLastCommitAt}
)

// Actions is the fixed, ordered set of gallery actions.
// Trending's route "/" is contained in every path, so it is only ever chosen as the fallback.
var Actions = []Action{ActionTrending, ActionTop, ActionNew, ActionRecent}

// DefaultAction is used when no other action's route matches the path
var DefaultAction = ActionTrending

// RepositoryCountPerPage is the default page size
const RepositoryCountPerPage = 24

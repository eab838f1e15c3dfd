package state

// AppState contains the application state that outlives a single page visit
type AppState struct {
	// Routing
	Path        string // current page path, e.g. "/top/page/2"
	PendingPath string // path of the latest request, while loading
	Seq         int    // sequence number of the latest page request
	Loaded      bool   // whether any page has been loaded yet

	// UI state
	Loading       bool
	ShowHelp      bool
	StatusMessage string
	StatusIsError bool
	StatusID      int // bumped per message so a stale clear can't wipe a newer one
}

// NewAppState creates a new application state
func NewAppState(path string) *AppState {
	if path == "" {
		path = "/"
	}
	return &AppState{Path: path}
}

// BeginRequest records a new page request and returns its sequence number
func (s *AppState) BeginRequest(path string) int {
	s.Seq++
	s.PendingPath = path
	s.Loading = true
	return s.Seq
}

// IsCurrent reports whether seq belongs to the latest request
func (s *AppState) IsCurrent(seq int) bool {
	return seq == s.Seq
}

// CompleteRequest marks the latest request as done.
// It reports whether the loaded page is a new visit rather than a reload.
func (s *AppState) CompleteRequest(path string) bool {
	newVisit := !s.Loaded || path != s.Path
	s.Path = path
	s.PendingPath = ""
	s.Loading = false
	s.Loaded = true
	return newVisit
}

// FailRequest marks the latest request as failed, keeping the current page
func (s *AppState) FailRequest() {
	s.PendingPath = ""
	s.Loading = false
}

// SetStatus shows a status message and returns its id
func (s *AppState) SetStatus(message string, isError bool) int {
	s.StatusID++
	s.StatusMessage = message
	s.StatusIsError = isError
	return s.StatusID
}

// ClearStatus clears the status message if it is still the one with id
func (s *AppState) ClearStatus(id int) {
	if id != s.StatusID {
		return
	}
	s.StatusMessage = ""
	s.StatusIsError = false
}

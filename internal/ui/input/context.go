package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Index   int
	Total   int
	Current bool
	Search  bool
	Page    int
	Pages   int
}

func (c ModelContext) CurrentIndex() int { return c.Index }
func (c ModelContext) TotalItems() int { return c.Total }
func (c ModelContext) HasCurrent() bool { return c.Current }
func (c ModelContext) IsSearching() bool { return c.Search }
func (c ModelContext) CurrentPage() int { return c.Page }
func (c ModelContext) PageCount() int { return c.Pages }

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemegrip/internal/domain"
	"schemegrip/internal/ui/services/events"
)

func pageData() domain.PageData {
	all := []domain.Repository{
		{Name: "gruvbox"},
		{Name: "darkness"},
		{Name: "nord-vim"},
		{Name: "dark-plus"},
		{Name: "tokyonight"},
	}
	return domain.PageData{
		TotalCount:      len(all),
		Repositories:    all[:2],
		AllRepositories: all,
		Platform:        "vim",
	}
}

func names(repos []domain.Repository) []string {
	out := make([]string, len(repos))
	for i, r := range repos {
		out[i] = r.Name
	}
	return out
}

func TestInitialPageShowsDefaultList(t *testing.T) {
	s := NewService(nil)
	s.Reset(pageData())

	assert.Equal(t, PhaseInitial, s.Phase())
	assert.True(t, s.IsInitialLoad())
	assert.False(t, s.HasSearched())
	assert.Equal(t, []string{"gruvbox", "darkness"}, names(s.Displayed()))

	assert.False(t, s.ApplyDebounced(""), "an empty query on a fresh page is a no-op")
	assert.Equal(t, PhaseInitial, s.Phase())
}

func TestSetInputDoesNotFilter(t *testing.T) {
	s := NewService(nil)
	s.Reset(pageData())

	s.SetInput("dark")
	assert.Equal(t, "dark", s.Input())
	assert.Equal(t, "", s.Debounced())
	assert.Equal(t, []string{"gruvbox", "darkness"}, names(s.Displayed()))
}

func TestApplyDebouncedFiltersFullCatalog(t *testing.T) {
	s := NewService(nil)
	s.Reset(pageData())

	require.True(t, s.ApplyDebounced("dark"))
	assert.Equal(t, PhaseFiltered, s.Phase())
	assert.True(t, s.HasSearched())
	assert.True(t, s.IsSearching())
	assert.Equal(t, []string{"darkness", "dark-plus"}, names(s.Displayed()))
}

func TestClearingRevertsToPageList(t *testing.T) {
	s := NewService(nil)
	s.Reset(pageData())

	s.ApplyDebounced("zzz")
	assert.Empty(t, s.Displayed())

	require.True(t, s.ApplyDebounced(""))
	assert.Equal(t, PhaseDefault, s.Phase())
	assert.Equal(t, []string{"gruvbox", "darkness"}, names(s.Displayed()), "clearing shows the page, not an empty list")
	assert.True(t, s.HasSearched())

	assert.False(t, s.ApplyDebounced(""), "second clear has nothing to revert")
}

func TestReloadKeepsSearch(t *testing.T) {
	s := NewService(nil)
	s.Reset(pageData())
	s.ApplyDebounced("dark")

	data := pageData()
	data.AllRepositories = append(data.AllRepositories, domain.Repository{Name: "darkrose"})
	s.Reload(data)

	assert.Equal(t, PhaseFiltered, s.Phase())
	assert.Equal(t, []string{"darkness", "dark-plus", "darkrose"}, names(s.Displayed()))
}

func TestResetStartsFreshVisit(t *testing.T) {
	s := NewService(nil)
	s.Reset(pageData())
	s.SetInput("dark")
	s.ApplyDebounced("dark")
	s.SetFocus(true)

	s.Reset(pageData())
	assert.Equal(t, PhaseInitial, s.Phase())
	assert.Equal(t, "", s.Input())
	assert.False(t, s.Focused())
	assert.False(t, s.HasSearched())
}

func TestServicePublishesEvents(t *testing.T) {
	bus := events.NewBus()
	var applied []AppliedEvent
	var cleared, focus int
	bus.Subscribe(AppliedEvent{}.Topic(), func(e interface{}) { applied = append(applied, e.(AppliedEvent)) })
	bus.Subscribe(ClearedEvent{}.Topic(), func(interface{}) { cleared++ })
	bus.Subscribe(FocusChangedEvent{}.Topic(), func(interface{}) { focus++ })

	s := NewService(bus)
	s.Reset(pageData())

	assert.True(t, s.SetFocus(true))
	assert.False(t, s.SetFocus(true))
	s.ApplyDebounced("nord")
	s.ApplyDebounced("")

	assert.Equal(t, []AppliedEvent{{Query: "nord", MatchCount: 1}}, applied)
	assert.Equal(t, 1, cleared)
	assert.Equal(t, 1, focus)
}

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schemegrip/internal/domain"
)

func TestResolveActiveAction(t *testing.T) {
	tests := []struct {
		path string
		want domain.Action
	}{
		{"/", domain.ActionTrending},
		{"/page/2", domain.ActionTrending},
		{"/top", domain.ActionTop},
		{"/top/page/3", domain.ActionTop},
		{"/new", domain.ActionNew},
		{"/recent/page/2", domain.ActionRecent},
		{"/unknown", domain.ActionTrending},
		{"", domain.ActionTrending},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := ResolveActiveAction(tt.path, domain.Actions, domain.DefaultAction)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveActiveActionFirstMatchWins(t *testing.T) {
	def := domain.Action{Label: "All", Route: "/"}
	first := domain.Action{Label: "First", Route: "/a"}
	second := domain.Action{Label: "Second", Route: "/ab"}

	got := ResolveActiveAction("/ab/page/2", []domain.Action{def, first, second}, def)
	assert.Equal(t, first, got, "declaration order decides between overlapping routes")
}

func TestCycleAction(t *testing.T) {
	assert.Equal(t, domain.ActionTop, CycleAction(domain.Actions, domain.ActionTrending, 1))
	assert.Equal(t, domain.ActionRecent, CycleAction(domain.Actions, domain.ActionTrending, -1))
	assert.Equal(t, domain.ActionTrending, CycleAction(domain.Actions, domain.ActionRecent, 1))
}

func TestFilterByName(t *testing.T) {
	repos := []domain.Repository{
		{Name: "darkness"},
		{Name: "gruvbox"},
		{Name: "dark-plus"},
		{Name: "Darkula"},
	}

	got := FilterByName(repos, "dark")
	assert.Equal(t, []domain.Repository{{Name: "darkness"}, {Name: "dark-plus"}}, got,
		"order is preserved and matching is case-sensitive")

	assert.Empty(t, FilterByName(repos, "solarized"))
	assert.NotNil(t, FilterByName(repos, "solarized"))
	assert.Nil(t, FilterByName(repos, ""))
}

func TestPageRange(t *testing.T) {
	tests := []struct {
		name               string
		page, count, total int
		start, end         int
	}{
		{"first page", 1, 3, 50, 1, 24},
		{"middle page", 2, 3, 50, 25, 48},
		{"partial last page", 3, 3, 50, 49, 50},
		{"single page", 1, 1, 7, 1, 7},
		{"exact fit last page", 2, 2, 48, 25, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PageRange(tt.page, tt.count, tt.total, 24)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestRangeCaption(t *testing.T) {
	assert.Equal(t, "25 - 48 out of 50 repositories", RangeCaption(2, 3, 50, 24))
	assert.Equal(t, "49 - 50 out of 50 repositories", RangeCaption(3, 3, 50, 24))
}

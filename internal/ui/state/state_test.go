package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestSequencing(t *testing.T) {
	s := NewAppState("")
	assert.Equal(t, "/", s.Path)

	first := s.BeginRequest("/")
	second := s.BeginRequest("/top")
	assert.True(t, s.Loading)
	assert.False(t, s.IsCurrent(first), "a newer request supersedes the older one")
	assert.True(t, s.IsCurrent(second))

	assert.True(t, s.CompleteRequest("/top"))
	assert.Equal(t, "/top", s.Path)
	assert.False(t, s.Loading)

	s.BeginRequest("/top")
	assert.False(t, s.CompleteRequest("/top"), "same path again is a reload")

	s.BeginRequest("/new")
	s.FailRequest()
	assert.Equal(t, "/top", s.Path, "a failed load keeps the current page")
	assert.False(t, s.Loading)
}

func TestStatusClearOnlyClearsItsOwnMessage(t *testing.T) {
	s := NewAppState("/")
	old := s.SetStatus("first", false)
	s.SetStatus("second", true)

	s.ClearStatus(old)
	assert.Equal(t, "second", s.StatusMessage)
	assert.True(t, s.StatusIsError)

	s.ClearStatus(s.StatusID)
	assert.Empty(t, s.StatusMessage)
}

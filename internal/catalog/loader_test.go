package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemegrip/internal/domain"
	"schemegrip/internal/eventbus"
)

type fakeSource struct {
	mu      sync.Mutex
	repos   []domain.Repository
	err     error
	queries []Query
}

func (f *fakeSource) Page(ctx context.Context, q Query) (domain.PageData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.err != nil {
		return domain.PageData{}, f.err
	}
	all := make([]domain.Repository, len(f.repos))
	copy(all, f.repos)
	return domain.PageData{
		TotalCount:      len(all),
		Repositories:    window(all, q.Skip, q.Limit),
		AllRepositories: all,
		Platform:        "vim",
	}, nil
}

func (f *fakeSource) Close(ctx context.Context) error { return nil }

func fakeRepos(n int) []domain.Repository {
	repos := make([]domain.Repository, n)
	for i := range repos {
		repos[i] = domain.Repository{Name: fmt.Sprintf("scheme-%02d", i), Owner: domain.Owner{Name: "owner"}}
	}
	return repos
}

func TestLoaderLoadFillsContext(t *testing.T) {
	src := &fakeSource{repos: fakeRepos(50)}
	bus := eventbus.New()
	defer bus.Close()
	l := NewLoader(bus, src, 24)
	defer l.Stop()

	data, err := l.Load(context.Background(), "/top/page/3")
	require.NoError(t, err)
	assert.Equal(t, domain.PageContext{Limit: 24, Skip: 48, CurrentPage: 3, PageCount: 3}, data.Context)
	assert.Len(t, data.Repositories, 2)
	assert.Equal(t, Query{Sort: domain.SortStargazers, Skip: 48, Limit: 24}, src.queries[0])
}

func TestLoaderLoadRejectsPagePastEnd(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	l := NewLoader(bus, &fakeSource{repos: fakeRepos(10)}, 24)
	defer l.Stop()

	_, err := l.Load(context.Background(), "/page/2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 2 not found")
}

func TestLoaderAnswersPageRequests(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	l := NewLoader(bus, &fakeSource{repos: fakeRepos(30)}, 24)
	defer l.Stop()

	loaded := make(chan eventbus.PageLoadedEvent, 1)
	bus.Subscribe(eventbus.EventPageLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.PageLoadedEvent)
	})

	bus.Publish(eventbus.PageRequestedEvent{Seq: 7, Path: "/new/page/2"})

	select {
	case ev := <-loaded:
		assert.Equal(t, 7, ev.Seq)
		assert.Equal(t, "/new/page/2", ev.Path)
		assert.Equal(t, 2, ev.Data.Context.CurrentPage)
		assert.Len(t, ev.Data.Repositories, 6)
	case <-time.After(2 * time.Second):
		t.Fatal("no PageLoadedEvent")
	}
}

func TestLoaderPublishesErrors(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	l := NewLoader(bus, &fakeSource{err: errors.New("connection refused")}, 24)
	defer l.Stop()

	failed := make(chan eventbus.ErrorEvent, 1)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		failed <- e.(eventbus.ErrorEvent)
	})

	bus.Publish(eventbus.PageRequestedEvent{Seq: 3, Path: "/"})

	select {
	case ev := <-failed:
		assert.Equal(t, 3, ev.Seq)
		assert.Equal(t, "Failed to load /", ev.Message)
		assert.EqualError(t, ev.Err, "connection refused")
	case <-time.After(2 * time.Second):
		t.Fatal("no ErrorEvent")
	}
}

func TestLoaderPages(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	l := NewLoader(bus, &fakeSource{repos: fakeRepos(30)}, 24)
	defer l.Stop()

	paths, err := l.Pages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/", "/page/2",
		"/top", "/top/page/2",
		"/new", "/new/page/2",
		"/recent", "/recent/page/2",
	}, paths)
}

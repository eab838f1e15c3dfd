package catalog

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"schemegrip/internal/domain"
	"schemegrip/internal/eventbus"
)

// Loader answers PageRequestedEvents with PageLoadedEvents (or ErrorEvents)
type Loader struct {
	bus         eventbus.EventBus
	source      Source
	pageSize    int
	mu          sync.Mutex
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	unsubscribe func()
}

// NewLoader creates a loader and subscribes it to page requests
func NewLoader(bus eventbus.EventBus, source Source, pageSize int) *Loader {
	if pageSize < 1 {
		pageSize = domain.RepositoryCountPerPage
	}
	ctx, cancel := context.WithCancel(context.Background())
	l := &Loader{
		bus:      bus,
		source:   source,
		pageSize: pageSize,
		ctx:      ctx,
		cancel:   cancel,
	}

	l.unsubscribe = bus.Subscribe(eventbus.EventPageRequested, func(e eventbus.DomainEvent) {
		if req, ok := e.(eventbus.PageRequestedEvent); ok {
			l.handle(req)
		}
	})

	return l
}

func (l *Loader) handle(req eventbus.PageRequestedEvent) {
	l.mu.Lock()
	if l.ctx.Err() != nil {
		l.mu.Unlock()
		return
	}
	l.wg.Add(1)
	l.mu.Unlock()
	defer l.wg.Done()

	data, err := l.Load(l.ctx, req.Path)
	if err != nil {
		if l.ctx.Err() != nil {
			return
		}
		zap.L().Error("catalog: page load failed", zap.String("path", req.Path), zap.Error(err))
		l.bus.Publish(eventbus.ErrorEvent{
			Seq:     req.Seq,
			Message: fmt.Sprintf("Failed to load %s", req.Path),
			Err:     err,
		})
		return
	}

	zap.L().Debug("catalog: page loaded",
		zap.String("path", req.Path),
		zap.Int("total", data.TotalCount),
		zap.Int("page", data.Context.CurrentPage))
	l.bus.Publish(eventbus.PageLoadedEvent{Seq: req.Seq, Path: req.Path, Data: data})
}

// Load fetches the page at path and fills in its page context.
// Pages past the last one are an error.
func (l *Loader) Load(ctx context.Context, path string) (domain.PageData, error) {
	action, page := ParsePath(path)

	data, err := l.source.Page(ctx, QueryFor(action, page, l.pageSize))
	if err != nil {
		return domain.PageData{}, err
	}

	pages := PageContexts(data.TotalCount, l.pageSize)
	if page > len(pages) {
		return domain.PageData{}, fmt.Errorf("page %d not found: %s has %d pages", page, action.Label, len(pages))
	}
	data.Context = pages[page-1]
	return data, nil
}

// Pages returns the path of every page of every action, in the order a
// static build would generate them.
func (l *Loader) Pages(ctx context.Context) ([]string, error) {
	var paths []string
	for _, action := range domain.Actions {
		data, err := l.source.Page(ctx, QueryFor(action, 1, l.pageSize))
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", action.Label, err)
		}
		for _, pc := range PageContexts(data.TotalCount, l.pageSize) {
			paths = append(paths, PagePath(action, pc.CurrentPage))
		}
	}
	return paths, nil
}

// Stop unsubscribes and waits for in-flight loads to finish
func (l *Loader) Stop() {
	l.mu.Lock()
	l.cancel()
	l.mu.Unlock()

	if l.unsubscribe != nil {
		l.unsubscribe()
	}
	l.wg.Wait()
}

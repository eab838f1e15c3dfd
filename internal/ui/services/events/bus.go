package events

import (
	"fmt"
	"sync"
)

// Topical events name their own topic. Other events are keyed by their Go type.
type Topical interface {
	Topic() string
}

// EventBus is the publish/subscribe contract shared by the UI services
type EventBus interface {
	Publish(event interface{})
	Subscribe(eventType string, handler func(interface{}))
}

// Bus is a synchronous event bus for UI services.
// Handlers run on the publishing goroutine, which for UI services is the
// Bubble Tea update loop.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]func(interface{}){}, b.listeners[TopicOf(event)]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// TopicOf returns the topic an event is published under
func TopicOf(event interface{}) string {
	if t, ok := event.(Topical); ok {
		return t.Topic()
	}
	return fmt.Sprintf("%T", event)
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event interface{}) {}
func (n *NullBus) Subscribe(eventType string, handler func(interface{})) {}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/dispatcher.go
// Summary: Event dispatcher used by tabs to announce pane lifecycle changes.

package texel

import (
	"sync"

	"github.com/google/uuid"
)

// EventType defines the type of an event.
type EventType int

const (
	EventPaneAdded EventType = iota
	EventPaneCloseRequested
	EventPaneClosed
	EventPaneActiveChanged
	EventSettingsChanged
)

func (t EventType) String() string {
	switch t {
	case EventPaneAdded:
		return "pane-added"
	case EventPaneCloseRequested:
		return "pane-close-requested"
	case EventPaneClosed:
		return "pane-closed"
	case EventPaneActiveChanged:
		return "pane-active-changed"
	case EventSettingsChanged:
		return "settings-changed"
	default:
		return "unknown"
	}
}

// Event represents a message passed through the system.
type Event struct {
	Type    EventType
	Payload interface{}
}

// PanePayload accompanies every pane event.
type PanePayload struct {
	ID    uuid.UUID
	Title string
}

// Listener is an interface that any component can implement to receive events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a func to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// EventDispatcher manages a list of listeners and broadcasts events to them.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners []*Listener
}

func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{}
}

// Subscribe adds a listener and returns a func that removes it.
func (d *EventDispatcher) Subscribe(listener Listener) (unsubscribe func()) {
	entry := &listener
	d.mu.Lock()
	d.listeners = append(d.listeners, entry)
	d.mu.Unlock()
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		for i, l := range d.listeners {
			if l == entry {
				d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// Broadcast sends an event to all subscribed listeners.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	listeners := append([]*Listener(nil), d.listeners...)
	d.mu.RUnlock()
	for _, l := range listeners {
		(*l).OnEvent(event)
	}
}

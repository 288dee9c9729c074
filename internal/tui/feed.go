// Package tui renders watch-mode rebuild progress in the terminal.
package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
)

const feedBuffer = 64

// EventSource yields rebuild events until it is closed.
type EventSource interface {
	Read() (domain.RebuildEvent, error)
}

// Feed hands rebuild events from the dev compiler to the model.
type Feed struct {
	mu         sync.Mutex
	closed     bool
	events     chan domain.RebuildEvent
	done       chan struct{}
	detachOnce sync.Once
}

var (
	_ ports.RebuildReporter = (*Feed)(nil)
	_ EventSource           = (*Feed)(nil)
)

// NewFeed creates an open Feed.
func NewFeed() *Feed {
	return &Feed{
		events: make(chan domain.RebuildEvent, feedBuffer),
		done:   make(chan struct{}),
	}
}

// Report queues event. Events reported after Close or Detach are dropped.
func (f *Feed) Report(event domain.RebuildEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	select {
	case f.events <- event:
	case <-f.done:
	}
}

// Read blocks until the next event. It returns io.EOF once the feed is closed
// and drained.
func (f *Feed) Read() (domain.RebuildEvent, error) {
	event, ok := <-f.events
	if !ok {
		return domain.RebuildEvent{}, io.EOF
	}
	return event, nil
}

// Close ends the feed. It is safe to call more than once.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.closed {
		f.closed = true
		close(f.events)
	}
}

// Detach stops delivering events once the reader is gone.
func (f *Feed) Detach() {
	f.detachOnce.Do(func() { close(f.done) })
}

// WaitForFeed returns a command reading the next event from source.
// It yields MsgRebuild on success and MsgFeedEnded on EOF or error.
func WaitForFeed(source EventSource) tea.Cmd {
	return func() tea.Msg {
		event, err := source.Read()
		if err != nil {
			return MsgFeedEnded{}
		}
		return MsgRebuild{Event: event}
	}
}

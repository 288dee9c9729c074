package tui

import "go.trai.ch/lesstag/internal/core/domain"

// MsgRebuild carries one rebuild event.
type MsgRebuild struct {
	Event domain.RebuildEvent
}

// MsgLog carries one log line.
type MsgLog struct {
	Line string
}

// MsgFeedEnded is sent when the event feed is closed.
type MsgFeedEnded struct{}

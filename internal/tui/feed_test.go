package tui_test

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/tui"
)

func TestFeed_ReadAfterClose(t *testing.T) {
	feed := tui.NewFeed()
	event := domain.RebuildEvent{Source: "a.less", Status: domain.RebuildCompleted}
	feed.Report(event)
	feed.Close()

	got, err := feed.Read()
	require.NoError(t, err)
	assert.Equal(t, event, got)

	_, err = feed.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFeed_ReportAfterDetachDoesNotBlock(t *testing.T) {
	feed := tui.NewFeed()
	feed.Detach()

	done := make(chan struct{})
	go func() {
		for range 200 {
			feed.Report(domain.RebuildEvent{Source: "a.less"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Report blocked after Detach")
	}
}

func TestFeed_ReportAfterCloseIsDropped(t *testing.T) {
	feed := tui.NewFeed()
	feed.Close()

	assert.NotPanics(t, func() {
		feed.Report(domain.RebuildEvent{Source: "late.less", Status: domain.RebuildCompleted})
		feed.Close()
	})

	_, err := feed.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWaitForFeed(t *testing.T) {
	feed := tui.NewFeed()
	event := domain.RebuildEvent{Source: "a.less", Status: domain.RebuildStarted}
	feed.Report(event)
	feed.Close()

	assert.Equal(t, tui.MsgRebuild{Event: event}, tui.WaitForFeed(feed)())
	assert.Equal(t, tui.MsgFeedEnded{}, tui.WaitForFeed(feed)())
}

func TestLogWriter(t *testing.T) {
	var got []tea.Msg
	w := tui.NewLogWriter(func(msg tea.Msg) { got = append(got, msg) })

	input := "first\r\n\nsecond\n"
	n, err := w.Write([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, len(input), n)
	assert.Equal(t, []tea.Msg{tui.MsgLog{Line: "first"}, tui.MsgLog{Line: "second"}}, got)
}

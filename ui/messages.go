package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopadmin/admin"
)

// deps is what every screen and overlay shares.
type deps struct {
	ctx      context.Context
	console  *admin.Console
	log      *zap.Logger
	styles   Styles
	debounce time.Duration
}

// Messages addressed to one screen carry its id.
type targeted interface {
	target() string
}

type loadedMsg struct {
	screen string
	err    error
}

func (m loadedMsg) target() string { return m.screen }

type searchTickMsg struct {
	screen string
	seq    int
}

func (m searchTickMsg) target() string { return m.screen }

// resultMsg reports the end of an overlay's asynchronous operation.
type resultMsg struct {
	screen string
	err    error
}

func (m resultMsg) target() string { return m.screen }

// viewMsg delivers a loaded composite view to an overlay.
type viewMsg[V any] struct {
	screen string
	view   V
	err    error
}

func (m viewMsg[V]) target() string { return m.screen }

// run executes fn off the update loop and reports its error to screen.
func run(screen string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{screen: screen, err: fn()}
	}
}

// debounceSearch fires a searchTickMsg after d; only the newest seq applies.
func debounceSearch(screen string, seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return searchTickMsg{screen: screen, seq: seq}
	})
}

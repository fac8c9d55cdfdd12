package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/logtail"
	"github.com/five82/roster/internal/state"
)

// PageLoader answers a page request with PageLoaded or PageFailed.
type PageLoader interface {
	Load(ctx context.Context, seq uint64, page int) state.Action
}

// ActionRunner performs a simulated action and reports its outcome.
type ActionRunner interface {
	Run(ctx context.Context, kind state.ActionKind, emp directory.Employee) state.FinishAction
}

// Messages

type tickMsg time.Time

// requestMsg asks the model to request a page through the store.
type requestMsg struct {
	page  int
	force bool
}

// pageMsg carries the loader's answer for one request.
type pageMsg struct {
	action state.Action
}

type actionDoneMsg struct {
	result state.FinishAction
}

type activityMsg struct {
	lines []string
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func requestCmd(page int, force bool) tea.Cmd {
	return func() tea.Msg {
		return requestMsg{page: page, force: force}
	}
}

func loadPageCmd(ctx context.Context, loader PageLoader, seq uint64, page int) tea.Cmd {
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		return pageMsg{action: loader.Load(ctx, seq, page)}
	}
}

func runActionCmd(ctx context.Context, runner ActionRunner, kind state.ActionKind, emp directory.Employee) tea.Cmd {
	return func() tea.Msg {
		if runner == nil {
			return actionDoneMsg{result: state.FinishAction{Kind: kind, ID: emp.ID, Name: emp.DisplayName(), At: time.Now()}}
		}
		return actionDoneMsg{result: runner.Run(ctx, kind, emp)}
	}
}

func readActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.ReadEntries(path, ActivityLineLimit)
		if err != nil {
			return activityMsg{err: err}
		}
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, e.Format())
		}
		return activityMsg{lines: lines}
	}
}

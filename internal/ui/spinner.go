package ui

// spinner.go provides a blocking spinner for long-running operations.

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user presses ctrl+c while the spinner runs
var ErrCancelled = errors.New("cancelled")

type actionDoneMsg struct {
	err error
}

// ProgressMsg updates the spinner title while the action runs
type ProgressMsg string

type blockingSpinnerModel struct {
	spinner   spinner.Model
	title     string
	action    func(context.Context) error
	ctx       context.Context
	cancel    context.CancelFunc
	done      bool
	cancelled bool
	err       error
}

// RunWithSpinner executes an action while displaying a spinner.
//
// Example:
//
//	var runs []models.TimingRun
//	err := RunWithSpinner(ctx, "Sweeping rle...", func(ctx context.Context) error {
//	    var err error
//	    runs, err = runner.Sweep(ctx, bench.AlgoRLE, sizes, nil)
//	    return err
//	})
//
// ctrl+c cancels the action's context and RunWithSpinner returns ErrCancelled
// once the action has returned.
func RunWithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	_, wait := startSpinner(ctx, title, action)
	return wait()
}

// RunWithProgress is RunWithSpinner with a callback that replaces the title,
// suitable for passing down as a progress hook.
func RunWithProgress(ctx context.Context, title string, action func(ctx context.Context, progress func(string)) error) error {
	var p *tea.Program
	progress := func(s string) {
		if p != nil {
			p.Send(ProgressMsg(s))
		}
	}
	p, wait := startSpinner(ctx, title, func(ctx context.Context) error {
		return action(ctx, progress)
	})
	return wait()
}

func startSpinner(ctx context.Context, title string, action func(context.Context) error) (*tea.Program, func() error) {
	actx, cancel := context.WithCancel(ctx)

	m := blockingSpinnerModel{
		spinner: NewAppSpinner(),
		title:   title,
		action:  action,
		ctx:     actx,
		cancel:  cancel,
	}

	p := tea.NewProgram(m)
	wait := func() error {
		defer cancel()
		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("spinner program error: %w", err)
		}
		final := finalModel.(blockingSpinnerModel)
		if final.cancelled {
			return ErrCancelled
		}
		return final.err
	}
	return p, wait
}

func (m blockingSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runAction())
}

func (m blockingSpinnerModel) runAction() tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.action(m.ctx)}
	}
}

func (m blockingSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case ProgressMsg:
		m.title = string(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Wait for the action to observe the cancellation before quitting
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			m.cancel()
		}
	}

	return m, nil
}

func (m blockingSpinnerModel) View() string {
	if m.done {
		return ""
	}
	if m.cancelled {
		return fmt.Sprintf("%s %s", m.spinner.View(), RenderDim("cancelling..."))
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), RenderNormal(m.title))
}

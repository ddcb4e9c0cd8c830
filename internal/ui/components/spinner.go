// Package components holds small Bubble Tea programs used by the CLI.
package components

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examgen/internal/ui/theme"
)

// taskDoneMsg is sent once the wrapped task returns.
type taskDoneMsg struct{}

// spinnerModel animates a status line until the task finishes.
type spinnerModel struct {
	spin    spinner.Model
	label   string
	start   time.Time
	elapsed time.Duration
	done    bool
}

func newSpinnerModel(label string, start time.Time) spinnerModel {
	return spinnerModel{
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
		label: label,
		start: start,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		m.elapsed = msg.Time.Sub(m.start)
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// line is the status line; it is empty once the task is done so the
// terminal is left clean.
func (m spinnerModel) line() string {
	if m.done {
		return ""
	}
	status := m.label
	if s := int(m.elapsed.Seconds()); s > 0 {
		status = fmt.Sprintf("%s (%ds)", m.label, s)
	}
	return m.spin.View() + " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(status)
}

func (m spinnerModel) View() tea.View {
	return tea.NewView(m.line())
}

// RunWithSpinner runs task while a spinner labelled label animates on out,
// and returns task's error. Keyboard input is not read and signals are left
// to the caller's context.
func RunWithSpinner(ctx context.Context, out io.Writer, label string, task func(context.Context) error) error {
	p := tea.NewProgram(newSpinnerModel(label, time.Now()),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	errc := make(chan error, 1)
	go func() {
		errc <- task(ctx)
		p.Send(taskDoneMsg{})
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		slog.Debug("spinner stopped", "error", err)
	}
	return <-errc
}

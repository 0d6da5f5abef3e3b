package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/reclaimdev/reclaim/internal/progress"
)

type progressUpdateMsg progress.Update

type progressDoneMsg struct {
	err error
}

// progressModel shows a spinner plus a bar while a long operation runs
type progressModel struct {
	label   string
	spinner spinner.Model
	bar     progressbar.Model
	latest  progress.Update
	started time.Time
	err     error
}

func newProgressModel(label string) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = cursorStyle

	return progressModel{
		label:   label,
		spinner: s,
		bar:     progressbar.New(progressbar.WithDefaultGradient()),
		started: time.Now(),
	}
}

// Init starts the spinner
func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles spinner ticks and progress events
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressUpdateMsg:
		m.latest = progress.Update(msg)
		return m, nil

	case progressDoneMsg:
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		// The operation keeps running; only ctrl+c detaches the view.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the progress display
func (m progressModel) View() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(m.label)

	switch m.latest.Phase {
	case progress.PhaseDiscovering:
		b.WriteString(fmt.Sprintf(": scanning %s, %d found",
			m.latest.Category, m.latest.ItemsFound))
	case progress.PhaseSizing:
		b.WriteString(fmt.Sprintf(": measuring %d/%d", m.latest.ItemsDone, m.latest.ItemsTotal))
	case progress.PhaseDeleting:
		b.WriteString(fmt.Sprintf(": deleting %d/%d", m.latest.ItemsDone, m.latest.ItemsTotal))
	}

	b.WriteString(" ")
	b.WriteString(helpStyle.Render(fmt.Sprintf("(%s)", time.Since(m.started).Round(time.Second))))
	b.WriteString("\n")

	if m.latest.ItemsTotal > 0 {
		b.WriteString(m.bar.ViewAs(float64(m.latest.ItemsDone) / float64(m.latest.ItemsTotal)))
		b.WriteString("\n")
	}

	return b.String()
}

// RunWithProgress runs op while rendering its progress updates. On a TTY the
// updates drive a spinner and progress bar; otherwise they are drained
// silently and op runs as-is. The reporter must be the one op publishes to.
func RunWithProgress(reporter *progress.Reporter, label string, op func() error) error {
	updates := reporter.Subscribe()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		go func() {
			for range updates {
			}
		}()
		return op()
	}

	program := tea.NewProgram(newProgressModel(label))

	go func() {
		for u := range updates {
			program.Send(progressUpdateMsg(u))
		}
	}()
	go func() {
		program.Send(progressDoneMsg{err: op()})
	}()

	result, err := program.Run()
	if err != nil {
		return fmt.Errorf("progress display failed: %w", err)
	}
	if m, ok := result.(progressModel); ok {
		return m.err
	}
	return nil
}

// Package progressui renders a wave's completion progress to the
// terminal, grounded on the teacher-adjacent load-test dashboard model
// (bubbletea + bubbles/progress + lipgloss). It only ever reads the
// driver's monotonic completion counter; it has no effect on fetch
// semantics (spec §4.4.3).
package progressui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("207")).Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Counter is the subset of driver.Metrics the progress model polls.
type Counter interface {
	Completed() int64
}

type tickMsg time.Time

type doneMsg struct{}

// Model drives a single progress bar from 0 to total, polling Counter
// every 100ms until it reaches total.
type Model struct {
	label    string
	total    int
	counter  Counter
	bar      progress.Model
	done     bool
}

// New returns a progress model for a wave of total requests.
func New(label string, total int, counter Counter) Model {
	return Model{
		label:   label,
		total:   total,
		counter: counter,
		bar:     progress.New(progress.WithScaledGradient("#00FFFF", "#FF6B9D"), progress.WithoutPercentage()),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tickMsg:
		if m.total > 0 && int(m.counter.Completed()) >= m.total {
			m.done = true
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	completed := int(m.counter.Completed())
	frac := 0.0
	if m.total > 0 {
		frac = float64(completed) / float64(m.total)
	}

	header := labelStyle.Render(m.label)
	count := countStyle.Render(fmt.Sprintf("%d/%d", completed, m.total))
	return fmt.Sprintf("%s %s\n%s\n", header, count, m.bar.ViewAs(frac))
}

// Done reports whether the tracked wave reached its total.
func (m Model) Done() bool {
	return m.done
}

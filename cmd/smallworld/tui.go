package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TrungPhamSet99/small-world-network/pkg/sweep"
)

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			Padding(0, 1)

	tuiStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)
)

type progressMsg sweep.Progress

type doneMsg struct {
	result *sweep.Result
	err    error
}

// sweepModel renders a live progress bar while the sweep runs on its
// worker pool in the background.
type sweepModel struct {
	bar       progress.Model
	completed int
	total     int
	beta      float64
	result    *sweep.Result
	err       error
	aborted   bool
}

func newSweepModel() sweepModel {
	return sweepModel{bar: progress.New(progress.WithDefaultGradient())}
}

func (m sweepModel) Init() tea.Cmd {
	return nil
}

func (m sweepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	case progressMsg:
		m.completed = msg.Completed
		m.total = msg.Total
		m.beta = msg.Beta
		return m, nil
	case doneMsg:
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m sweepModel) View() string {
	percent := 0.0
	if m.total > 0 {
		percent = float64(m.completed) / float64(m.total)
	}
	status := fmt.Sprintf("%d/%d trials  beta=%s",
		m.completed, m.total, strconv.FormatFloat(m.beta, 'g', -1, 64))

	return tuiTitleStyle.Render("Small-world network sweep") + "\n" +
		tuiStatusStyle.Render(status) + "\n" +
		m.bar.ViewAs(percent) + "\n"
}

// runSweepTUI executes the sweep behind a bubbletea progress view and
// returns its result once the program exits.
func runSweepTUI(runner *sweep.Runner) (*sweep.Result, error) {
	program := tea.NewProgram(newSweepModel())

	runner.OnProgress(func(p sweep.Progress) {
		program.Send(progressMsg(p))
	})
	go func() {
		result, err := runner.Run()
		program.Send(doneMsg{result: result, err: err})
	}()

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("progress view: %w", err)
	}

	m := final.(sweepModel)
	if m.aborted {
		return nil, errors.New("sweep interrupted")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

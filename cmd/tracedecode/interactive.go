package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/tracedecode/fixture"
	"github.com/wippyai/tracedecode/memory"
	"github.com/wippyai/tracedecode/printer"
	"github.com/wippyai/tracedecode/xlat"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	callStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	argStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive scenario_file",
	Short: "Browse and decode the calls of a scenario in a terminal UI.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(newInteractiveModel(args[0]), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

type interactiveModel struct {
	err      error
	fix      *fixture.Fixture
	runner   *fixture.Runner
	rec      *memory.Recorder
	filename string
	line     string
	reads    []memory.ReadRecord
	outcome  fixture.Outcome
	input    textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateSelectCall modelState = iota
	stateEditArg
	stateShowResult
)

func newInteractiveModel(filename string) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		state:    stateSelectCall,
	}
}

type loadedMsg struct {
	err error
	fix *fixture.Fixture
}

type decodedMsg struct {
	line    string
	reads   []memory.ReadRecord
	outcome fixture.Outcome
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadScenario
}

func (m *interactiveModel) loadScenario() tea.Msg {
	f, err := fixture.Load(m.filename, nil)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{fix: f}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateEditArg {
			return m.updateEdit(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectCall && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectCall && m.fix != nil && m.selected < len(m.fix.Calls)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectCall:
				if m.fix != nil && len(m.fix.Calls) > 0 {
					return m, m.decodeCall(m.selected)
				}
			case stateShowResult:
				m.state = stateSelectCall
			}

		case "e":
			if m.state == stateSelectCall && m.fix != nil && len(m.fix.Calls) > 0 {
				m.prepareInput()
				m.state = stateEditArg
				return m, textinput.Blink
			}

		case "f":
			if m.state == stateSelectCall && m.fix != nil && len(m.fix.Calls) > 0 {
				c := &m.fix.Calls[m.selected]
				c.Failed = !c.Failed
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateSelectCall
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.fix = msg.fix
		m.rec = memory.NewRecorder(msg.fix.Memory)
		m.runner = fixture.NewRunner(msg.fix, m.rec)

	case decodedMsg:
		m.line = msg.line
		m.reads = msg.reads
		m.outcome = msg.outcome
		m.state = stateShowResult
	}

	return m, nil
}

func (m *interactiveModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateSelectCall
		m.err = nil
		return m, nil
	case "enter":
		v, err := strconv.ParseUint(strings.TrimSpace(m.input.Value()), 0, 64)
		if err != nil {
			m.err = fmt.Errorf("argument: %w", err)
			return m, nil
		}
		m.err = nil
		m.fix.Calls[m.selected].Arg = v
		m.state = stateSelectCall
		return m, m.decodeCall(m.selected)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = "0x1000"
	ti.Prompt = "arg: "
	ti.Width = 24
	ti.SetValue(xlat.Hex(m.fix.Calls[m.selected].Arg))
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) decodeCall(i int) tea.Cmd {
	c := m.fix.Calls[i]
	return func() tea.Msg {
		m.rec.Reset()
		out := printer.NewStyled()
		o := m.runner.Run(c, out)
		return decodedMsg{line: out.String(), reads: m.rec.Reads(), outcome: o}
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.fix == nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.fix == nil {
		return "Loading scenario..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("tracedecode"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectCall, stateEditArg:
		b.WriteString("Select a call to decode:\n\n")
		for i, c := range m.fix.Calls {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + formatCall(c)))
			} else {
				b.WriteString("  " + callStyle.Render(c.Subsystem+"("+c.Name) + ", " + argStyle.Render(xlat.Hex(c.Arg)) + ")" + failedMark(c))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateEditArg {
			b.WriteString(m.input.View())
			b.WriteString("\n")
			if m.err != nil {
				b.WriteString(errorStyle.Render(m.err.Error()))
				b.WriteString("\n")
			}
			b.WriteString(helpStyle.Render("enter decode • esc back"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter decode • e edit arg • f toggle failure • q quit"))
		}

	case stateShowResult:
		b.WriteString(m.line)
		b.WriteString("\n\n")
		if c := m.outcome.Call; c.Expect != nil {
			if m.outcome.Match {
				b.WriteString(okStyle.Render("matches expectation"))
			} else {
				b.WriteString(errorStyle.Render("expected " + *c.Expect))
			}
			b.WriteString("\n\n")
		}
		b.WriteString(fmt.Sprintf("Reads (%s):\n", m.outcome.Result))
		for _, rd := range m.reads {
			b.WriteString(fmt.Sprintf("  %s len %d: got %d %s\n",
				argStyle.Render(xlat.Hex(rd.Addr)), rd.Length, rd.Got, statusStyle(rd.Status).Render(rd.Status.String())))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func formatCall(c fixture.Call) string {
	return c.Subsystem + "(" + c.Name + ", " + xlat.Hex(c.Arg) + ")" + failedMark(c)
}

func failedMark(c fixture.Call) string {
	if c.Failed {
		return " = -1"
	}
	return ""
}

func statusStyle(s memory.Status) lipgloss.Style {
	if s == memory.StatusOK {
		return okStyle
	}
	return errorStyle
}

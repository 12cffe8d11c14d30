package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/dbgcon/console"
	"github.com/msto63/dbgcon/console/command"
)

// Model is the interactive console TUI: a scrolling transcript above a
// single input line. Every Enter submits one line to the console engine
// and appends the engine's output to the transcript.
type Model struct {
	con    *console.Console
	outBuf *bytes.Buffer
	prompt string

	// Status produces the right-hand side of the status bar (optional)
	Status func() string

	input    textinput.Model
	viewport viewport.Model

	width  int
	height int
	ready  bool

	// transcript lines; a slice stays safe under bubbletea's by-value
	// model copies, unlike strings.Builder
	transcript []string
	finalState command.State
}

// NewModel creates a TUI over a console whose Out writes into outBuf
func NewModel(con *console.Console, outBuf *bytes.Buffer, prompt string) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(prompt)
	ti.Placeholder = "type a command, 'help' lists all"
	ti.CharLimit = 512
	ti.Focus()

	m := Model{
		con:        con,
		outBuf:     outBuf,
		prompt:     prompt,
		input:      ti,
		finalState: command.StateContinue,
	}
	// Output produced before the TUI starts (startup scripts) opens the
	// transcript.
	m.drainOutput()
	return m
}

// FinalState reports why the TUI ended: StateQuit, StateRun, or
// StateContinue when the user aborted with Ctrl+C
func (m Model) FinalState() command.State {
	return m.finalState
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			m.input.Reset()
			m.appendLine(EchoStyle.Render(m.prompt + line))

			state, err := m.con.ExecInteractive(line)
			m.drainOutput()
			if err != nil {
				m.appendLine(RenderError(err.Error()))
			}
			if state.Terminal() {
				m.finalState = state
				return m, tea.Quit
			}
			m.refreshViewport()
			return m, nil

		case "ctrl+l":
			m.transcript = nil
			m.refreshViewport()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-7)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 7
		}
		m.input.Width = msg.Width - 6
		m.refreshViewport()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var s strings.Builder

	s.WriteString(TitleStyle.Render("dbgcon"))
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(InputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) appendLine(line string) {
	m.transcript = append(m.transcript, line)
}

// drainOutput moves everything the engine wrote into the transcript
func (m *Model) drainOutput() {
	out := m.outBuf.String()
	m.outBuf.Reset()
	if out == "" {
		return
	}
	m.appendLine(OutputStyle.Render(strings.TrimRight(out, "\n")))
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) renderFooter() string {
	help := "Enter: Execute • Ctrl+L: Clear • Ctrl+C: Abort"
	status := ""
	if m.Status != nil {
		status = m.Status()
	}

	pad := m.width - lipgloss.Width(help) - lipgloss.Width(status) - 4
	if pad < 0 {
		pad = 0
	}

	return StatusBarStyle.Width(m.width).Render(
		fmt.Sprintf("%s%s%s", help, strings.Repeat(" ", pad), status),
	)
}

// Run drives the TUI to completion and returns the console's final state
func Run(con *console.Console, outBuf *bytes.Buffer, prompt string, status func() string) (command.State, error) {
	m := NewModel(con, outBuf, prompt)
	m.Status = status
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return command.StateContinue, err
	}
	if m, ok := final.(Model); ok {
		return m.FinalState(), nil
	}
	return command.StateContinue, nil
}

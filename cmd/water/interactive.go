package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/water"
	"github.com/wippyai/water/parser"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	treeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	bytesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type entry struct {
	source string
	tree   string
	hex    string
	err    string
}

type replModel struct {
	input   textinput.Model
	history []entry
}

func newReplModel() *replModel {
	ti := textinput.New()
	ti.Placeholder = `(i32.add (i32.const 1) (i32.const 2))`
	ti.Prompt = "wat> "
	ti.Width = 72
	ti.Focus()
	return &replModel{input: ti}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			source := m.input.Value()
			if source != "" {
				m.history = append(m.history, evaluate(source))
				m.input.SetValue("")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate parses source as an instruction and emits its bytes.
func evaluate(source string) entry {
	e := entry{source: source}

	ins, err := water.ParseInstruction(source)
	if err != nil {
		e.err = parser.Render(unwrapSyntax(err), source)
		return e
	}
	e.tree = sprintInstruction(ins, 0)

	var buf bytes.Buffer
	if _, err := water.EmitInstruction(&buf, ins); err != nil {
		e.err = err.Error()
		return e
	}
	e.hex = fmt.Sprintf("% 02X", buf.Bytes())
	return e
}

func (m *replModel) View() string {
	var b bytes.Buffer

	b.WriteString(titleStyle.Render("water — instruction workbench"))
	b.WriteString("\n\n")

	tail := m.history
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}
	for _, e := range tail {
		b.WriteString("wat> " + e.source + "\n")
		if e.err != "" {
			b.WriteString(errorStyle.Render(e.err) + "\n")
		} else {
			b.WriteString(treeStyle.Render(e.tree) + "\n")
			if e.hex != "" {
				b.WriteString(bytesStyle.Render("bytes: "+e.hex) + "\n")
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: parse & emit • esc: quit"))
	b.WriteByte('\n')

	return b.String()
}

func runInteractive() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	p := tea.NewProgram(newReplModel())
	_, err := p.Run()
	return err
}

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/cql-codec/codec"
	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/frame"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateInput modelState = iota
	stateShowResult
)

type interactiveModel struct {
	err      error
	typ      *cqltype.Type
	result   string
	framed   string
	inputs   []textinput.Model
	focusIdx int
	state    modelState
}

const (
	inputType = iota
	inputHex
)

func newInteractiveModel() *interactiveModel {
	typeInput := textinput.New()
	typeInput.Prompt = "type: "
	typeInput.Placeholder = "list<int>"
	typeInput.Width = 40
	typeInput.Focus()

	hexInput := textinput.New()
	hexInput.Prompt = "hex:  "
	hexInput.Placeholder = "00000002 00000004 00000001 00000004 00000002 (empty = null)"
	hexInput.Width = 60

	return &interactiveModel{
		inputs: []textinput.Model{typeInput, hexInput},
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab":
			if m.state == stateInput {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "enter":
			switch m.state {
			case stateInput:
				m.decodeCell()
				m.state = stateShowResult
			case stateShowResult:
				m.state = stateInput
				m.result = ""
				m.framed = ""
				m.err = nil
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateInput
				m.result = ""
				m.framed = ""
				m.err = nil
			} else {
				return m, tea.Quit
			}
		}
	}

	if m.state == stateInput {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) decodeCell() {
	m.typ = nil
	m.result = ""
	m.framed = ""

	typ, err := cqltype.ParseTypeName(m.inputs[inputType].Value())
	if err != nil {
		m.err = err
		return
	}
	m.typ = typ

	hexStr := strings.ReplaceAll(m.inputs[inputHex].Value(), " ", "")
	var cell *frame.Slice
	if hexStr != "" {
		data, err := hex.DecodeString(hexStr)
		if err != nil {
			m.err = fmt.Errorf("decode hex: %w", err)
			return
		}
		if cell, err = frame.NewSlice(data, 0, len(data)); err != nil {
			m.err = err
			return
		}
	}

	v, err := codec.Dynamic.Decode(typ, cell)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.result = v.String()

	w := frame.NewCellWriter()
	if _, err := codec.Dynamic.Encode(typ, v, w); err == nil {
		m.framed = hex.EncodeToString(w.Bytes())
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CQL Cell Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateInput:
		b.WriteString("Enter a column type and cell contents:\n\n")
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter decode • esc quit"))

	case stateShowResult:
		if m.typ != nil {
			b.WriteString("Type:   ")
			b.WriteString(typeStyle.Render(m.typ.String()))
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString("Value:  ")
			b.WriteString(resultStyle.Render(m.result))
			b.WriteString("\nFramed: ")
			b.WriteString(m.framed)
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • esc back"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

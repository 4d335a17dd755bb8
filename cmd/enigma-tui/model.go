package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dd0wney/cluso-enigma/pkg/alphabet"
	"github.com/dd0wney/cluso-enigma/pkg/enigma"
)

type model struct {
	machine *enigma.Machine
	start   string // configuration the tape was started from

	plain  []byte
	cipher []byte
	lamp   byte

	input   textinput.Model
	editing bool

	help       help.Model
	keys       keyMap
	width      int
	height     int
	message    string
	messageErr bool
}

func initialModel(m *enigma.Machine) model {
	ti := textinput.New()
	ti.Placeholder = enigma.DefaultConfiguration
	ti.CharLimit = 120
	ti.Width = 60
	ti.Prompt = "> "

	return model{
		machine: m,
		start:   m.Configuration(),
		input:   ti,
		help:    help.New(),
		keys:    keys,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateTyping(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.input.SetValue(m.machine.Configuration())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Randomize):
		if err := m.machine.SetRandomConfiguration(enigma.DefaultRandomRotors, enigma.DefaultRandomPlugPairs); err != nil {
			m.fail(err)
			return m, nil
		}
		m.restart("Random configuration set")

	case key.Matches(msg, m.keys.Reset):
		if err := m.machine.SetConfiguration(m.start); err != nil {
			m.fail(err)
			return m, nil
		}
		m.restart("Reset to " + m.start)

	case key.Matches(msg, m.keys.Clear):
		m.restart("Tape cleared")

	case msg.Type == tea.KeyRunes:
		m.press(msg.Runes)
	}

	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		if err := m.machine.SetConfiguration(m.input.Value()); err != nil {
			m.fail(err)
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		m.restart("Configuration set")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// press encodes every letter among runes, lighting the lamp of the last one
func (m *model) press(runes []rune) {
	for _, r := range runes {
		if r >= 0x80 {
			continue
		}
		c, ok := alphabet.Fold(byte(r))
		if !ok {
			continue
		}
		out := m.machine.EncodeChar(c)
		m.plain = append(m.plain, c)
		m.cipher = append(m.cipher, out)
		m.lamp = out
	}
}

// restart clears the tape and makes the current configuration the new start
func (m *model) restart(message string) {
	m.start = m.machine.Configuration()
	m.plain = m.plain[:0]
	m.cipher = m.cipher[:0]
	m.lamp = 0
	m.message = message
	m.messageErr = false
}

func (m *model) fail(err error) {
	m.message = fmt.Sprintf("Error: %v", err)
	m.messageErr = true
}

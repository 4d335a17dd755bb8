package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-enigma/pkg/alphabet"
	"github.com/dd0wney/cluso-enigma/pkg/enigma"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB000")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	rotorStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#888888")).
			Padding(0, 1).
			MarginRight(1).
			Align(lipgloss.Center)

	reflectorStyle = rotorStyle.
			BorderForeground(lipgloss.Color("#FF00FF"))

	lampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444")).
			Padding(0, 1)

	litLampStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFD700")).
			Padding(0, 1)

	tapeBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(0, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

// lampRows is the lampboard layout of the German service machines
var lampRows = []string{"qwertzuio", "asdfghjk", "pyxcvbnml"}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Enigma"))
	s.WriteString("\n")

	s.WriteString(contentStyle.Render(m.renderRotors()))
	s.WriteString("\n")
	s.WriteString(contentStyle.Render(m.renderLampboard()))
	s.WriteString("\n")
	s.WriteString(contentStyle.Render(m.renderTape()))

	if m.editing {
		s.WriteString("\n")
		s.WriteString(contentStyle.Render(headerStyle.Render("Configuration") + "\n\n" + m.input.View()))
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("  ✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("  ✓ " + m.message))
		}
	}

	s.WriteString("\n")
	bindings := m.keys.ShortHelp()
	if m.editing {
		bindings = m.keys.editHelp()
	}
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(bindings)))

	return s.String()
}

// renderRotors shows the reflector and the rotors in configuration order,
// each with the letter in its window and its numeric position
func (m model) renderRotors() string {
	boxes := []string{reflectorStyle.Render("UKW\n" + m.machine.Reflector().Name())}

	for _, r := range m.machine.Chain().Rotors(enigma.ReflectorFirst) {
		window := strings.ToUpper(string(alphabet.Letter(r.Position())))
		boxes = append(boxes, rotorStyle.Render(fmt.Sprintf("%s\n%s\n%02d", r.Name(), window, r.Position())))
	}

	plugs := m.machine.Plugboard().String()
	if plugs == "" {
		plugs = "no plugs"
	}
	boxes = append(boxes, rotorStyle.Render("Plugboard\n"+plugs))

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m model) renderLampboard() string {
	rows := make([]string, len(lampRows))
	for i, row := range lampRows {
		lamps := make([]string, len(row))
		for j := 0; j < len(row); j++ {
			label := strings.ToUpper(row[j : j+1])
			if row[j] == m.lamp {
				lamps[j] = litLampStyle.Render(label)
			} else {
				lamps[j] = lampStyle.Render(label)
			}
		}
		rows[i] = strings.Repeat(" ", i) + lipgloss.JoinHorizontal(lipgloss.Top, lamps...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m model) renderTape() string {
	var s strings.Builder
	fmt.Fprintf(&s, "Key:    %s\n", m.start)
	fmt.Fprintf(&s, "Input:  %s\n", alphabet.Group(string(m.plain), 5))
	fmt.Fprintf(&s, "Output: %s", alphabet.Group(string(m.cipher), 5))
	return tapeBoxStyle.Render(s.String())
}

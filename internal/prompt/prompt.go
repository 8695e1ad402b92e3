package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var labels = [2]string{"First SVN URL", "Second SVN URL"}

// model asks for the two repository URLs, one field at a time.
type model struct {
	fields    [2]string
	focus     int
	done      bool
	cancelled bool

	titleStyle    lipgloss.Style
	labelStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	helpStyle     lipgloss.Style
}

func initialModel(url1, url2 string) model {
	m := model{
		fields: [2]string{url1, url2},

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
	if url1 != "" {
		m.focus = 1
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		if m.focus == len(m.fields)-1 {
			m.done = true
			return m, tea.Quit
		}
		m.focus++

	case tea.KeyTab, tea.KeyDown:
		m.focus = (m.focus + 1) % len(m.fields)

	case tea.KeyShiftTab, tea.KeyUp:
		m.focus = (m.focus + len(m.fields) - 1) % len(m.fields)

	case tea.KeyBackspace:
		if r := []rune(m.fields[m.focus]); len(r) > 0 {
			m.fields[m.focus] = string(r[:len(r)-1])
		}

	case tea.KeyCtrlU:
		m.fields[m.focus] = ""

	case tea.KeySpace:
		m.fields[m.focus] += " "

	case tea.KeyRunes:
		m.fields[m.focus] += string(key.Runes)
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Compare file versions"))
	b.WriteString("\n\n")

	for i, label := range labels {
		b.WriteString(m.labelStyle.Render(label))
		b.WriteString("\n")
		if i == m.focus {
			b.WriteString(m.selectedStyle.Render("> " + m.fields[i] + "_"))
		} else {
			b.WriteString(m.normalStyle.Render("  " + m.fields[i]))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.helpStyle.Render("Tab/↑↓: switch field | Enter: next/confirm | Ctrl+U: clear | Esc: cancel"))
	return b.String()
}

// URLs returns the trimmed field values and whether both are filled in and
// the prompt was confirmed.
func (m model) URLs() (string, string, bool) {
	url1 := strings.TrimSpace(m.fields[0])
	url2 := strings.TrimSpace(m.fields[1])
	return url1, url2, m.done && !m.cancelled && url1 != "" && url2 != ""
}

// AskURLs prompts for the two repository URLs, pre-filled with the given values.
// ok is false when the user cancels or leaves either URL blank.
func AskURLs(url1, url2 string) (string, string, bool, error) {
	p := tea.NewProgram(initialModel(url1, url2))
	final, err := p.Run()
	if err != nil {
		return "", "", false, fmt.Errorf("error running prompt: %w", err)
	}
	a, b, ok := final.(model).URLs()
	return a, b, ok, nil
}

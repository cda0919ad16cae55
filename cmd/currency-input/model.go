package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	currencyinput "github.com/goliatone/go-currencyinput"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	fieldStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	selStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
)

var (
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

// model hosts a currency field: key presses become edit proposals and the
// field decides what is displayed.
type model struct {
	field     *currencyinput.Field
	keys      keyMap
	help      help.Model
	cursor    int
	selectAll bool
	focused   bool
	trace     []traceEntry
	status    string
}

func newModel(field *currencyinput.Field) model {
	m := model{
		field:   field,
		keys:    defaultKeyMap(),
		help:    help.New(),
		focused: true,
	}
	m.cursor = m.textLen()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.field.EndEditing()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Finish):
		m.field.EndEditing()
		m.focused = false
		m.selectAll = false
		m.cursor = m.textLen()
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.ToggleSymbol):
		m.field.SetShowSymbol(!m.field.ShowSymbol())
		m.cursor = m.textLen()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if err := writeClipboard(m.field.Text()); err != nil {
			m.status = "copy failed: " + err.Error()
		} else {
			m.status = "copied " + m.field.Text()
		}
		return m, nil
	}

	if !m.focused {
		m.focused = true
		m.cursor = m.textLen()
	}

	switch {
	case key.Matches(msg, m.keys.SelectAll):
		m.selectAll = true
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(0)
	case key.Matches(msg, m.keys.End):
		m.moveCursor(m.textLen())
	case key.Matches(msg, m.keys.Backspace):
		m.erase(-1)
	case key.Matches(msg, m.keys.Delete):
		m.erase(1)
	case key.Matches(msg, m.keys.Paste):
		text, err := readClipboard()
		if err != nil {
			m.status = "paste failed: " + err.Error()
			break
		}
		m.replace(strings.TrimSpace(text))
	case msg.Type == tea.KeyRunes:
		m.replace(string(msg.Runes))
	}
	return m, nil
}

func (m *model) replace(text string) {
	if m.selectAll {
		m.apply(currencyinput.Proposal{Start: 0, End: m.textLen(), Replacement: text})
		return
	}
	m.apply(currencyinput.Insert(m.cursor, text))
}

func (m *model) erase(direction int) {
	switch {
	case m.selectAll:
		m.apply(currencyinput.Proposal{Start: 0, End: m.textLen()})
	case direction < 0 && m.cursor > m.prefixLen():
		m.apply(currencyinput.Proposal{Start: m.cursor - 1, End: m.cursor})
	case direction > 0 && m.cursor < m.textLen():
		m.apply(currencyinput.Proposal{Start: m.cursor, End: m.cursor + 1})
	}
}

func (m *model) apply(p currencyinput.Proposal) {
	before := []rune(m.field.Text())
	raw := string(before[:p.Start]) + p.Replacement + string(before[p.End:])

	decision := m.field.Apply(p)
	m.record(traceEntry{raw: raw, shown: m.field.Text(), accept: decision.Accept, err: decision.Err})

	m.selectAll = false
	m.status = ""
	switch {
	case decision.Err != nil:
		m.status = decision.Err.Error()
		m.moveCursor(m.cursor)
	case decision.Accept && m.field.Text() == raw:
		m.moveCursor(p.Start + utf8.RuneCountInString(p.Replacement))
	default:
		m.moveCursor(m.textLen())
	}
}

func (m *model) moveCursor(pos int) {
	m.selectAll = false
	if pos < m.prefixLen() {
		pos = m.prefixLen()
	}
	if pos > m.textLen() {
		pos = m.textLen()
	}
	m.cursor = pos
}

func (m model) textLen() int {
	return utf8.RuneCountInString(m.field.Text())
}

// prefixLen is the length of the symbol decoration the cursor stays out of.
func (m model) prefixLen() int {
	symbol := m.field.Attributes().CurrencySymbol
	if symbol == "" || !strings.HasPrefix(m.field.Text(), symbol+" ") {
		return 0
	}
	return utf8.RuneCountInString(symbol) + 1
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Currency input") + "\n")
	b.WriteString(fieldStyle.Render(m.renderField()) + "\n")
	b.WriteString(fmt.Sprintf("state: %s   value: %s\n", m.field.State(), m.field.Value()))
	if m.status != "" {
		b.WriteString(errStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + titleStyle.Render("Edits") + "\n")
	b.WriteString(renderTrace(m.trace))
	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m model) renderField() string {
	text := m.field.Text()
	if m.selectAll {
		return selStyle.Render(text)
	}
	if !m.focused {
		return text
	}

	runes := []rune(text)
	cursor := min(m.cursor, len(runes))
	under := " "
	rest := ""
	if cursor < len(runes) {
		under = string(runes[cursor])
		rest = string(runes[cursor+1:])
	}
	return string(runes[:cursor]) + cursorStyle.Render(under) + rest
}

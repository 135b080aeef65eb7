// Package ui renders the interactive progress view for directory-wide
// checks.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Event is one completed file.
type Event struct {
	Path      string
	HasErrors bool
	Cached    bool
}

type eventMsg Event
type doneMsg struct{}

type fileItem struct {
	path   string
	status string
}

type progressModel struct {
	title   string
	events  <-chan Event
	spinner spinner.Model
	items   []fileItem
	index   map[string]int
	doneCnt int
	errCnt  int
	width   int
	done    bool
}

// NewProgressModel returns a Bubble Tea model that renders per-file
// check progress. Close the events channel to finish.
func NewProgressModel(title string, files []string, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: "queued"})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.apply(Event(msg))
		return m, m.listenForEvent()
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *progressModel) apply(ev Event) {
	m.doneCnt++
	status := "ok"
	switch {
	case ev.HasErrors:
		status = "errors"
		m.errCnt++
	case ev.Cached:
		status = "cached"
	}
	if i, ok := m.index[ev.Path]; ok {
		m.items[i].status = status
	}
}

func (m *progressModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))

	header := fmt.Sprintf("%s (%d/%d)", m.title, m.doneCnt, len(m.items))
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	nameWidth := m.width - 12
	if nameWidth < 20 {
		nameWidth = 20
	}
	for _, item := range m.items {
		b.WriteString("  ")
		b.WriteString(runewidth.FillRight(runewidth.Truncate(item.path, nameWidth, "…"), nameWidth))
		b.WriteString(styleStatus(item.status).Render(item.status))
		b.WriteByte('\n')
	}
	if m.errCnt > 0 {
		b.WriteByte('\n')
		b.WriteString(styleStatus("errors").Render(fmt.Sprintf("%d file(s) with errors", m.errCnt)))
		b.WriteByte('\n')
	}
	return b.String()
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "ok", "cached":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "errors":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "queued":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

// Run drives the progress UI until the events channel closes.
func Run(title string, files []string, events <-chan Event) error {
	p := tea.NewProgram(NewProgressModel(title, files, events))
	_, err := p.Run()
	return err
}

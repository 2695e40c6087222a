package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/witherdream/internal/storage"
)

// Journal layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the worlds sidebar
	sidebarWidth       = 24  // Width of worlds sidebar
	maxDreams          = 200 // Max dreams to load
	allWorlds          = "All worlds"
)

// JournalKeyMap defines the key bindings for the journal browser.
type JournalKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextWorld key.Binding
	PrevWorld key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextWorld, k.PrevWorld, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextWorld, k.PrevWorld, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextWorld: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next world"),
		),
		PrevWorld: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev world"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing finished dreams.
type JournalModel struct {
	dreams      []storage.DreamEntry
	worlds      []storage.WorldStats
	worldCursor int // 0 is every world
	table       table.Model
	help        help.Model
	keys        JournalKeyMap
	width       int
	height      int
	err         error
	quitting    bool
	showSidebar bool
}

// NewJournalModel loads the journal and creates the browser.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	m := JournalModel{
		keys:        DefaultJournalKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		if m.dreams, m.err = store.RecentDreams(maxDreams); m.err == nil {
			m.worlds, m.err = store.WorldStats()
		}
	}

	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Dreamer", Width: 10},
		{Title: "World", Width: 15},
		{Title: "Items", Width: 18},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Give the items column whatever is left
	fixed := 0
	for i, c := range columns {
		if i != 3 {
			fixed += c.Width
		}
	}
	if extra := tableWidth - fixed - len(columns)*2; extra > columns[3].Width {
		columns[3].Width = min(extra, 40)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("93")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// selectedWorld returns the theme filter, or "" for every world.
func (m JournalModel) selectedWorld() string {
	if m.worldCursor == 0 || m.worldCursor > len(m.worlds) {
		return ""
	}
	return m.worlds[m.worldCursor-1].Theme
}

// visibleDreams returns the dreams matching the world filter.
func (m JournalModel) visibleDreams() []storage.DreamEntry {
	world := m.selectedWorld()
	if world == "" {
		return m.dreams
	}
	var out []storage.DreamEntry
	for _, d := range m.dreams {
		if d.Theme == world {
			out = append(out, d)
		}
	}
	return out
}

// updateTableRows fills the table from the filtered dreams.
func (m *JournalModel) updateTableRows() {
	dreams := m.visibleDreams()
	rows := make([]table.Row, len(dreams))
	for i, d := range dreams {
		items := strings.Join(d.Items, ", ")
		if items == "" {
			items = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", d.ID),
			d.Dreamer,
			d.Theme,
			items,
			formatDuration(d.Duration),
			d.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs float64) string {
	d := time.Duration(secs * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextWorld):
			m.worldCursor = (m.worldCursor + 1) % (len(m.worlds) + 1)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevWorld):
			m.worldCursor--
			if m.worldCursor < 0 {
				m.worldCursor = len(m.worlds)
			}
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("183"))

	title := "DREAM JOURNAL"
	if world := m.selectedWorld(); world != "" {
		title = fmt.Sprintf("DREAM JOURNAL - %s", world)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(m.renderWorldTab(), m.width))
		b.WriteString("\n\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the worlds with their dream counts.
func (m JournalModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Worlds\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	entries := []string{fmt.Sprintf("%s (%d)", allWorlds, len(m.dreams))}
	for _, w := range m.worlds {
		entries = append(entries, fmt.Sprintf("%s (%d)", w.Theme, w.Dreams))
	}
	for i, name := range entries {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.worldCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sb.WriteString(style.Render(cursor + name))
		sb.WriteString("\n")
	}

	if m.worldCursor > 0 && m.worldCursor <= len(m.worlds) {
		w := m.worlds[m.worldCursor-1]
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("time  %s\n", formatDuration(w.TotalDuration)))
		sb.WriteString(fmt.Sprintf("items %d\n", w.ItemsFound))
	}

	return sidebarStyle.Render(sb.String())
}

// renderWorldTab shows the current filter for narrow terminals.
func (m JournalModel) renderWorldTab() string {
	name := m.selectedWorld()
	if name == "" {
		name = allWorlds
	}
	return fmt.Sprintf("< %s >", name)
}

// renderTableContent renders the table or an empty message.
func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.err.Error())
	case len(m.dreams) == 0:
		return emptyStyle.Render("No dreams recorded yet.\nLie down and fall asleep!")
	}
	return m.table.View()
}

// RunJournal runs the journal browser.
func RunJournal(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewJournalModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

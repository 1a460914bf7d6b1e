package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Simple delegate for clip list items.
type clipDelegate struct {
	offset int
}

func (d clipDelegate) Height() int  { return 1 }
func (d clipDelegate) Spacing() int { return 0 }
func (d clipDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d clipDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	row, ok := item.(clipItem)
	if !ok {
		return
	}

	isSelected := index == l.Index()

	var nameStyle, countStyle, pathStyle lipgloss.Style

	pathWidth := l.Width() - clipColumnWidth - 10 // count (6) + spacing (4)
	displayPath := truncateToWidth(string(row.clip.AssetPath), pathWidth)

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		nameStyle, pathStyle = selected, selected
		countStyle = selected.Width(6).Align(lipgloss.Right)

		displayPath = animateScroll(string(row.clip.AssetPath), pathWidth, d.offset)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(6).
			Align(lipgloss.Right)
	}

	line := fmt.Sprintf("%s  %s  %s",
		nameStyle.Render(padToWidth(row.clip.Name, clipColumnWidth)),
		countStyle.Render(fmt.Sprintf("%d", row.clip.Bindings)),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

// clipsModel lists the animation clips of a project.
type clipsModel struct {
	width         int
	height        int
	clipList      list.Model
	delegate      clipDelegate
	total         int
	totalBindings int
	err           error
	rendered      bool
	animOffset    int
	lastSelected  int
}

func newClipsModel() clipsModel {
	delegate := clipDelegate{}
	clipList := list.New([]list.Item{}, delegate, 80, 20)
	clipList.SetShowPagination(false)
	clipList.SetShowFilter(true)
	clipList.SetShowHelp(false)
	clipList.SetShowTitle(false)
	clipList.SetShowStatusBar(false)
	clipList.FilterInput.Placeholder = "Filter by clip or path…"

	return clipsModel{
		clipList:     clipList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m clipsModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m clipsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clipList.SetWidth(m.width)

	case tickMsg:
		if m.clipList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.clipList.SetDelegate(m.delegate)
		}

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		if m.clipList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		m.clipList, cmd = m.clipList.Update(msg)

		// Detect selection change to reset animation
		if m.clipList.Index() != m.lastSelected {
			m.lastSelected = m.clipList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.clipList.SetDelegate(m.delegate)
		}

		return m, cmd

	case clipsMsg:
		m = m.handleClipsMsg(msg)
	}

	return m, cmd
}

func (m clipsModel) handleClipsMsg(msg clipsMsg) clipsModel {
	m.rendered = true
	m.err = msg.err

	if msg.err != nil {
		return m
	}

	m.total = len(msg.clips)
	m.totalBindings = 0

	items := make([]list.Item, 0, len(msg.clips))
	for _, clip := range msg.clips {
		items = append(items, clipItem{clip: clip})
		m.totalBindings += clip.Bindings
	}

	m.clipList.SetItems(items)

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

// Summary is printed after the program exits.
func (m clipsModel) Summary() string {
	if !m.rendered {
		return ""
	}

	if m.err != nil {
		return fmt.Sprintf("clip listing error: %v", m.err)
	}

	return fmt.Sprintf("Total Clips: %d  Bindings: %d", m.total, m.totalBindings)
}

func (m clipsModel) View() string {
	if !m.rendered {
		return "Loading animation clips…\n"
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	title := titleStyle().Render("🎞  Animation Clips")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 2)

		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			errStyle.Render(fmt.Sprintf("clip listing error: %v", m.err)),
			footerStyle(m.width).Render("q quit"),
		)
	}

	summary := summaryStyle().Render(fmt.Sprintf(
		"Total Clips: %s   Bindings: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalBindings)),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		footerStyle(m.width).Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit"),
	)
}

func (m clipsModel) renderTable() string {
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6
	if listWidth < 40 {
		listWidth = 40
	}

	m.clipList.SetHeight(listHeight)
	m.clipList.SetWidth(listWidth)

	headers := headerStyle(listWidth).Render(fmt.Sprintf("%s  %6s  %s",
		padToWidth("Animation Clip", clipColumnWidth), "Curves", "Asset"))

	return boxStyle(lipgloss.Color("6")).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.clipList.View(),
		),
	)
}

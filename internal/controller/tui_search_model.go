package controller

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/animfind/internal/model"
)

const (
	clipColumnWidth = 24
	pathColumnShare = 3 // path column gets 1/3 of the remaining width
)

// resultDelegate renders one result row: clip, path, property.
type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	row, ok := item.(resultItem)
	if !ok {
		return
	}

	clipWidth, pathWidth, propWidth := resultColumns(l.Width())
	isSelected := index == l.Index()

	var clipStyle, pathStyle, propStyle lipgloss.Style

	property := truncateToWidth(row.result.PropertyName, propWidth)

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		clipStyle, pathStyle, propStyle = selected, selected, selected
		property = animateScroll(row.result.PropertyName, propWidth, d.offset)
	} else {
		clipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		propStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	}

	line := fmt.Sprintf("%s  %s  %s",
		clipStyle.Render(padToWidth(row.result.ClipName, clipWidth)),
		pathStyle.Render(padToWidth(row.result.BindingPath, pathWidth)),
		propStyle.Render(property),
	)
	_, _ = fmt.Fprint(w, line)
}

// resultColumns splits a row width into clip, path and property widths.
func resultColumns(width int) (int, int, int) {
	remaining := width - clipColumnWidth - 4
	if remaining < 20 {
		remaining = 20
	}

	pathWidth := remaining / pathColumnShare

	return clipColumnWidth, pathWidth, remaining - pathWidth
}

// searchModel shows scan progress, then the result list.
type searchModel struct {
	width        int
	height       int
	progressBar  progress.Model
	progress     m.Progress
	cancel       context.CancelFunc
	cancelling   bool
	finished     bool
	outcome      m.SearchOutcome
	resultsList  list.Model
	delegate     resultDelegate
	animOffset   int
	lastSelected int
	pinged       *m.Result
}

func newSearchModel(cancel context.CancelFunc) searchModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := resultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return searchModel{
		progressBar:  prog,
		cancel:       cancel,
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m searchModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouseMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)

	case progressMsg:
		m.progress = msg.progress

	case resultsMsg:
		m = m.handleResults(msg)
	}

	return m, cmd
}

func (m searchModel) handleWindowSize(msg tea.WindowSizeMsg) searchModel {
	m.width = msg.Width
	m.height = msg.Height

	m.progressBar.Width = m.width - 8
	if m.progressBar.Width < 20 {
		m.progressBar.Width = 20
	}

	return m
}

func (m searchModel) handleResults(msg resultsMsg) searchModel {
	m.outcome = msg.outcome
	m.finished = true
	m.cancelling = false
	m.pinged = nil

	items := make([]list.Item, 0, len(msg.outcome.Results))
	for _, r := range msg.outcome.Results {
		items = append(items, resultItem{result: r})
	}

	m.resultsList.ResetFilter()
	m.resultsList.SetItems(items)
	m.resultsList.Select(0)

	if len(items) > 0 {
		m.lastSelected = 0
	}

	return m
}

func (m searchModel) handleKeyMsg(msg tea.KeyMsg) (searchModel, tea.Cmd) {
	if !m.finished {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.cancelling || m.cancel == nil {
				return m, tea.Quit
			}

			// Cooperative: the scan notices at the next clip boundary.
			m.cancel()
			m.cancelling = true
		}

		return m, nil
	}

	if m.resultsList.FilterState() == list.Filtering {
		return m.updateList(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter", " ":
		m.pingSelected()
		return m, nil
	}

	return m.updateList(msg)
}

func (m searchModel) handleMouseMsg(msg tea.MouseMsg) (searchModel, tea.Cmd) {
	if !m.finished {
		return m, nil
	}

	m, cmd := m.updateList(msg)

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && m.resultsList.FilterState() != list.Filtering {
		m.pingSelected()
	}

	return m, cmd
}

func (m searchModel) updateList(msg tea.Msg) (searchModel, tea.Cmd) {
	var cmd tea.Cmd

	m.resultsList, cmd = m.resultsList.Update(msg)

	// Detect selection change to reset animation
	if m.resultsList.Index() != m.lastSelected {
		m.lastSelected = m.resultsList.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, cmd
}

// pingSelected remembers the highlighted result so its asset is shown in the footer.
func (m *searchModel) pingSelected() {
	row, ok := m.resultsList.SelectedItem().(resultItem)
	if !ok {
		return
	}

	result := row.result
	m.pinged = &result
}

func (m searchModel) handleTickMsg(_ tickMsg) (searchModel, tea.Cmd) {
	if m.finished && m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Summary is printed after the program exits.
func (m searchModel) Summary() string {
	if !m.finished {
		return ""
	}

	summary := m.outcome.StatusText()
	if m.pinged != nil {
		summary += fmt.Sprintf("\nSelected: %s (%s)", m.pinged.AssetPath, m.pinged.GUID)
	}

	return summary
}

func (m searchModel) View() string {
	if m.finished {
		return m.viewResults()
	}

	return m.viewProgress()
}

func (m searchModel) viewProgress() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Padding(0, 2)

	summary := summaryStyle().Render(fmt.Sprintf(
		"Scanning %s / %s",
		accentStyle.Render(fmt.Sprintf("%d", m.progress.Current)),
		accentStyle.Render(fmt.Sprintf("%d", m.progress.Total)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.progress.Percent()))

	current := pathStyle.Render(truncateToWidth(string(m.progress.AssetPath), m.width-4))

	footerText := "q cancel search"
	if m.cancelling {
		footerText = "Cancelling… (q again to quit)"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle().Render("🎞  Animation Property Finder"),
		summary,
		progressView,
		current,
		"",
		footerStyle(m.width).Render(footerText),
	)
}

func (m searchModel) viewResults() string {
	accentColor := lipgloss.Color("6")
	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	summary := summaryStyle().Render(fmt.Sprintf(
		"%s  •  Object: %s  •  Property: %s  •  Clips: %s",
		accentStyle.Render(m.outcome.StatusText()),
		accentStyle.Render(m.outcome.Query.ObjectPath),
		accentStyle.Render(m.outcome.Query.Property),
		accentStyle.Render(fmt.Sprintf("%d/%d", m.outcome.Scanned, m.outcome.Total)),
	))

	footerText := "↑/k up • ↓/j down • / filter • enter select • q quit"
	if m.pinged != nil {
		footerText = fmt.Sprintf("Selected: %s (%s)", m.pinged.AssetPath, m.pinged.GUID)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle().Render("🎞  Animation Property Finder"),
		summary,
		m.renderResultsBox(accentColor),
		footerStyle(m.width).Render(footerText),
	)
}

func (m searchModel) renderResultsBox(accentColor lipgloss.Color) string {
	listWidth := m.width - 6
	if listWidth < 40 {
		listWidth = 40
	}

	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	clipWidth, pathWidth, _ := resultColumns(listWidth)

	headers := headerStyle(listWidth).Render(fmt.Sprintf("%s  %s  %s",
		padToWidth("Animation Clip", clipWidth),
		padToWidth("Path", pathWidth),
		"Property",
	))

	return boxStyle(accentColor).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.resultsList.View(),
		),
	)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)
}

func summaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)
}

func headerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(width)
}

func boxStyle(accentColor lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1).
		Padding(0, 1)
}

func footerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(width)
}

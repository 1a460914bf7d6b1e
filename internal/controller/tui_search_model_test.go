package controller

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/animfind/internal/model"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSearchModel_ProgressView(t *testing.T) {
	model := newSearchModel(nil)
	require.NotNil(t, model.Init())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	updated, _ = updated.Update(progressMsg{progress: m.Progress{Current: 3, Total: 10, AssetPath: "Assets/Walk.anim"}})

	view := updated.View()
	assert.Contains(t, view, "Animation Property Finder")
	assert.Contains(t, view, "Assets/Walk.anim")
	assert.Contains(t, view, "q cancel search")

	sm := updated.(searchModel)
	assert.Equal(t, 3, sm.progress.Current)
	assert.Equal(t, 92, sm.progressBar.Width)
	assert.Empty(t, sm.Summary())
}

func TestSearchModel_CancelThenQuit(t *testing.T) {
	cancelled := 0
	model := newSearchModel(func() { cancelled++ })

	updated, cmd := model.Update(keyRunes("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, cancelled)

	sm := updated.(searchModel)
	assert.True(t, sm.cancelling)
	assert.Contains(t, sm.View(), "Cancelling")

	_, cmd = sm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 1, cancelled)
}

func TestSearchModel_QuitWithoutCancelFunc(t *testing.T) {
	model := newSearchModel(nil)

	_, cmd := model.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestSearchModel_ResultsAndSelection(t *testing.T) {
	model := newSearchModel(func() {})

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	updated, _ = updated.Update(resultsMsg{outcome: sampleOutcome()})

	sm := updated.(searchModel)
	require.True(t, sm.finished)
	assert.Len(t, sm.resultsList.Items(), 2)
	assert.Equal(t, 0, sm.lastSelected)

	view := sm.View()
	assert.Contains(t, view, "Results: 2")
	assert.Contains(t, view, "Animation Clip")
	assert.Contains(t, view, "Root/Arm")

	updated, _ = sm.Update(keyRunes("j"))
	sm = updated.(searchModel)
	assert.Equal(t, 1, sm.resultsList.Index())
	assert.Equal(t, 1, sm.lastSelected)

	updated, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm = updated.(searchModel)
	require.NotNil(t, sm.pinged)
	assert.Equal(t, "m_LocalPosition.y", sm.pinged.PropertyName)
	assert.Contains(t, sm.View(), "Selected: Assets/Walk.anim (g1)")

	summary := sm.Summary()
	assert.True(t, strings.HasPrefix(summary, "Results: 2"))
	assert.Contains(t, summary, "Selected: Assets/Walk.anim (g1)")

	_, cmd := sm.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestSearchModel_TickAnimatesOnlyWhenFinished(t *testing.T) {
	model := newSearchModel(nil)

	updated, cmd := model.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.Equal(t, 0, updated.(searchModel).animOffset)

	updated, _ = updated.Update(resultsMsg{outcome: sampleOutcome()})
	updated, cmd = updated.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, updated.(searchModel).animOffset)
}

func TestSearchModel_MissingInputSummary(t *testing.T) {
	model := newSearchModel(nil)

	updated, _ := model.Update(resultsMsg{outcome: m.SearchOutcome{Status: m.StatusMissingInput}})

	sm := updated.(searchModel)
	assert.Empty(t, sm.resultsList.Items())
	assert.Equal(t, "Error: Missing Input", sm.Summary())

	// Enter on an empty list selects nothing
	updated, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, updated.(searchModel).pinged)
}

func TestResultColumns(t *testing.T) {
	clip, path, prop := resultColumns(100)
	assert.Equal(t, clipColumnWidth, clip)
	assert.Equal(t, 100-clipColumnWidth-4, path+prop)

	_, path, prop = resultColumns(10)
	assert.Equal(t, 20, path+prop)
}

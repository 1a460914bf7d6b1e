package controller

import (
	"time"

	m "github.com/mouse-blink/animfind/internal/model"
)

// Message types.
type tickMsg time.Time

type progressMsg struct {
	progress m.Progress
}

type resultsMsg struct {
	outcome m.SearchOutcome
}

type clipsMsg struct {
	clips []m.ClipSummary
	err   error
}

// List item types.
type resultItem struct {
	result m.Result
}

func (r resultItem) FilterValue() string {
	return r.result.ClipName + " " + r.result.BindingPath + " " + r.result.PropertyName
}

type clipItem struct {
	clip m.ClipSummary
}

func (c clipItem) FilterValue() string {
	return c.clip.Name + " " + string(c.clip.AssetPath)
}

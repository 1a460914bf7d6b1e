// Package controller provides the presentation layer for animfind: a plain
// writer for pipes and scripts and an interactive Bubble Tea UI for terminals.
package controller

import (
	"context"

	m "github.com/mouse-blink/animfind/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSearch StartMode = iota
	ModeClips
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	cancel context.CancelFunc
}

// WithSearchMode starts the UI in search mode. cancel is invoked when the
// user asks to stop a running scan.
func WithSearchMode(cancel context.CancelFunc) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSearch
		c.cancel = cancel
	}
}

// WithClipsMode starts the UI in clip listing mode.
func WithClipsMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeClips
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeSearch}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how search progress and results are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() error // Wait for UI to finish (user closes it)
	DisplayProgress(progress m.Progress)
	DisplayResults(outcome m.SearchOutcome) error
	DisplayClips(clips []m.ClipSummary, err error) error
	DisplayPresets(presets []string) error
}

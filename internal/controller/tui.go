package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/animfind/internal/model"
)

// summarizer is implemented by models that leave a line behind after the
// alternate screen is torn down.
type summarizer interface {
	Summary() string
}

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	input   io.Reader
	mu      sync.Mutex
	program *tea.Program
	group   *errgroup.Group
	final   tea.Model
	started bool
	waited  bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	var model tea.Model

	switch cfg.mode {
	case ModeClips:
		model = newClipsModel()
	default:
		model = newSearchModel(cfg.cancel)
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	program := tea.NewProgram(model, opts...)
	group := &errgroup.Group{}

	group.Go(func() error {
		final, err := program.Run()

		t.mu.Lock()
		t.final = final
		t.mu.Unlock()

		if err != nil {
			return fmt.Errorf("run tui: %w", err)
		}

		return nil
	})

	t.program = program
	t.group = group
	t.started = true

	return nil
}

// send forwards msg to the running program; it is a no-op before Start.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// Wait blocks until the user closes the UI, then prints the model summary.
func (t *TUI) Wait() error {
	t.mu.Lock()
	group := t.group
	t.mu.Unlock()

	if group == nil {
		return nil
	}

	err := group.Wait()

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.waited {
		t.waited = true

		if s, ok := t.final.(summarizer); ok && s.Summary() != "" {
			_, _ = fmt.Fprintln(t.output, s.Summary())
		}
	}

	return err
}

// Close stops the program and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Quit()
	}

	_ = t.Wait()
}

// DisplayProgress updates the progress bar.
func (t *TUI) DisplayProgress(progress m.Progress) {
	t.send(progressMsg{progress: progress})
}

// DisplayResults switches the search view to the results list.
func (t *TUI) DisplayResults(outcome m.SearchOutcome) error {
	t.send(resultsMsg{outcome: outcome})
	return nil
}

// DisplayClips fills the clip list or reports the enumeration error.
func (t *TUI) DisplayClips(clips []m.ClipSummary, err error) error {
	t.send(clipsMsg{clips: clips, err: err})
	return err
}

// DisplayPresets prints presets; the list is short enough not to need a program.
func (t *TUI) DisplayPresets(presets []string) error {
	for _, p := range presets {
		if _, err := fmt.Fprintln(t.output, p); err != nil {
			return err
		}
	}

	return nil
}

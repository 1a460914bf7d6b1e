package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mouse-blink/animfind/internal/adapter"
	"github.com/mouse-blink/animfind/internal/controller"
	m "github.com/mouse-blink/animfind/internal/model"
)

// SearchArgs holds the parameters for a property search.
type SearchArgs struct {
	Query  m.Query
	Preset string
}

// ListArgs holds the parameters for listing clips.
type ListArgs struct {
	// Name optionally filters clips by name using the property query syntax.
	Name string
}

// Workflow defines the user-facing operations of the property finder.
type Workflow interface {
	Search(ctx context.Context, args SearchArgs) (m.SearchOutcome, error)
	ListClips(args ListArgs) error
	Presets() error
}

type workflow struct {
	assets  adapter.AssetDatabase
	ui      controller.UI
	log     Logger
	scanner Scanner
	presets []string
	newID   func() string
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*workflow)

// WithPresets appends extra property presets after the built-in ones.
func WithPresets(extra ...string) WorkflowOption {
	return func(w *workflow) {
		w.presets = append(w.presets, extra...)
	}
}

// NewWorkflow creates a new Workflow reading clips from assets and reporting to ui.
func NewWorkflow(assets adapter.AssetDatabase, ui controller.UI, log Logger, opts ...WorkflowOption) Workflow {
	w := &workflow{
		assets:  assets,
		ui:      ui,
		log:     log,
		scanner: NewScanner(assets, log),
		newID:   uuid.NewString,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Search runs one property search and hands the outcome to the UI. The UI
// may cancel the scan; the partial outcome is still displayed and returned.
func (w *workflow) Search(ctx context.Context, args SearchArgs) (m.SearchOutcome, error) {
	query := ApplyPreset(args.Query, args.Preset).Resolve()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.ui.Start(controller.WithSearchMode(cancel)); err != nil {
		return m.SearchOutcome{}, fmt.Errorf("failed to start UI: %w", err)
	}

	var guids []m.GUID

	if ValidateQuery(query) == nil {
		var err error

		guids, err = w.assets.ListAssetsByType(m.AssetTypeAnimationClip)
		if err != nil {
			w.ui.Close()
			return m.SearchOutcome{}, fmt.Errorf("list animation clips: %w", err)
		}

		w.log.LogDebug(fmt.Sprintf("searching %d animation clips", len(guids)))
	}

	outcome := w.scanner.Scan(ctx, query, guids, WithProgress(w.ui.DisplayProgress))
	outcome.ID = w.newID()

	if err := w.ui.DisplayResults(outcome); err != nil {
		w.ui.Close()
		return outcome, fmt.Errorf("display results: %w", err)
	}

	if err := w.ui.Wait(); err != nil {
		return outcome, err
	}

	return outcome, nil
}

// ListClips loads every animation clip and reports its binding count.
func (w *workflow) ListClips(args ListArgs) error {
	if err := w.ui.Start(controller.WithClipsMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	clips, err := w.summarizeClips(args)

	displayErr := w.ui.DisplayClips(clips, err)

	if waitErr := w.ui.Wait(); waitErr != nil {
		return waitErr
	}

	return displayErr
}

func (w *workflow) summarizeClips(args ListArgs) ([]m.ClipSummary, error) {
	guids, err := w.assets.ListAssetsByType(m.AssetTypeAnimationClip)
	if err != nil {
		return nil, fmt.Errorf("list animation clips: %w", err)
	}

	var matcher Matcher
	if args.Name != "" {
		matcher = CompilePattern(args.Name)
	}

	clips := make([]m.ClipSummary, 0, len(guids))

	for _, guid := range guids {
		path := w.assets.ResolvePath(guid)
		if path == "" {
			continue
		}

		clip, err := w.assets.LoadClip(path)
		if err != nil || clip == nil {
			w.log.LogDebug(fmt.Sprintf("skipping %s: %v", path, err))
			continue
		}

		if matcher == nil || matcher.Match(clip.Name) {
			clips = append(clips, m.ClipSummary{
				AssetPath: path,
				GUID:      guid,
				Name:      clip.Name,
				Bindings:  len(clip.Bindings),
			})
		}

		w.assets.UnloadClip(path)
	}

	return clips, nil
}

// Presets displays the property presets.
func (w *workflow) Presets() error {
	return w.ui.DisplayPresets(Presets(w.presets...))
}

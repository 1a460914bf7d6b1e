package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/mouse-blink/animfind/internal/adapter"
	m "github.com/mouse-blink/animfind/internal/model"
)

// Logger is the subset of the console logger the search needs.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
}

// ProgressFunc receives scan progress. It must not block for long; the
// scan runs on the caller's goroutine.
type ProgressFunc func(progress m.Progress)

// ScanOption configures a single Scan call.
type ScanOption func(*scanConfig)

type scanConfig struct {
	progress ProgressFunc
}

// WithProgress subscribes fn to progress updates.
func WithProgress(fn ProgressFunc) ScanOption {
	return func(c *scanConfig) {
		c.progress = fn
	}
}

func (c scanConfig) report(p m.Progress) {
	if c.progress != nil {
		c.progress(p)
	}
}

// Scanner finds bindings that match a query across animation clips.
type Scanner interface {
	// Scan enumerates guids in order and returns every binding whose path
	// contains query.ObjectPath (case-sensitive) and whose property name
	// matches query.Property. Cancelling ctx stops the scan at the next clip
	// boundary and returns the results gathered so far.
	Scan(ctx context.Context, query m.Query, guids []m.GUID, opts ...ScanOption) m.SearchOutcome
	// Results returns a copy of the results of the most recent scan.
	Results() []m.Result
}

type scanner struct {
	assets adapter.AssetDatabase
	log    Logger
	last   []m.Result
}

// NewScanner constructs a Scanner reading clips from assets.
func NewScanner(assets adapter.AssetDatabase, log Logger) Scanner {
	return &scanner{assets: assets, log: log}
}

func (s *scanner) Scan(ctx context.Context, query m.Query, guids []m.GUID, opts ...ScanOption) m.SearchOutcome {
	var cfg scanConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s.last = nil
	query = query.Resolve()

	outcome := m.SearchOutcome{
		Query:   query,
		Status:  m.StatusCompleted,
		Results: []m.Result{},
	}

	if err := ValidateQuery(query); err != nil {
		s.log.LogWarn("Please enter both object name and property name.")
		outcome.Status = m.StatusMissingInput

		return outcome
	}

	matcher := CompilePattern(query.Property)
	total := len(guids)
	outcome.Total = total

	for i, guid := range guids {
		path := s.assets.ResolvePath(guid)
		cfg.report(m.Progress{Current: i, Total: total, AssetPath: path})

		if ctx.Err() != nil {
			s.log.LogInfo("Search cancelled by user.")
			outcome.Status = m.StatusCancelled

			break
		}

		if path == "" {
			s.log.LogDebug(fmt.Sprintf("skipping %s: no asset path", guid))
			outcome.Skipped++

			continue
		}

		clip, err := s.assets.LoadClip(path)
		if err != nil || clip == nil {
			s.log.LogDebug(fmt.Sprintf("skipping %s: %v", path, err))
			outcome.Skipped++

			continue
		}

		outcome.Scanned++

		if !s.scanClip(clip, path, guid, query.ObjectPath, matcher, &outcome) {
			s.assets.UnloadClip(path)
		}
	}

	if outcome.Status == m.StatusCompleted {
		cfg.report(m.Progress{Current: total, Total: total})
	}

	s.log.LogInfo(fmt.Sprintf("Search complete. Found %d matches.", outcome.Matches()))

	s.last = outcome.Results

	return outcome
}

// scanClip appends the clip's matching bindings to outcome and reports whether any matched.
func (s *scanner) scanClip(clip *m.Clip, path m.Path, guid m.GUID, objectPath string, matcher Matcher, outcome *m.SearchOutcome) bool {
	matched := false

	for _, binding := range clip.Bindings {
		if !strings.Contains(binding.Path, objectPath) {
			continue
		}

		if !matcher.Match(binding.PropertyName) {
			continue
		}

		outcome.Results = append(outcome.Results, m.Result{
			AssetPath:    path,
			GUID:         guid,
			ClipName:     clip.Name,
			BindingPath:  binding.Path,
			PropertyName: binding.PropertyName,
		})
		matched = true
	}

	return matched
}

func (s *scanner) Results() []m.Result {
	return append([]m.Result(nil), s.last...)
}

package model

import "fmt"

// Result is one matching binding together with the identity of its clip.
type Result struct {
	AssetPath    Path   `json:"asset_path" yaml:"asset_path"`
	GUID         GUID   `json:"guid,omitempty" yaml:"guid,omitempty"`
	ClipName     string `json:"clip" yaml:"clip"`
	BindingPath  string `json:"path" yaml:"path"`
	PropertyName string `json:"property" yaml:"property"`
}

// SearchStatus describes how a search ended.
type SearchStatus string

const (
	// StatusCompleted means every clip was scanned.
	StatusCompleted SearchStatus = "completed"
	// StatusCancelled means the search stopped early; results are partial.
	StatusCancelled SearchStatus = "cancelled"
	// StatusMissingInput means the object path or property query was empty.
	StatusMissingInput SearchStatus = "missing_input"
)

// Progress reports scan position for display purposes.
type Progress struct {
	Current   int
	Total     int
	AssetPath Path
}

// Percent returns progress as a fraction in [0, 1].
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}

	return float64(p.Current) / float64(p.Total)
}

// SearchOutcome is everything a search produced.
type SearchOutcome struct {
	ID      string       `json:"search_id,omitempty" yaml:"search_id,omitempty"`
	Query   Query        `json:"query" yaml:"query"`
	Status  SearchStatus `json:"status" yaml:"status"`
	Total   int          `json:"total_clips" yaml:"total_clips"`
	Scanned int          `json:"scanned_clips" yaml:"scanned_clips"`
	Skipped int          `json:"skipped_clips" yaml:"skipped_clips"`
	Results []Result     `json:"results" yaml:"results"`
}

// Matches returns the number of matching bindings.
func (o SearchOutcome) Matches() int {
	return len(o.Results)
}

// StatusText renders the one-line status shown under the results.
func (o SearchOutcome) StatusText() string {
	switch o.Status {
	case StatusMissingInput:
		return "Error: Missing Input"
	case StatusCancelled:
		return fmt.Sprintf("Cancelled: %d results", o.Matches())
	default:
		return fmt.Sprintf("Results: %d", o.Matches())
	}
}

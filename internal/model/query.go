package model

import "strings"

// PresetNone is the preset that leaves the property query untouched.
const PresetNone = "None"

// PropertyPresets are the canned property queries offered next to the
// property field, in display order.
var PropertyPresets = []string{
	PresetNone,
	"_UDIMDiscardRow0_*",
	"_UDIMDiscardRow*",
	"*",
}

// Query holds the user input for one search.
type Query struct {
	// ObjectPath is matched as a case-sensitive substring of binding paths.
	ObjectPath string `json:"object_path" yaml:"object_path"`
	// Property is a literal substring or a *-wildcard pattern.
	Property string `json:"property" yaml:"property"`
	// Selected is the hierarchy path of the currently selected object, if any.
	Selected string `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// SelectedName returns the name of the selected object: the last segment
// of its hierarchy path.
func (q Query) SelectedName() string {
	selected := strings.TrimRight(q.Selected, "/")
	if i := strings.LastIndex(selected, "/"); i >= 0 {
		return selected[i+1:]
	}

	return selected
}

// Resolve returns a copy of the query with ObjectPath defaulted from the
// selected object when it was left blank.
func (q Query) Resolve() Query {
	if q.ObjectPath == "" {
		q.ObjectPath = q.SelectedName()
	}

	return q
}

// Missing reports whether either required field is empty.
func (q Query) Missing() bool {
	return q.ObjectPath == "" || q.Property == ""
}

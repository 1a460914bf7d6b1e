// Package model defines the data structures shared by the animation property search.
package model

import "strings"

// Path represents an asset path relative to the project root (e.g. "Assets/Anim/Walk.anim").
type Path string

// GUID is the opaque identifier Unity stores in an asset's .meta file.
type GUID string

// AssetType filters asset enumeration.
type AssetType string

const (
	// AssetTypeAnimationClip selects animation clip assets (.anim files).
	AssetTypeAnimationClip AssetType = "AnimationClip"
)

// ParseAssetType accepts either a bare type name or the editor search
// filter form "t:AnimationClip".
func ParseAssetType(filter string) AssetType {
	return AssetType(strings.TrimPrefix(strings.TrimSpace(filter), "t:"))
}

// Binding records one animated property inside a clip.
type Binding struct {
	// Path is the hierarchy path of the animated object relative to the clip root.
	Path string
	// PropertyName identifies the animated field, e.g. "m_LocalPosition.x".
	PropertyName string
}

// Clip is a loaded animation clip with its curve bindings in declaration order.
type Clip struct {
	AssetPath Path
	Name      string
	Bindings  []Binding
}

// ClipSummary describes an enumerated clip for listings.
type ClipSummary struct {
	AssetPath Path   `json:"asset_path" yaml:"asset_path"`
	GUID      GUID   `json:"guid" yaml:"guid"`
	Name      string `json:"name" yaml:"name"`
	Bindings  int    `json:"bindings" yaml:"bindings"`
}

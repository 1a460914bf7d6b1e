package adapter

import (
	"fmt"

	m "github.com/mouse-blink/animfind/internal/model"
)

// MemoryAssetDatabase is an AssetDatabase over clips held in memory. It
// enumerates clips in insertion order and records every unload.
type MemoryAssetDatabase struct {
	guids    []m.GUID
	paths    map[m.GUID]m.Path
	clips    map[m.Path]*m.Clip
	Unloaded []m.Path
	Loads    []m.Path
}

// NewMemoryAssetDatabase creates a MemoryAssetDatabase holding clips. Each
// clip gets a GUID derived from its position; clips without an asset path
// get "Assets/<Name>.anim".
func NewMemoryAssetDatabase(clips ...m.Clip) *MemoryAssetDatabase {
	db := &MemoryAssetDatabase{
		paths: make(map[m.GUID]m.Path),
		clips: make(map[m.Path]*m.Clip),
	}

	for _, clip := range clips {
		db.Add(clip)
	}

	return db
}

// Add appends clip to the enumeration order and returns its GUID.
func (db *MemoryAssetDatabase) Add(clip m.Clip) m.GUID {
	if clip.AssetPath == "" {
		clip.AssetPath = m.Path(fmt.Sprintf("Assets/%s.anim", clip.Name))
	}

	guid := m.GUID(fmt.Sprintf("%032x", len(db.guids)+1))
	db.guids = append(db.guids, guid)
	db.paths[guid] = clip.AssetPath
	db.clips[clip.AssetPath] = &clip

	return guid
}

// AddDangling registers a GUID whose asset can no longer be loaded.
func (db *MemoryAssetDatabase) AddDangling(path m.Path) m.GUID {
	guid := m.GUID(fmt.Sprintf("%032x", len(db.guids)+1))
	db.guids = append(db.guids, guid)
	db.paths[guid] = path

	return guid
}

// ListAssetsByType returns every GUID for animation clips.
func (db *MemoryAssetDatabase) ListAssetsByType(assetType m.AssetType) ([]m.GUID, error) {
	if m.ParseAssetType(string(assetType)) != m.AssetTypeAnimationClip {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAssetType, assetType)
	}

	return append([]m.GUID(nil), db.guids...), nil
}

// ResolvePath returns the path registered for guid.
func (db *MemoryAssetDatabase) ResolvePath(guid m.GUID) m.Path {
	return db.paths[guid]
}

// LoadClip returns the clip at path, or an error when it was never added.
func (db *MemoryAssetDatabase) LoadClip(path m.Path) (*m.Clip, error) {
	db.Loads = append(db.Loads, path)

	clip, ok := db.clips[path]
	if !ok {
		return nil, fmt.Errorf("load %s: asset missing", path)
	}

	return clip, nil
}

// UnloadClip records the unload.
func (db *MemoryAssetDatabase) UnloadClip(path m.Path) {
	db.Unloaded = append(db.Unloaded, path)
}

// Package adapter contains the infrastructure adapters that give the search
// read-only access to a Unity project on disk.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	m "github.com/mouse-blink/animfind/internal/model"
)

// ErrUnsupportedAssetType is returned when enumerating a type the database cannot load.
var ErrUnsupportedAssetType = errors.New("unsupported asset type")

// ErrProjectNotFound is returned when no Unity project contains the start path.
var ErrProjectNotFound = errors.New("unity project not found")

// DefaultIncludes are the globs enumerated when none are configured.
var DefaultIncludes = []string{"Assets/**/*.anim", "Packages/**/*.anim"}

// skippedDirs never contain source assets.
var skippedDirs = map[string]struct{}{
	"Library":      {},
	"Temp":         {},
	"Logs":         {},
	"obj":          {},
	"Build":        {},
	"Builds":       {},
	"UserSettings": {},
	"node_modules": {},
}

// guidNamespace seeds synthetic GUIDs for assets without a readable .meta file.
var guidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/mouse-blink/animfind/guid"))

// AssetDatabase abstracts the host asset index the scanner reads from. It
// hides direct filesystem access so the search logic can run against an
// in-memory fake.
type AssetDatabase interface {
	// ListAssetsByType returns the GUIDs of every asset of the given type.
	ListAssetsByType(assetType m.AssetType) ([]m.GUID, error)

	// ResolvePath maps a GUID to its asset path, or "" when unknown.
	ResolvePath(guid m.GUID) m.Path

	// LoadClip loads the clip stored at path. A failed load returns an error
	// and no clip; callers treat it as an asset that vanished.
	LoadClip(path m.Path) (*m.Clip, error)

	// UnloadClip releases any data held for the clip at path.
	UnloadClip(path m.Path)
}

type cachedClip struct {
	modTime time.Time
	size    int64
	clip    *m.Clip
}

// LocalAssetDatabase serves animation clips from a Unity project directory.
type LocalAssetDatabase struct {
	root     string
	files    AnimFileAdapter
	includes []string
	excludes []string
	paths    map[m.GUID]m.Path
	loaded   map[m.Path]cachedClip
}

// LocalAssetDatabaseOption configures a LocalAssetDatabase.
type LocalAssetDatabaseOption func(*LocalAssetDatabase)

// WithIncludes replaces the include globs (doublestar syntax, project-relative).
func WithIncludes(globs ...string) LocalAssetDatabaseOption {
	return func(db *LocalAssetDatabase) {
		if normalized := normalizeGlobs(globs); len(normalized) > 0 {
			db.includes = normalized
		}
	}
}

// WithExcludes sets globs whose matches are never enumerated.
func WithExcludes(globs ...string) LocalAssetDatabaseOption {
	return func(db *LocalAssetDatabase) {
		db.excludes = normalizeGlobs(globs)
	}
}

// WithAnimFileAdapter overrides the serialization adapter.
func WithAnimFileAdapter(files AnimFileAdapter) LocalAssetDatabaseOption {
	return func(db *LocalAssetDatabase) {
		db.files = files
	}
}

// NewLocalAssetDatabase constructs a LocalAssetDatabase rooted at a Unity project directory.
func NewLocalAssetDatabase(root string, opts ...LocalAssetDatabaseOption) *LocalAssetDatabase {
	db := &LocalAssetDatabase{
		root:     root,
		files:    NewLocalAnimFileAdapter(false),
		includes: DefaultIncludes,
		paths:    make(map[m.GUID]m.Path),
		loaded:   make(map[m.Path]cachedClip),
	}

	for _, opt := range opts {
		opt(db)
	}

	return db
}

// ListAssetsByType walks the project and returns clip GUIDs ordered by asset path.
func (db *LocalAssetDatabase) ListAssetsByType(assetType m.AssetType) ([]m.GUID, error) {
	ext, err := extensionFor(m.ParseAssetType(string(assetType)))
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(db.root)
	if err != nil {
		return nil, fmt.Errorf("project root error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", db.root)
	}

	var assetPaths []m.Path

	err = db.walk(func(assetPath m.Path) {
		if strings.EqualFold(filepath.Ext(string(assetPath)), ext) && db.selected(assetPath) {
			assetPaths = append(assetPaths, assetPath)
		}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(assetPaths, func(i, j int) bool { return assetPaths[i] < assetPaths[j] })

	db.paths = make(map[m.GUID]m.Path, len(assetPaths))
	guids := make([]m.GUID, 0, len(assetPaths))

	for _, assetPath := range assetPaths {
		guid := db.readGUID(assetPath)
		if _, taken := db.paths[guid]; taken {
			// Copied assets can share a .meta guid until the editor reimports them.
			guid = syntheticGUID(assetPath)
		}

		db.paths[guid] = assetPath
		guids = append(guids, guid)
	}

	return guids, nil
}

// ResolvePath returns the asset path recorded for guid by the last listing.
func (db *LocalAssetDatabase) ResolvePath(guid m.GUID) m.Path {
	return db.paths[guid]
}

// LoadClip parses the clip at path, reusing the cached copy when the file is unchanged.
func (db *LocalAssetDatabase) LoadClip(path m.Path) (*m.Clip, error) {
	absPath := db.absPath(path)

	info, err := os.Stat(absPath)
	if err != nil {
		delete(db.loaded, path)
		return nil, err
	}

	if cached, ok := db.loaded[path]; ok && cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
		return cached.clip, nil
	}

	// #nosec G304 - path comes from the project walk, not user input
	src, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	clip, err := db.files.ParseClip(path, src)
	if err != nil {
		return nil, err
	}

	db.loaded[path] = cachedClip{modTime: info.ModTime(), size: info.Size(), clip: clip}

	return clip, nil
}

// UnloadClip drops the cached clip for path.
func (db *LocalAssetDatabase) UnloadClip(path m.Path) {
	delete(db.loaded, path)
}

// LoadedCount returns how many clips are currently cached.
func (db *LocalAssetDatabase) LoadedCount() int {
	return len(db.loaded)
}

// walk visits every regular file below the root, skipping generated and hidden directories.
func (db *LocalAssetDatabase) walk(fn func(assetPath m.Path)) error {
	return filepath.WalkDir(db.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == db.root {
				return err
			}

			// Unreadable subtrees are treated as empty.
			return nil
		}

		if d.IsDir() {
			if path != db.root && isSkippedDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(db.root, path)
		if err != nil {
			return err
		}

		fn(m.Path(filepath.ToSlash(rel)))

		return nil
	})
}

func (db *LocalAssetDatabase) selected(assetPath m.Path) bool {
	return matchAny(db.includes, assetPath) && !matchAny(db.excludes, assetPath)
}

func (db *LocalAssetDatabase) readGUID(assetPath m.Path) m.GUID {
	// #nosec G304 - meta path is derived from a walked asset path
	src, err := os.ReadFile(db.absPath(assetPath) + ".meta")
	if err != nil {
		return syntheticGUID(assetPath)
	}

	guid, err := db.files.ParseGUID(src)
	if err != nil {
		return syntheticGUID(assetPath)
	}

	return guid
}

func (db *LocalAssetDatabase) absPath(assetPath m.Path) string {
	return filepath.Join(db.root, filepath.FromSlash(string(assetPath)))
}

// FindProjectRoot walks up from startPath looking for a directory that holds
// both Assets/ and ProjectSettings/.
func FindProjectRoot(startPath string) (string, error) {
	dir, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	for {
		if isDir(filepath.Join(dir, "Assets")) && isDir(filepath.Join(dir, "ProjectSettings")) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in any parent directory of %s", ErrProjectNotFound, startPath)
		}

		dir = parent
	}
}

func extensionFor(assetType m.AssetType) (string, error) {
	switch assetType {
	case m.AssetTypeAnimationClip:
		return ".anim", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAssetType, assetType)
	}
}

func syntheticGUID(assetPath m.Path) m.GUID {
	id := uuid.NewSHA1(guidNamespace, []byte(assetPath))
	return m.GUID(strings.ReplaceAll(id.String(), "-", ""))
}

func matchAny(globs []string, assetPath m.Path) bool {
	for _, g := range globs {
		if ok, err := doublestar.Match(g, string(assetPath)); err == nil && ok {
			return true
		}
	}

	return false
}

func normalizeGlobs(globs []string) []string {
	out := make([]string, 0, len(globs))

	for _, g := range globs {
		g = strings.TrimSpace(filepath.ToSlash(g))
		g = strings.TrimPrefix(g, "./")

		if g == "" || !doublestar.ValidatePattern(g) {
			continue
		}

		out = append(out, g)
	}

	return out
}

func isSkippedDir(name string) bool {
	// Unity ignores dot-folders and folders ending in "~".
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
		return true
	}

	_, skip := skippedDirs[name]

	return skip
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

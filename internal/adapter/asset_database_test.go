package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/animfind/internal/model"
)

func writeTestBytes(t *testing.T, path string, content []byte) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func copyFixture(t *testing.T, root, fixture, rel string) {
	t.Helper()

	writeTestBytes(t, filepath.Join(root, filepath.FromSlash(rel)), readFixture(t, fixture))
}

// newTestProject lays out a small Unity project:
//
//	Assets/Animations/Idle.anim (+meta)
//	Assets/Animations/Walk.anim (+meta)
//	Assets/Animations/Controller.controller
//	Assets/Extra/NoMeta.anim
//	Assets/Samples~/Hidden.anim
//	Library/Cached.anim
//	Packages/com.example.rig/Anim/Wave.anim
func newTestProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ProjectSettings"), 0o755))

	copyFixture(t, root, "Walk.anim", "Assets/Animations/Walk.anim")
	copyFixture(t, root, "Walk.anim.meta", "Assets/Animations/Walk.anim.meta")
	copyFixture(t, root, "Idle.anim", "Assets/Animations/Idle.anim")
	copyFixture(t, root, "Idle.anim.meta", "Assets/Animations/Idle.anim.meta")
	copyFixture(t, root, "Controller.controller", "Assets/Animations/Controller.controller")
	copyFixture(t, root, "Idle.anim", "Assets/Extra/NoMeta.anim")
	copyFixture(t, root, "Idle.anim", "Assets/Samples~/Hidden.anim")
	copyFixture(t, root, "Idle.anim", "Library/Cached.anim")
	copyFixture(t, root, "Walk.anim", "Packages/com.example.rig/Anim/Wave.anim")

	return root
}

func resolveAll(db AssetDatabase, guids []m.GUID) []m.Path {
	paths := make([]m.Path, 0, len(guids))
	for _, guid := range guids {
		paths = append(paths, db.ResolvePath(guid))
	}

	return paths
}

func TestLocalAssetDatabase_ListAssetsByType(t *testing.T) {
	root := newTestProject(t)
	db := NewLocalAssetDatabase(root)

	guids, err := db.ListAssetsByType(m.AssetTypeAnimationClip)
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		"Assets/Animations/Idle.anim",
		"Assets/Animations/Walk.anim",
		"Assets/Extra/NoMeta.anim",
		"Packages/com.example.rig/Anim/Wave.anim",
	}, resolveAll(db, guids))

	assert.Equal(t, m.GUID("9f8e7d6c5b4a39281706f5e4d3c2b1a0"), guids[0])
	assert.Equal(t, m.GUID("0b7c64a1f1e54b5c9a0d6b2c3e4f5a61"), guids[1])
	assert.Len(t, string(guids[2]), 32, "synthetic GUIDs use the 32-hex layout")
}

func TestLocalAssetDatabase_ListAssetsByType_SearchFilterAlias(t *testing.T) {
	db := NewLocalAssetDatabase(newTestProject(t))

	want, err := db.ListAssetsByType(m.AssetTypeAnimationClip)
	require.NoError(t, err)

	got, err := db.ListAssetsByType("t:AnimationClip")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocalAssetDatabase_SyntheticGUIDIsStable(t *testing.T) {
	root := newTestProject(t)

	first, err := NewLocalAssetDatabase(root).ListAssetsByType(m.AssetTypeAnimationClip)
	require.NoError(t, err)

	second, err := NewLocalAssetDatabase(root).ListAssetsByType(m.AssetTypeAnimationClip)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, syntheticGUID("Assets/Extra/NoMeta.anim"), first[2])
}

func TestLocalAssetDatabase_DuplicateMetaGUID(t *testing.T) {
	root := newTestProject(t)
	copyFixture(t, root, "Walk.anim", "Assets/Copies/Walk 1.anim")
	copyFixture(t, root, "Walk.anim.meta", "Assets/Copies/Walk 1.anim.meta")

	db := NewLocalAssetDatabase(root)
	guids, err := db.ListAssetsByType(m.AssetTypeAnimationClip)
	require.NoError(t, err)

	seen := map[m.GUID]bool{}
	for _, guid := range guids {
		assert.False(t, seen[guid], "duplicate guid %s", guid)
		seen[guid] = true
	}

	assert.Equal(t, m.Path("Assets/Animations/Walk.anim"), db.ResolvePath("0b7c64a1f1e54b5c9a0d6b2c3e4f5a61"))
}

func TestLocalAssetDatabase_IncludeExcludeGlobs(t *testing.T) {
	root := newTestProject(t)

	t.Run("includes narrow the walk", func(t *testing.T) {
		db := NewLocalAssetDatabase(root, WithIncludes("Packages/**/*.anim"))

		guids, err := db.ListAssetsByType(m.AssetTypeAnimationClip)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{"Packages/com.example.rig/Anim/Wave.anim"}, resolveAll(db, guids))
	})

	t.Run("excludes drop matches", func(t *testing.T) {
		db := NewLocalAssetDatabase(root, WithExcludes("Assets/Extra/**", "./Packages/**"))

		guids, err := db.ListAssetsByType(m.AssetTypeAnimationClip)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{
			"Assets/Animations/Idle.anim",
			"Assets/Animations/Walk.anim",
		}, resolveAll(db, guids))
	})

	t.Run("invalid include globs keep defaults", func(t *testing.T) {
		db := NewLocalAssetDatabase(root, WithIncludes("Assets/[", "  "))

		guids, err := db.ListAssetsByType(m.AssetTypeAnimationClip)
		require.NoError(t, err)
		assert.Len(t, guids, 4)
	})
}

func TestLocalAssetDatabase_ListAssetsByType_Errors(t *testing.T) {
	t.Run("unsupported type", func(t *testing.T) {
		db := NewLocalAssetDatabase(t.TempDir())

		_, err := db.ListAssetsByType(m.AssetType("Material"))
		assert.ErrorIs(t, err, ErrUnsupportedAssetType)
	})

	t.Run("missing root", func(t *testing.T) {
		db := NewLocalAssetDatabase(filepath.Join(t.TempDir(), "gone"))

		_, err := db.ListAssetsByType(m.AssetTypeAnimationClip)
		assert.Error(t, err)
	})
}

func TestLocalAssetDatabase_ResolvePath_Unknown(t *testing.T) {
	db := NewLocalAssetDatabase(t.TempDir())

	assert.Empty(t, db.ResolvePath("ffffffffffffffffffffffffffffffff"))
}

func TestLocalAssetDatabase_LoadAndUnloadClip(t *testing.T) {
	root := newTestProject(t)
	db := NewLocalAssetDatabase(root)

	clip, err := db.LoadClip("Assets/Animations/Walk.anim")
	require.NoError(t, err)
	assert.Equal(t, "Walk", clip.Name)
	assert.Equal(t, 1, db.LoadedCount())

	again, err := db.LoadClip("Assets/Animations/Walk.anim")
	require.NoError(t, err)
	assert.Same(t, clip, again, "unchanged files are served from the cache")

	db.UnloadClip("Assets/Animations/Walk.anim")
	assert.Equal(t, 0, db.LoadedCount())
}

func TestLocalAssetDatabase_LoadClip_ReloadsChangedFile(t *testing.T) {
	root := newTestProject(t)
	db := NewLocalAssetDatabase(root)
	path := filepath.Join(root, "Assets", "Animations", "Walk.anim")

	first, err := db.LoadClip("Assets/Animations/Walk.anim")
	require.NoError(t, err)

	writeTestBytes(t, path, readFixture(t, "Idle.anim"))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	second, err := db.LoadClip("Assets/Animations/Walk.anim")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, "Idle", second.Name)
}

func TestLocalAssetDatabase_LoadClip_Failures(t *testing.T) {
	root := newTestProject(t)
	db := NewLocalAssetDatabase(root)

	t.Run("deleted asset", func(t *testing.T) {
		_, err := db.LoadClip("Assets/Animations/Deleted.anim")
		assert.Error(t, err)
	})

	t.Run("not a clip", func(t *testing.T) {
		_, err := db.LoadClip("Assets/Animations/Controller.controller")
		assert.ErrorIs(t, err, ErrNotAnimationClip)
		assert.Equal(t, 0, db.LoadedCount())
	})
}

func TestFindProjectRoot(t *testing.T) {
	root := newTestProject(t)

	t.Run("from nested directory", func(t *testing.T) {
		got, err := FindProjectRoot(filepath.Join(root, "Assets", "Animations"))
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("outside any project", func(t *testing.T) {
		_, err := FindProjectRoot(t.TempDir())
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestMemoryAssetDatabase(t *testing.T) {
	db := NewMemoryAssetDatabase(
		m.Clip{Name: "Walk", Bindings: []m.Binding{{Path: "Root/Arm", PropertyName: "m_LocalPosition.x"}}},
	)
	dangling := db.AddDangling("Assets/Deleted.anim")

	guids, err := db.ListAssetsByType(m.AssetTypeAnimationClip)
	require.NoError(t, err)
	require.Len(t, guids, 2)
	assert.Equal(t, dangling, guids[1])

	clip, err := db.LoadClip(db.ResolvePath(guids[0]))
	require.NoError(t, err)
	assert.Equal(t, m.Path("Assets/Walk.anim"), clip.AssetPath)

	_, err = db.LoadClip(db.ResolvePath(dangling))
	assert.Error(t, err)

	db.UnloadClip(clip.AssetPath)
	assert.Equal(t, []m.Path{"Assets/Walk.anim"}, db.Unloaded)

	aliased, err := db.ListAssetsByType("t:AnimationClip")
	require.NoError(t, err)
	assert.Equal(t, guids, aliased)

	_, err = db.ListAssetsByType("Texture2D")
	assert.ErrorIs(t, err, ErrUnsupportedAssetType)
}

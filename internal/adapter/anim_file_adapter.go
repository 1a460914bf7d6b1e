package adapter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/animfind/internal/model"
)

// ErrNotAnimationClip is returned when a file holds no AnimationClip document.
var ErrNotAnimationClip = errors.New("no AnimationClip document found")

// ErrMissingGUID is returned when a .meta file carries no guid.
var ErrMissingGUID = errors.New("meta file has no guid")

// AnimFileAdapter encapsulates Unity serialization details so the asset
// database only deals with paths and clips.
type AnimFileAdapter interface {
	// ParseClip decodes a serialized .anim file into a clip with ordered bindings.
	ParseClip(assetPath m.Path, src []byte) (*m.Clip, error)
	// ParseGUID reads the asset GUID from the contents of a .meta file.
	ParseGUID(src []byte) (m.GUID, error)
}

// LocalAnimFileAdapter parses Unity force-text YAML assets with yaml.v3.
type LocalAnimFileAdapter struct {
	objectReferences bool
}

// NewLocalAnimFileAdapter constructs a LocalAnimFileAdapter. When
// objectReferences is true, object reference (PPtr) curves are reported as
// bindings too.
func NewLocalAnimFileAdapter(objectReferences bool) *LocalAnimFileAdapter {
	return &LocalAnimFileAdapter{objectReferences: objectReferences}
}

type animDocument struct {
	AnimationClip *animClip `yaml:"AnimationClip"`
}

type animClip struct {
	Name                     string      `yaml:"m_Name"`
	RotationCurves           []animCurve `yaml:"m_RotationCurves"`
	CompressedRotationCurves []animCurve `yaml:"m_CompressedRotationCurves"`
	EulerCurves              []animCurve `yaml:"m_EulerCurves"`
	PositionCurves           []animCurve `yaml:"m_PositionCurves"`
	ScaleCurves              []animCurve `yaml:"m_ScaleCurves"`
	FloatCurves              []animCurve `yaml:"m_FloatCurves"`
	PPtrCurves               []animCurve `yaml:"m_PPtrCurves"`
	EditorCurves             []animCurve `yaml:"m_EditorCurves"`
	EulerEditorCurves        []animCurve `yaml:"m_EulerEditorCurves"`
}

// animCurve keeps only the binding half of a serialized curve; keyframes are skipped.
type animCurve struct {
	Path      string `yaml:"path"`
	Attribute string `yaml:"attribute"`
}

type metaFile struct {
	GUID string `yaml:"guid"`
}

// Transform curves are serialized per vector; the editor exposes them per component.
var (
	positionComponents = []string{"m_LocalPosition.x", "m_LocalPosition.y", "m_LocalPosition.z"}
	rotationComponents = []string{"m_LocalRotation.x", "m_LocalRotation.y", "m_LocalRotation.z", "m_LocalRotation.w"}
	eulerComponents    = []string{"localEulerAnglesRaw.x", "localEulerAnglesRaw.y", "localEulerAnglesRaw.z"}
	scaleComponents    = []string{"m_LocalScale.x", "m_LocalScale.y", "m_LocalScale.z"}
)

// ParseClip decodes the AnimationClip document of a .anim file.
func (a *LocalAnimFileAdapter) ParseClip(assetPath m.Path, src []byte) (*m.Clip, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(stripUnityHeaders(src)))

	for {
		var doc animDocument

		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", assetPath, ErrNotAnimationClip)
		}

		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", assetPath, err)
		}

		if doc.AnimationClip == nil {
			continue
		}

		name := doc.AnimationClip.Name
		if name == "" {
			base := path.Base(string(assetPath))
			name = strings.TrimSuffix(base, path.Ext(base))
		}

		return &m.Clip{
			AssetPath: assetPath,
			Name:      name,
			Bindings:  a.bindings(doc.AnimationClip),
		}, nil
	}
}

// ParseGUID reads the guid key of a .meta file.
func (a *LocalAnimFileAdapter) ParseGUID(src []byte) (m.GUID, error) {
	var meta metaFile
	if err := yaml.Unmarshal(src, &meta); err != nil {
		return "", fmt.Errorf("parse meta: %w", err)
	}

	guid := strings.TrimSpace(meta.GUID)
	if guid == "" {
		return "", ErrMissingGUID
	}

	return m.GUID(guid), nil
}

func (a *LocalAnimFileAdapter) bindings(clip *animClip) []m.Binding {
	var set bindingSet

	if len(clip.EditorCurves) > 0 || len(clip.EulerEditorCurves) > 0 {
		set.addCurves(clip.EditorCurves)
		set.addCurves(clip.EulerEditorCurves)
	} else {
		set.addVectorCurves(clip.PositionCurves, positionComponents)
		set.addVectorCurves(clip.RotationCurves, rotationComponents)
		set.addVectorCurves(clip.CompressedRotationCurves, rotationComponents)
		set.addVectorCurves(clip.EulerCurves, eulerComponents)
		set.addVectorCurves(clip.ScaleCurves, scaleComponents)
		set.addCurves(clip.FloatCurves)
	}

	if a.objectReferences {
		set.addCurves(clip.PPtrCurves)
	}

	return set.bindings
}

// bindingSet collects bindings in insertion order, dropping duplicates.
type bindingSet struct {
	seen     map[m.Binding]struct{}
	bindings []m.Binding
}

func (s *bindingSet) add(b m.Binding) {
	if s.seen == nil {
		s.seen = make(map[m.Binding]struct{})
	}

	if _, exists := s.seen[b]; exists {
		return
	}

	s.seen[b] = struct{}{}
	s.bindings = append(s.bindings, b)
}

func (s *bindingSet) addCurves(curves []animCurve) {
	for _, c := range curves {
		if c.Attribute == "" {
			continue
		}

		s.add(m.Binding{Path: c.Path, PropertyName: c.Attribute})
	}
}

func (s *bindingSet) addVectorCurves(curves []animCurve, components []string) {
	for _, c := range curves {
		for _, component := range components {
			s.add(m.Binding{Path: c.Path, PropertyName: component})
		}
	}
}

// stripUnityHeaders removes %YAML/%TAG directives and reduces Unity's
// "--- !u!74 &7400000" document headers to plain separators.
func stripUnityHeaders(src []byte) []byte {
	var out bytes.Buffer

	out.Grow(len(src))

	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), len(src)+1)

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "%"):
			continue
		case strings.HasPrefix(line, "--- "):
			out.WriteString("---\n")
		default:
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}

	return out.Bytes()
}

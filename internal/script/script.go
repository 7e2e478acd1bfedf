// Package script decodes YAML drawing scripts and plays them onto a
// vecdev canvas.
//
// A script names its page size, the fonts it uses and a list of operations:
//
//	width: 595
//	height: 842
//	fonts:
//	  - name: body
//	    builtin: goregular
//	ops:
//	  - paint: {color: "#1f77b4", style: fill}
//	    rect: [40, 40, 200, 120]
//	  - paint: {style: stroke, width: 3, cap: round, dash: [6, 4]}
//	    path: "M 40 200 Q 140 120 240 200 Z"
//	  - text: {font: body, size: 24, x: 40, y: 300, string: "Hello"}
//
// A paint entry updates the current paint, which persists to later
// operations. Each operation performs at most one drawing call.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("script: invalid script")

// Script is a decoded drawing script.
type Script struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Fonts  []FontSpec `yaml:"fonts"`
	Ops    []Op       `yaml:"ops"`

	// dir resolves relative file names.
	dir string
}

// FontSpec names a font for text operations. Exactly one of Builtin and
// File is set.
type FontSpec struct {
	Name    string `yaml:"name"`
	Builtin string `yaml:"builtin"`
	File    string `yaml:"file"`
}

// PaintSpec holds paint attributes. Zero fields leave the current value
// unchanged.
type PaintSpec struct {
	Color     string    `yaml:"color"`
	Style     string    `yaml:"style"`
	Width     *float64  `yaml:"width"`
	Join      string    `yaml:"join"`
	Cap       string    `yaml:"cap"`
	Miter     *float64  `yaml:"miter_limit"`
	Dash      []float64 `yaml:"dash"`
	DashPhase float64   `yaml:"dash_phase"`
	FillRule  string    `yaml:"fill_rule"`
}

// PointsSpec is a DrawPoints call.
type PointsSpec struct {
	Mode string       `yaml:"mode"`
	Pts  [][2]float64 `yaml:"pts"`
}

// TextSpec shapes and draws a string.
type TextSpec struct {
	Font   string  `yaml:"font"`
	Size   float64 `yaml:"size"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	String string  `yaml:"string"`
}

// ImageSpec draws an image file. Without Matrix the image goes to (X, Y)
// under the current transform, or to device pixel (X, Y) with Sprite.
// Width and Height resample the image when set.
type ImageSpec struct {
	File   string    `yaml:"file"`
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Matrix []float64 `yaml:"matrix"`
	Sprite bool      `yaml:"sprite"`
}

// Op is one script operation.
type Op struct {
	Paint *PaintSpec `yaml:"paint"`

	// Transform (scaleX skewX transX skewY scaleY transY) and Clip (rects as left top right bottom)
	// together make one SetTransformAndClip call.
	Transform []float64 `yaml:"transform"`
	Clip      [][4]int  `yaml:"clip"`

	Rect   []float64   `yaml:"rect"`
	Path   string      `yaml:"path"`
	Points *PointsSpec `yaml:"points"`
	Text   *TextSpec   `yaml:"text"`
	Image  *ImageSpec  `yaml:"image"`
	Flood  bool        `yaml:"flood"`
}

// drawCount returns how many drawing calls op asks for.
func (op *Op) drawCount() int {
	n := 0
	for _, set := range []bool{
		op.Transform != nil || op.Clip != nil,
		op.Rect != nil,
		op.Path != "",
		op.Points != nil,
		op.Text != nil,
		op.Image != nil,
		op.Flood,
	} {
		if set {
			n++
		}
	}
	return n
}

// Decode reads a script from r. Unknown keys are errors.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads the script at path. Relative file names inside the script
// resolve against the script's directory.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

func (s *Script) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: page size %dx%d", ErrInvalid, s.Width, s.Height)
	}
	names := make(map[string]bool, len(s.Fonts))
	for i, f := range s.Fonts {
		if f.Name == "" {
			return fmt.Errorf("%w: font %d has no name", ErrInvalid, i)
		}
		if names[f.Name] {
			return fmt.Errorf("%w: font %q defined twice", ErrInvalid, f.Name)
		}
		if (f.Builtin == "") == (f.File == "") {
			return fmt.Errorf("%w: font %q needs exactly one of builtin and file", ErrInvalid, f.Name)
		}
		names[f.Name] = true
	}
	for i := range s.Ops {
		op := &s.Ops[i]
		if n := op.drawCount(); n > 1 {
			return fmt.Errorf("%w: op %d has %d drawing calls", ErrInvalid, i, n)
		}
		if op.Transform != nil && len(op.Transform) != 6 {
			return fmt.Errorf("%w: op %d transform needs 6 values", ErrInvalid, i)
		}
		if op.Rect != nil && len(op.Rect) != 4 {
			return fmt.Errorf("%w: op %d rect needs 4 values", ErrInvalid, i)
		}
		if op.Text != nil && !names[op.Text.Font] {
			return fmt.Errorf("%w: op %d uses unknown font %q", ErrInvalid, i, op.Text.Font)
		}
		if op.Image != nil && op.Image.Matrix != nil && len(op.Image.Matrix) != 6 {
			return fmt.Errorf("%w: op %d image matrix needs 6 values", ErrInvalid, i)
		}
	}
	return nil
}

func (s *Script) resolve(name string) string {
	if filepath.IsAbs(name) || s.dir == "" {
		return name
	}
	return filepath.Join(s.dir, name)
}

package script

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/vecdev"
	"github.com/gogpu/vecdev/backend"
	"github.com/gogpu/vecdev/backend/record"
	"github.com/gogpu/vecdev/typeface"
)

const sample = `
width: 200
height: 100
fonts:
  - name: body
    builtin: goregular
ops:
  - paint: {color: "#1f77b4", style: fill}
    rect: [10, 10, 50, 20]
  - paint: {style: stroke, width: 3, cap: round, dash: [6, 4]}
    path: "M 10 50 Q 60 10 110 50"
  - paint: {style: fill}
    text: {font: body, size: 14, x: 10, y: 90, string: "Hi"}
`

// play runs s on a fresh recorder device.
func play(t *testing.T, s *Script) *record.Recorder {
	t.Helper()
	rec := record.New(s.Width, s.Height)
	fonts := typeface.NewRegistry()
	dev, err := vecdev.NewDevice(rec, s.Width, s.Height, vecdev.WithFonts(fonts))
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}
	defer dev.Close()
	if err := s.Execute(dev, fonts); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return rec
}

func count(rec *record.Recorder, ct record.CommandType) int {
	n := 0
	for _, c := range rec.Types() {
		if c == ct {
			n++
		}
	}
	return n
}

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if s.Width != 200 || s.Height != 100 {
		t.Errorf("size = %dx%d, want 200x100", s.Width, s.Height)
	}
	if len(s.Fonts) != 1 || s.Fonts[0].Builtin != "goregular" {
		t.Errorf("Fonts = %+v", s.Fonts)
	}
	if len(s.Ops) != 3 {
		t.Fatalf("len(Ops) = %d, want 3", len(s.Ops))
	}
	if w := s.Ops[1].Paint.Width; w == nil || *w != 3 {
		t.Errorf("stroke width = %v, want 3", w)
	}
}

func TestDecodeUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("width: 10\nheight: 10\ncolour: red\n"))
	if err == nil {
		t.Error("Decode() accepted an unknown key")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no size", "ops: []"},
		{"font without name", "width: 1\nheight: 1\nfonts: [{builtin: goregular}]"},
		{"font twice", "width: 1\nheight: 1\nfonts: [{name: a, builtin: goregular}, {name: a, builtin: gobold}]"},
		{"font with both sources", "width: 1\nheight: 1\nfonts: [{name: a, builtin: goregular, file: a.ttf}]"},
		{"font without source", "width: 1\nheight: 1\nfonts: [{name: a}]"},
		{"two drawing calls", "width: 1\nheight: 1\nops: [{rect: [0, 0, 1, 1], flood: true}]"},
		{"short transform", "width: 1\nheight: 1\nops: [{transform: [1, 0, 0]}]"},
		{"short rect", "width: 1\nheight: 1\nops: [{rect: [0, 0, 1]}]"},
		{"unknown font", "width: 1\nheight: 1\nops: [{text: {font: nope, string: x}}]"},
		{"short image matrix", "width: 1\nheight: 1\nops: [{image: {file: a.png, matrix: [1]}}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.src)); !errors.Is(err, ErrInvalid) {
				t.Errorf("Decode() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		data string
		want []vecdev.Verb
	}{
		{"M 0 0 L 10 0 Q 10 10 0 10 C -5 10 -5 0 0 0 Z",
			[]vecdev.Verb{vecdev.VerbMove, vecdev.VerbLine, vecdev.VerbQuad, vecdev.VerbCubic, vecdev.VerbClose}},
		{"M0,0 10,0 20,0", []vecdev.Verb{vecdev.VerbMove, vecdev.VerbLine, vecdev.VerbLine}},
		{"M 0 0 L 1 1 2 2 Z M 5 5 L 6 6",
			[]vecdev.Verb{vecdev.VerbMove, vecdev.VerbLine, vecdev.VerbLine, vecdev.VerbClose, vecdev.VerbMove, vecdev.VerbLine}},
		{"M 1e1 -2.5E-1", []vecdev.Verb{vecdev.VerbMove}},
		{"", []vecdev.Verb{}},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			p, err := ParsePath(tt.data)
			if err != nil {
				t.Fatalf("ParsePath() error = %v", err)
			}
			if got := p.Verbs(); !slices.Equal(got, tt.want) {
				t.Errorf("Verbs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePathPoints(t *testing.T) {
	p, err := ParsePath("M 1e1 -2.5E-1")
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if got := p.CurrentPoint(); got != vecdev.Pt(10, -0.25) {
		t.Errorf("CurrentPoint() = %v, want (10, -0.25)", got)
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, data := range []string{"L", "M 0", "M a b", "X 1 2", "1 2", "M 0 0 Z 1 2"} {
		if _, err := ParsePath(data); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParsePath(%q) error = %v, want ErrInvalid", data, err)
		}
	}
}

func TestExecuteSample(t *testing.T) {
	s, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	rec := play(t, s)

	if got := count(rec, record.CmdRectangle); got != 1 {
		t.Errorf("Rectangle calls = %d, want 1", got)
	}
	// The dashed curve breaks into several subpaths.
	if got := count(rec, record.CmdMoveTo); got < 2 {
		t.Errorf("MoveTo calls = %d, want a dashed path", got)
	}
	if got := count(rec, record.CmdShowGlyphs); got != 2 {
		t.Errorf("ShowGlyphs calls = %d, want 2", got)
	}
	if err := rec.Status(); err != nil {
		t.Errorf("recorder status = %v", err)
	}
}

func TestExecuteTransformAndClip(t *testing.T) {
	s, err := Decode(strings.NewReader(`
width: 50
height: 50
ops:
  - transform: [2, 0, 5, 0, 2, 5]
    clip: [[0, 0, 20, 20], [30, 30, 40, 40]]
  - paint: {fill_rule: evenodd}
    path: "M 0 0 L 5 0 L 5 5 Z"
  - flood: true
`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	rec := play(t, s)

	want := vecdev.Matrix{ScaleX: 2, TransX: 5, ScaleY: 2, TransY: 5}.Backend()
	if rec.Matrix() != want {
		t.Errorf("matrix = %v, want %v", rec.Matrix(), want)
	}
	if !rec.Clipped() {
		t.Error("clip not applied")
	}
	rules := 0
	for _, c := range rec.Commands() {
		if r, ok := c.(record.SetFillRuleCommand); ok && r.Rule == backend.FillRuleEvenOdd {
			rules++
		}
	}
	if rules != 1 {
		t.Errorf("even-odd fill rules = %d, want 1", rules)
	}
}

func TestExecuteMiterLimit(t *testing.T) {
	s, err := Decode(strings.NewReader(`
width: 20
height: 20
ops:
  - paint: {style: stroke, miter_limit: 2.5}
    path: "M 0 0 L 10 0 L 10 10"
`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	rec := play(t, s)

	var limits []float64
	for _, c := range rec.Commands() {
		if m, ok := c.(record.SetMiterLimitCommand); ok {
			limits = append(limits, m.Limit)
		}
	}
	if len(limits) != 1 || limits[0] != 2.5 {
		t.Errorf("miter limits = %v, want [2.5]", limits)
	}
}

func TestExecutePoints(t *testing.T) {
	s, err := Decode(strings.NewReader(`
width: 10
height: 10
ops:
  - points: {mode: lines, pts: [[0, 0], [1, 1], [2, 2], [3, 3]]}
`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	rec := play(t, s)
	if got := count(rec, record.CmdLineTo); got != 2 {
		t.Errorf("LineTo calls = %d, want 2", got)
	}
	if got := count(rec, record.CmdStroke); got != 1 {
		t.Errorf("Stroke calls = %d, want 1", got)
	}
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadWithImage(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "dot.png"))
	src := `
width: 20
height: 20
ops:
  - image: {file: dot.png, x: 4, y: 5}
  - image: {file: dot.png, x: 1, y: 2, sprite: true}
  - image: {file: dot.png, width: 6, height: 4, matrix: [1, 0, 0, 0, 1, 0]}
`
	scriptPath := filepath.Join(dir, "page.yaml")
	if err := os.WriteFile(scriptPath, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(scriptPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	rec := play(t, s)

	var sizes [][2]int
	for _, c := range rec.Commands() {
		if img, ok := c.(record.CreateImageSurfaceCommand); ok {
			sizes = append(sizes, [2]int{img.Width, img.Height})
		}
	}
	want := [][2]int{{3, 2}, {3, 2}, {6, 4}}
	if !slices.Equal(sizes, want) {
		t.Errorf("image sizes = %v, want %v", sizes, want)
	}
	if rec.LiveSurfaces() != 0 {
		t.Errorf("live surfaces = %d, want 0", rec.LiveSurfaces())
	}
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad color", "width: 5\nheight: 5\nops: [{paint: {color: '#xyz'}}]"},
		{"bad style", "width: 5\nheight: 5\nops: [{paint: {style: glow}}]"},
		{"bad join", "width: 5\nheight: 5\nops: [{paint: {join: sharp}}]"},
		{"bad cap", "width: 5\nheight: 5\nops: [{paint: {cap: flat}}]"},
		{"bad fill rule", "width: 5\nheight: 5\nops: [{paint: {fill_rule: odd}}]"},
		{"bad path", "width: 5\nheight: 5\nops: [{path: 'M 1'}]"},
		{"bad point mode", "width: 5\nheight: 5\nops: [{points: {mode: star, pts: [[0, 0]]}}]"},
		{"missing image", "width: 5\nheight: 5\nops: [{image: {file: /nonexistent/x.png}}]"},
		{"missing font file", "width: 5\nheight: 5\nfonts: [{name: a, file: /nonexistent/a.ttf}]"},
		{"unknown builtin", "width: 5\nheight: 5\nfonts: [{name: a, builtin: comic}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			rec := record.New(5, 5)
			fonts := typeface.NewRegistry()
			dev, err := vecdev.NewDevice(rec, 5, 5, vecdev.WithFonts(fonts))
			if err != nil {
				t.Fatalf("NewDevice() error = %v", err)
			}
			defer dev.Close()
			if err := s.Execute(dev, fonts); err == nil {
				t.Error("Execute() error = nil, want error")
			}
		})
	}
}

func TestStickyPaint(t *testing.T) {
	s, err := Decode(strings.NewReader(`
width: 10
height: 10
ops:
  - paint: {color: "#ff0000"}
  - rect: [0, 0, 1, 1]
  - rect: [2, 2, 1, 1]
`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	rec := play(t, s)
	for _, c := range rec.Commands() {
		if src, ok := c.(record.SetSourceRGBACommand); ok && (src.R != 1 || src.G != 0) {
			t.Errorf("source = %+v, want red for every rect", src)
		}
	}
}

package pdf

import (
	"fmt"

	"github.com/gogpu/vecdev/backend"
)

// SetFontFace implements backend.Context. The face data is embedded the
// first time a face ID is seen.
func (s *Surface) SetFontFace(face *backend.FontFace) {
	if face == nil {
		s.face = nil
		return
	}
	if _, ok := s.fonts[face.ID]; !ok {
		if len(face.Data) == 0 {
			s.fail(fmt.Errorf("%w: face %d has no font data", ErrNoFont, face.ID))
			return
		}
		family := fmt.Sprintf("vecdevfont%d", face.ID)
		s.pdf.AddUTF8FontFromBytes(family, "", face.Data)
		s.fonts[face.ID] = family
	}
	s.face = face
}

// SetFontSize implements backend.Context.
func (s *Surface) SetFontSize(size float64) { s.fontSize = size }

// ShowGlyphs implements backend.Context. Each glyph is written as the
// character that maps to it. Glyphs without a character, such as
// ligatures, cannot be addressed through text and are skipped with a debug
// record.
func (s *Surface) ShowGlyphs(glyphs []backend.Glyph) {
	s.flushPreserved()
	if s.face == nil {
		s.fail(ErrNoFont)
		return
	}
	if s.face.Rune == nil {
		s.log.Debug("pdf: face has no glyph map, glyphs dropped",
			"face", s.face.ID, "glyphs", len(glyphs))
		return
	}

	s.pdf.SetFont(s.fonts[s.face.ID], "", s.fontSize)
	s.pdf.SetFillColor(s.color.ints())
	s.pdf.SetTextColor(s.color.ints())
	s.pdf.SetAlpha(clamp01(s.color.a), "Normal")
	for _, g := range glyphs {
		r, ok := s.face.Rune(g.Index)
		if !ok {
			s.log.Debug("pdf: glyph has no character, dropped",
				"face", s.face.ID, "glyph", g.Index)
			continue
		}
		s.pdf.Text(g.X, g.Y, string(r))
	}
}

// Package typeface is the font service used by vecdev devices.
//
// A Registry owns parsed TrueType/OpenType fonts and hands out
// vecdev.TypefaceID handles. It implements vecdev.FontService: it selects
// fonts onto backend contexts and turns glyphs into outline paths. It also
// shapes plain strings into glyph runs with HarfBuzz (go-text/typesetting),
// which is how callers that only have text produce input for
// Device.DrawGlyphRun.
//
// The Go fonts bundled with golang.org/x/image are available through
// RegisterBuiltin.
//
// Registry is safe for concurrent use.
package typeface

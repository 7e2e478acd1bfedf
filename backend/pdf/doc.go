// Package pdf provides a backend.Surface that writes a single page PDF
// document using fpdf.
//
// The PDF content stream is not a Cairo-style state machine, so Surface
// bridges the two models:
//
//   - The current path is buffered and only written when it is painted,
//     which lets color and line style operators go before the path.
//   - The current matrix maps onto one fpdf transform nest. Changing the
//     matrix closes the nest and opens a new one.
//   - Clips are graphics state levels outside the transform nest. The clip
//     path is written in page space with all its subpaths, followed by W n
//     (or W* n under the even-odd rule), so region clips stay exact.
//   - A miter limit other than the default is written with each stroke, and
//     keeps being written once one has been.
//   - Image surfaces become embedded PNG images, deduplicated by content.
//   - Glyphs are written as text through an embedded TrueType font. A glyph
//     is addressed by the character that maps to it, so glyphs without a
//     character (ligatures, alternates) are skipped and logged at debug
//     level.
//
// Importing the package registers it with the backend registry as "pdf".
package pdf

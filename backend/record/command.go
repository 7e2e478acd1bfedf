// Package record provides a backend.Surface that records every call as a
// typed command instead of producing output.
//
// A recording is inspectable (Commands), printable (String, WriteTo) and can
// be replayed onto any other backend.Context (Playback). Besides the command
// list the recorder tracks the state a real backend would hold: current
// matrix, whether a clip is active, the pending path, live image surfaces
// and the reference count. Tests use that state to check what a device left
// behind.
//
// # Example
//
//	rec := record.New(800, 600)
//	dev, _ := vecdev.NewDevice(rec, 800, 600)
//	dev.DrawRect(vecdev.RectXYWH(0, 0, 10, 10), vecdev.NewPaint())
//	fmt.Print(rec)
package record

import "github.com/gogpu/vecdev/backend"

// CommandType identifies the type of a command.
// Each command type corresponds to one backend.Context method.
type CommandType uint8

const (
	// State commands
	CmdSetMatrix CommandType = iota // Replace the current matrix
	CmdResetClip                    // Remove the clip
	CmdClip                         // Intersect the clip with the path

	// Path commands
	CmdMoveTo    // Start a subpath
	CmdLineTo    // Line segment
	CmdCurveTo   // Cubic segment
	CmdClosePath // Close the subpath
	CmdRectangle // Closed rectangle subpath

	// Paint commands
	CmdFill         // Fill and clear the path
	CmdFillPreserve // Fill and keep the path
	CmdStroke       // Stroke and clear the path

	// Style commands
	CmdSetSourceRGBA // Solid color source
	CmdSetFillRule   // Fill rule
	CmdSetLineWidth  // Stroke width
	CmdSetLineJoin   // Stroke join
	CmdSetLineCap    // Stroke cap
	CmdSetMiterLimit // Miter limit

	// Image commands
	CmdCreateImageSurface // Bind pixels to a surface
	CmdSetSourceSurface   // Image source
	CmdPaintWithAlpha     // Paint the source
	CmdDestroySurface     // Release a surface

	// Text commands
	CmdSetFontFace // Select a typeface
	CmdSetFontSize // Font size
	CmdShowGlyphs  // Draw glyphs
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetMatrix:          "SetMatrix",
	CmdResetClip:          "ResetClip",
	CmdClip:               "Clip",
	CmdMoveTo:             "MoveTo",
	CmdLineTo:             "LineTo",
	CmdCurveTo:            "CurveTo",
	CmdClosePath:          "ClosePath",
	CmdRectangle:          "Rectangle",
	CmdFill:               "Fill",
	CmdFillPreserve:       "FillPreserve",
	CmdStroke:             "Stroke",
	CmdSetSourceRGBA:      "SetSourceRGBA",
	CmdSetFillRule:        "SetFillRule",
	CmdSetLineWidth:       "SetLineWidth",
	CmdSetLineJoin:        "SetLineJoin",
	CmdSetLineCap:         "SetLineCap",
	CmdSetMiterLimit:      "SetMiterLimit",
	CmdCreateImageSurface: "CreateImageSurface",
	CmdSetSourceSurface:   "SetSourceSurface",
	CmdPaintWithAlpha:     "PaintWithAlpha",
	CmdDestroySurface:     "DestroySurface",
	CmdSetFontFace:        "SetFontFace",
	CmdSetFontSize:        "SetFontSize",
	CmdShowGlyphs:         "ShowGlyphs",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SurfaceID identifies an image surface within one recording.
type SurfaceID uint32

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SetMatrixCommand replaces the current transformation matrix.
type SetMatrixCommand struct {
	Matrix backend.Matrix
}

// Type implements Command.
func (SetMatrixCommand) Type() CommandType { return CmdSetMatrix }

// ResetClipCommand removes the clip.
type ResetClipCommand struct{}

// Type implements Command.
func (ResetClipCommand) Type() CommandType { return CmdResetClip }

// ClipCommand intersects the clip with the current path.
type ClipCommand struct{}

// Type implements Command.
func (ClipCommand) Type() CommandType { return CmdClip }

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// MoveToCommand starts a new subpath.
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a line segment.
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// CurveToCommand adds a cubic Bezier segment.
type CurveToCommand struct {
	X1, Y1 float64
	X2, Y2 float64
	X3, Y3 float64
}

// Type implements Command.
func (CurveToCommand) Type() CommandType { return CmdCurveTo }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// RectangleCommand adds a closed rectangle.
type RectangleCommand struct {
	X, Y          float64
	Width, Height float64
}

// Type implements Command.
func (RectangleCommand) Type() CommandType { return CmdRectangle }

// --------------------------------------------------------------------------
// Paint Commands
// --------------------------------------------------------------------------

// FillCommand fills the current path and clears it.
type FillCommand struct{}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// FillPreserveCommand fills the current path and keeps it.
type FillPreserveCommand struct{}

// Type implements Command.
func (FillPreserveCommand) Type() CommandType { return CmdFillPreserve }

// StrokeCommand strokes the current path and clears it.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetSourceRGBACommand sets a solid color source.
type SetSourceRGBACommand struct {
	R, G, B, A float64
}

// Type implements Command.
func (SetSourceRGBACommand) Type() CommandType { return CmdSetSourceRGBA }

// SetFillRuleCommand sets the fill rule.
type SetFillRuleCommand struct {
	Rule backend.FillRule
}

// Type implements Command.
func (SetFillRuleCommand) Type() CommandType { return CmdSetFillRule }

// SetLineWidthCommand sets the stroke width.
type SetLineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// SetLineJoinCommand sets the stroke join.
type SetLineJoinCommand struct {
	Join backend.LineJoin
}

// Type implements Command.
func (SetLineJoinCommand) Type() CommandType { return CmdSetLineJoin }

// SetLineCapCommand sets the stroke cap.
type SetLineCapCommand struct {
	Cap backend.LineCap
}

// Type implements Command.
func (SetLineCapCommand) Type() CommandType { return CmdSetLineCap }

// SetMiterLimitCommand sets the miter limit.
type SetMiterLimitCommand struct {
	Limit float64
}

// Type implements Command.
func (SetMiterLimitCommand) Type() CommandType { return CmdSetMiterLimit }

// --------------------------------------------------------------------------
// Image Commands
// --------------------------------------------------------------------------

// CreateImageSurfaceCommand binds pixels to a new surface. Pixels is a
// private copy, so the recording stays valid after the caller unlocks.
type CreateImageSurfaceCommand struct {
	Surface       SurfaceID
	Width, Height int
	Stride        int
	Pixels        []byte
}

// Type implements Command.
func (CreateImageSurfaceCommand) Type() CommandType { return CmdCreateImageSurface }

// SetSourceSurfaceCommand makes a surface the current source.
type SetSourceSurfaceCommand struct {
	Surface SurfaceID
	X, Y    float64
}

// Type implements Command.
func (SetSourceSurfaceCommand) Type() CommandType { return CmdSetSourceSurface }

// PaintWithAlphaCommand paints the current source.
type PaintWithAlphaCommand struct {
	Alpha float64
}

// Type implements Command.
func (PaintWithAlphaCommand) Type() CommandType { return CmdPaintWithAlpha }

// DestroySurfaceCommand releases a surface.
type DestroySurfaceCommand struct {
	Surface SurfaceID
}

// Type implements Command.
func (DestroySurfaceCommand) Type() CommandType { return CmdDestroySurface }

// --------------------------------------------------------------------------
// Text Commands
// --------------------------------------------------------------------------

// SetFontFaceCommand selects a typeface.
type SetFontFaceCommand struct {
	Face *backend.FontFace
}

// Type implements Command.
func (SetFontFaceCommand) Type() CommandType { return CmdSetFontFace }

// SetFontSizeCommand sets the font size.
type SetFontSizeCommand struct {
	Size float64
}

// Type implements Command.
func (SetFontSizeCommand) Type() CommandType { return CmdSetFontSize }

// ShowGlyphsCommand draws glyphs with the current font.
type ShowGlyphsCommand struct {
	Glyphs []backend.Glyph
}

// Type implements Command.
func (ShowGlyphsCommand) Type() CommandType { return CmdShowGlyphs }

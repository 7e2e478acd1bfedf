package record

import (
	"fmt"
	"strings"
)

// Format renders c as one listing line, e.g. "MoveTo 10 20".
func Format(c Command) string {
	name := c.Type().String()
	switch c := c.(type) {
	case SetMatrixCommand:
		return fmt.Sprintf("%s %v", name, c.Matrix)
	case MoveToCommand:
		return fmt.Sprintf("%s %g %g", name, c.X, c.Y)
	case LineToCommand:
		return fmt.Sprintf("%s %g %g", name, c.X, c.Y)
	case CurveToCommand:
		return fmt.Sprintf("%s %g %g %g %g %g %g", name, c.X1, c.Y1, c.X2, c.Y2, c.X3, c.Y3)
	case RectangleCommand:
		return fmt.Sprintf("%s %g %g %g %g", name, c.X, c.Y, c.Width, c.Height)
	case SetSourceRGBACommand:
		return fmt.Sprintf("%s %.4g %.4g %.4g %.4g", name, c.R, c.G, c.B, c.A)
	case SetFillRuleCommand:
		return fmt.Sprintf("%s %v", name, c.Rule)
	case SetLineWidthCommand:
		return fmt.Sprintf("%s %g", name, c.Width)
	case SetLineJoinCommand:
		return fmt.Sprintf("%s %v", name, c.Join)
	case SetLineCapCommand:
		return fmt.Sprintf("%s %v", name, c.Cap)
	case SetMiterLimitCommand:
		return fmt.Sprintf("%s %g", name, c.Limit)
	case CreateImageSurfaceCommand:
		return fmt.Sprintf("%s #%d %dx%d stride=%d", name, c.Surface, c.Width, c.Height, c.Stride)
	case SetSourceSurfaceCommand:
		return fmt.Sprintf("%s #%d %g %g", name, c.Surface, c.X, c.Y)
	case PaintWithAlphaCommand:
		return fmt.Sprintf("%s %.4g", name, c.Alpha)
	case DestroySurfaceCommand:
		return fmt.Sprintf("%s #%d", name, c.Surface)
	case SetFontFaceCommand:
		if c.Face == nil {
			return name + " <nil>"
		}
		return fmt.Sprintf("%s %d %q", name, c.Face.ID, c.Face.Family)
	case SetFontSizeCommand:
		return fmt.Sprintf("%s %g", name, c.Size)
	case ShowGlyphsCommand:
		var sb strings.Builder
		sb.WriteString(name)
		for _, g := range c.Glyphs {
			fmt.Fprintf(&sb, " %d@%g,%g", g.Index, g.X, g.Y)
		}
		return sb.String()
	default:
		return name
	}
}

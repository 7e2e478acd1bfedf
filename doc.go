// Package vecdev renders canvas drawing calls onto a stateful vector
// backend such as a PDF writer.
//
// # Overview
//
// A Device translates paths, rectangles, points, glyph runs and bitmaps into
// the path-and-paint command model of a Cairo-like backend.Context. Nothing
// is rasterized: geometry stays geometry, so the output is resolution
// independent.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/vecdev"
//		"github.com/gogpu/vecdev/backend"
//		_ "github.com/gogpu/vecdev/backend/pdf"
//	)
//
//	surf, err := backend.New("pdf", 595, 842)
//	if err != nil {
//		return err
//	}
//	dev, err := vecdev.NewDevice(surf, 595, 842)
//	if err != nil {
//		return err
//	}
//	defer dev.Close()
//
//	p := vecdev.NewPaint()
//	p.Color = vecdev.Red
//	dev.DrawRect(vecdev.RectXYWH(10, 10, 100, 50), p)
//
//	surf.WriteTo(out)
//
// # State
//
// The backend context holds a current matrix and clip. The device treats
// the last SetTransformAndClip values as the truth and restores them after
// every call that temporarily needs something else (sprites, bitmaps,
// DrawPaint), on every return path.
//
// # Contract Violations
//
// Caller bugs such as an odd point count in lines mode are logged at Error
// level and the call draws nothing. Built with the vecdev_debug tag, they
// panic instead.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package vecdev

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

package vecdev

import "errors"

var (
	// ErrNilContext is returned by NewDevice when no backend context is given.
	ErrNilContext = errors.New("vecdev: nil backend context")

	// ErrInvalidSize is returned by NewDevice for non-positive dimensions.
	ErrInvalidSize = errors.New("vecdev: device size must be positive")

	// ErrFontSelection is returned when a typeface cannot be selected on the
	// backend. The failed call draws nothing.
	ErrFontSelection = errors.New("vecdev: font selection failed")

	// ErrNoFontService is returned by text drawing on a device created
	// without WithFonts.
	ErrNoFontService = errors.New("vecdev: no font service configured")
)

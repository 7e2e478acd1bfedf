package vecdev

import "log/slog"

// ClipMode selects how clip regions reach the backend.
type ClipMode uint8

const (
	// ClipBounds clips to the bounding rectangle of the region. Regions made
	// of several rectangles lose precision; this is the default.
	ClipBounds ClipMode = iota
	// ClipExact emits every rectangle of the region as one clip path.
	ClipExact
)

// DeviceOption configures a Device during creation.
//
// Example:
//
//	fonts := typeface.NewRegistry()
//	dev, err := vecdev.NewDevice(ctx, 595, 842,
//	    vecdev.WithFonts(fonts),
//	    vecdev.WithLogger(slog.Default()))
type DeviceOption func(*deviceOptions)

// deviceOptions holds optional configuration for Device creation.
type deviceOptions struct {
	logger   *slog.Logger
	fonts    FontService
	clipMode ClipMode
}

// defaultOptions returns the default device options.
func defaultOptions() deviceOptions {
	return deviceOptions{
		logger:   nil, // Logger() at construction time
		clipMode: ClipBounds,
	}
}

// WithLogger sets the logger used by this device instead of the package
// logger.
func WithLogger(l *slog.Logger) DeviceOption {
	return func(o *deviceOptions) {
		o.logger = l
	}
}

// WithFonts sets the font service used for glyph runs.
func WithFonts(fs FontService) DeviceOption {
	return func(o *deviceOptions) {
		o.fonts = fs
	}
}

// WithClipMode selects how non-rectangular clip regions are sent to the
// backend.
func WithClipMode(m ClipMode) DeviceOption {
	return func(o *deviceOptions) {
		o.clipMode = m
	}
}

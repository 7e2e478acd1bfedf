package pdf

import (
	"log/slog"
)

// Option configures a Surface during creation.
type Option func(*options)

type options struct {
	compress bool
	title    string
	creator  string
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		compress: true,
		creator:  "vecdev",
	}
}

// WithCompression enables or disables content stream compression.
// Uncompressed output is handy for reading the generated operators.
func WithCompression(on bool) Option {
	return func(o *options) {
		o.compress = on
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithLogger sets the logger for output the PDF cannot represent exactly.
// The default is vecdev.Logger at creation time.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCreator sets the document creator. The default is "vecdev".
func WithCreator(creator string) Option {
	return func(o *options) {
		o.creator = creator
	}
}

package vecdev

import (
	"fmt"
	"log/slog"
)

// reportViolation reports a caller bug: an input the drawing contract rules
// out, as opposed to a runtime failure. It always logs at error level.
// Builds tagged vecdev_debug panic as well; other builds let the caller skip
// the offending operation.
func reportViolation(l *slog.Logger, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.Error("vecdev: contract violation", "detail", msg)
	if debugAssertions {
		panic("vecdev: contract violation: " + msg)
	}
}

// contractViolation reports through the device's logger.
func (d *Device) contractViolation(format string, args ...any) {
	reportViolation(d.log, format, args...)
}

// contractViolation reports through the package logger, for code that has
// no device at hand.
func contractViolation(format string, args ...any) {
	reportViolation(Logger(), format, args...)
}

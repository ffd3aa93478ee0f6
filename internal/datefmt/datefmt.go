// Package datefmt turns the current local date into the date part of a
// sequential prefix.
package datefmt

import (
	"context"
	"time"

	"github.com/adrianmusante/sequential-datetime-prefix/internal/logging"
)

// Recognized format selectors.
const (
	Compact2DigitYear = "yyMMdd"
	Compact4DigitYear = "yyyyMMdd"
	Dashed4DigitYear  = "yyyy-MM-dd"
	Dashed2DigitYear  = "yy-MM-dd"
)

// Default is the selector used when none is configured.
const Default = Compact2DigitYear

var layouts = []struct {
	selector string
	layout   string
}{
	{Compact2DigitYear, "060102"},
	{Compact4DigitYear, "20060102"},
	{Dashed4DigitYear, "2006-01-02"},
	{Dashed2DigitYear, "06-01-02"},
}

// Lookup returns the Go time layout for a recognized selector.
func Lookup(selector string) (layout string, ok bool) {
	for _, l := range layouts {
		if l.selector == selector {
			return l.layout, true
		}
	}
	return "", false
}

// Selectors returns the recognized selectors in display order.
func Selectors() []string {
	out := make([]string, 0, len(layouts))
	for _, l := range layouts {
		out = append(out, l.selector)
	}
	return out
}

// Format renders now according to selector.
//
// An unrecognized selector is returned unchanged so callers can use an
// arbitrary static prefix; a warning is logged through the context logger.
// now is formatted in its own location, callers pass time.Now() for the
// host's local date.
func Format(ctx context.Context, now time.Time, selector string) string {
	if layout, ok := Lookup(selector); ok {
		return now.Format(layout)
	}
	logging.FromContext(ctx).Warn("custom format used as-is; consider one of the standard formats",
		"format", selector, "standard", Selectors())
	return selector
}

// Package snipbook implements the data model for a book of photo cut-outs
// ("snips"): transparent raster images produced by clipping a photo to a
// decorative shape, collected on fixed-capacity pages.
//
// The shape outlines live in pkg/shape, the raster compositor in
// pkg/render. This package holds the Book with its page allocation rules
// and the Storage interface used to persist it.
package snipbook

import (
	"strings"

	"github.com/akeil/snipbook/internal/logging"
)

// SetLogLevel sets the log level to one of
// "debug", "info", "warning" or "error".
// Any other value disables logging.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}

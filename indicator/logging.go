// SPDX-License-Identifier: MIT
// Package: lvlsig/indicator

package indicator

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds the engine-boundary logger from a LogConfig:
// JSON lines on stderr by default, the zerolog console writer when
// Pretty is set. Unknown or empty level names fall back to info.
func NewLogger(cfg LogConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level)); err == nil && parsed != zerolog.NoLevel {
			level = parsed
		}
	}

	var w io.Writer = os.Stderr
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

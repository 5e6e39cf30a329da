// Package obs contains observability utilities such as logging and metrics.
package obs

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global structured logger used by the service. It defaults
// to a no-op logger so library code and tests can log without setup.
var Logger = zerolog.Nop()

// InitLogger initializes the global Logger. Format "console" switches from
// JSON to human-readable output.
func InitLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if format == "console" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	Logger = zerolog.New(output).With().Timestamp().Logger().Level(lvl)
}

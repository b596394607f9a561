// Package debug gates the --verbose diagnostic channel shared by the
// command surface and the core packages it calls into.
package debug

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	enabled bool
	out     io.Writer = os.Stderr
	logger  *lumberjack.Logger
)

// SetEnabled turns the debug channel on or off for the process lifetime;
// the root command sets this from --verbose before dispatching.
func SetEnabled(v bool) { enabled = v }

// Enabled reports whether debug output is currently on.
func Enabled() bool { return enabled }

// SetLogFile redirects the diagnostic channel to a rotated file instead
// of stderr (--log-file / BD_LOG_FILE). path == "" restores stderr.
// Rotation is conservative: a CLI's incidental debug log doesn't need
// aggressive retention.
func SetLogFile(path string) error {
	if logger != nil {
		if err := logger.Close(); err != nil {
			return err
		}
		logger = nil
	}
	if path == "" {
		out = os.Stderr
		return nil
	}
	logger = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		Compress:   false,
	}
	out = logger
	return nil
}

// Logf writes a formatted debug line iff Enabled.
func Logf(format string, args ...any) {
	if enabled {
		fmt.Fprintf(out, format, args...)
	}
}

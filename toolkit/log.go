package toolkit

import (
	"log/slog"
	"os"
)

// tkLogLevel controls the log level for toolkit debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var tkLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the
// toolkit. Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		tkLogLevel.Set(slog.LevelDebug)
	} else {
		tkLogLevel.Set(slog.LevelInfo)
	}
}

// tkLogger is the logger for toolkit diagnostics. Recoverable misuse
// (stack underflow, unknown font names) is logged here and no-oped,
// never panicked on.
var tkLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: tkLogLevel}))

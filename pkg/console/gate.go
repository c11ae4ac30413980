package console

// Level is the global verbosity dial. It is clamped to [MinVerbosity,
// MaxVerbosity] on every assignment; out-of-range values are a UX nuance,
// not an error.
type Level int

const (
	// MinVerbosity silences all gated output.
	MinVerbosity Level = 0
	// MaxVerbosity additionally shows DEBUG events.
	MaxVerbosity Level = 3
)

func clampLevel(n int) Level {
	if n < int(MinVerbosity) {
		return MinVerbosity
	}
	if n > int(MaxVerbosity) {
		return MaxVerbosity
	}
	return Level(n)
}

// Category classifies an output call for verbosity gating.
type Category int

const (
	// CategoryMessage covers plain messages and structural output:
	// anything that is not a leveled event.
	CategoryMessage Category = iota
	// CategoryEvent covers leveled, log-like event lines.
	CategoryEvent
)

// EventLevel is the severity of an event line. It selects both the style
// role (event.<LEVEL>) and the DEBUG-specific suppression rule.
type EventLevel string

const (
	LevelDebug   EventLevel = "DEBUG"
	LevelInfo    EventLevel = "INFO"
	LevelSuccess EventLevel = "SUCCESS"
	LevelWarning EventLevel = "WARNING"
	LevelError   EventLevel = "ERROR"
)

// allows decides whether a call of the given category (and, for events,
// level) may produce output at the given verbosity. Pure function; a
// denied call must leave the output stream untouched.
func allows(verbosity Level, category Category, level EventLevel) bool {
	if verbosity == 0 {
		return false
	}
	if category == CategoryMessage {
		return true
	}
	if verbosity < 2 {
		return false
	}
	if verbosity == 2 && level == LevelDebug {
		return false
	}
	return true
}

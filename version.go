package core

// Version is reported by `core version` and the REPL banner.
// BuildDate may be overridden at link time with -ldflags.
var (
	Version   = "0.4.0"
	BuildDate = "unknown"
)

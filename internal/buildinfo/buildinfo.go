// Package buildinfo exposes build metadata injected with -ldflags.
package buildinfo

var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Fields returns build metadata as key/value pairs for structured logging.
func Fields() []any {
	return []any{
		"version", orNA(BuildVersion),
		"date", orNA(BuildDate),
		"commit", orNA(BuildCommit),
	}
}

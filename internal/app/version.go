package app

import "fmt"

// ServiceName identifies this binary in logs and health responses.
const ServiceName = "portfolio-tracker"

// Set via ldflags, e.g.
// go build -ldflags "-X github.com/tdt-studio/portfolio-tracker/internal/app.Version=1.4.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /health and the startup log.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s+%s (%s)", Version, shortCommit(Commit), BuildTime)
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}

// Package version reports build metadata stamped in with -ldflags -X.
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String is the text printed by gridboard --version.
func String() string {
	return fmt.Sprintf("gridboard %s (commit %s, built %s)", Version, short(Commit), BuildTime)
}

// UserAgent identifies the CLI to the data service, e.g. gridboard/1.2.0+0123456.
func UserAgent() string {
	if Commit == "unknown" {
		return "gridboard/" + Version
	}
	return fmt.Sprintf("gridboard/%s+%s", Version, short(Commit))
}

func short(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

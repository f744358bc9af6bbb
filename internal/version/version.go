package version

import "fmt"

// Set during build via -ldflags "-X github.com/ytget/soundboard/internal/version.Version=X.Y.Z"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Full returns the version line printed by --version
func Full() string {
	return fmt.Sprintf("soundboard %s, commit %s, built at %s", Version, Commit, Date)
}

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set via -ldflags "-X github.com/NilFoundation/proverctl/common/version.gitTag=..."
var (
	gitTag    string
	gitCommit string
)

const unknownVersion = "<unknown>"

// BuildVersionString renders a multi-line version banner for the given application title.
func BuildVersionString(appTitle string) string {
	var sb strings.Builder
	sb.WriteString(appTitle)
	fmt.Fprintf(&sb, "\n Version:\t%s", Version())
	fmt.Fprintf(&sb, "\n OS/Arch:\t%s/%s", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&sb, "\n Git commit:\t%s", Commit())
	return sb.String()
}

// Version returns the release tag without the pre-release suffix.
func Version() string {
	if gitTag == "" {
		return unknownVersion
	}
	ver, _, _ := strings.Cut(gitTag, "-")
	return ver
}

// Commit returns the commit hash injected at link time, falling back to the VCS build info.
func Commit() string {
	if gitCommit != "" {
		return gitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return unknownVersion
}

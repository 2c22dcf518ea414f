// Package vars holds build information injected at link time.
package vars

import (
	"fmt"
	"runtime"
)

// Build information, overridden with -ldflags at release time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	URL       = "https://github.com/woozymasta/tinymid"
)

// Print writes the version information to stdout.
func Print() {
	fmt.Printf(`Version:    %s
Commit:     %s
Built:      %s
Go version: %s
OS/Arch:    %s/%s
URL:        %s
`, Version, Commit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH, URL)
}

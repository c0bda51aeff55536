// Package detect identifies the host platform and the user's interactive shell.
package detect

import "strings"

// WindowsGOOS is the host identifier of the Windows family.
const WindowsGOOS = "windows"

// Getenv looks up a single environment variable. An unset variable and an
// empty one are indistinguishable to callers.
type Getenv func(key string) string

// Info describes the detected platform.
type Info struct {
	Platform string
	Windows  bool
	Shell    string // empty when no shell could be determined
}

// Platform derives platform information from a raw host identifier
// (typically runtime.GOOS) and the environment.
func Platform(goos string, getenv Getenv) Info {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	info := Info{Platform: goos, Windows: goos == WindowsGOOS}
	if info.Windows {
		info.Platform = "windows"
	}
	info.Shell = shell(info.Windows, getenv)
	return info
}

func shell(windows bool, getenv Getenv) string {
	if windows {
		if comspec := getenv("COMSPEC"); comspec != "" {
			return baseName(comspec)
		}
	}
	// SHELL covers POSIX hosts and POSIX shells running on Windows (cygwin, msys).
	if sh := getenv("SHELL"); sh != "" {
		return baseName(sh)
	}
	return ""
}

// baseName strips any directory using both separators, so a Windows
// interpreter path resolves correctly on every host.
func baseName(p string) string {
	p = strings.TrimRight(p, `/\`)
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

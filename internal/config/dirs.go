package config

import (
	"path/filepath"

	"github.com/dkoosis/cliengine/internal/settings"
)

type dirCategory string

const (
	categoryConfig dirCategory = "config"
	categoryCache  dirCategory = "cache"
	categoryData   dirCategory = "data"
)

// dirs holds the per-user directories of one CLI.
type dirs struct {
	Home   string
	Config string
	Cache  string
	Data   string
}

// settingsPath is "" when the config directory is unknown.
func (d dirs) settingsPath() string {
	if d.Config == "" {
		return ""
	}
	return filepath.Join(d.Config, settings.FileName)
}

func (d dirs) errLog() string {
	if d.Cache == "" {
		return ""
	}
	return filepath.Join(d.Cache, "error.log")
}

// resolveDirs computes the per-user directories for dirname.
//
// Defaults are ~/.config, ~/.cache and ~/.local/share (~/Library/Caches
// for the macOS cache). On Windows LOCALAPPDATA replaces the default, and
// XDG_*_HOME overrides everything on every platform. A category with no
// home and no override resolves to "" rather than a relative path.
func resolveDirs(goos, dirname string, env Env) dirs {
	home := homeDir(goos, env)
	return dirs{
		Home:   home,
		Config: categoryDir(categoryConfig, goos, home, dirname, env),
		Cache:  categoryDir(categoryCache, goos, home, dirname, env),
		Data:   categoryDir(categoryData, goos, home, dirname, env),
	}
}

func categoryDir(c dirCategory, goos, home, dirname string, env Env) string {
	var base string
	switch {
	case home == "":
		// only overrides apply
	case c == categoryData:
		base = filepath.Join(home, ".local", "share")
	case c == categoryCache && goos == "darwin":
		base = filepath.Join(home, "Library", "Caches")
	default:
		base = filepath.Join(home, "."+string(c))
	}

	if goos == "windows" {
		if local := env.Get("LOCALAPPDATA"); local != "" {
			base = local
		}
	}

	switch c {
	case categoryConfig:
		base = firstNonEmpty(env.Get("XDG_CONFIG_HOME"), base)
	case categoryCache:
		base = firstNonEmpty(env.Get("XDG_CACHE_HOME"), base)
	case categoryData:
		base = firstNonEmpty(env.Get("XDG_DATA_HOME"), base)
	}

	if base == "" {
		return ""
	}
	return filepath.Join(base, dirname)
}

// homeDir reads only the snapshot. An unset home yields "".
func homeDir(goos string, env Env) string {
	if h := env.Get("HOME"); h != "" {
		return h
	}
	if goos == "windows" {
		return env.Get("USERPROFILE")
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

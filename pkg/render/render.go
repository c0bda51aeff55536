// Package render provides output renderers for a resolved configuration.
package render

import (
	"strconv"

	"github.com/dkoosis/cliengine/internal/config"
)

// Renderer converts a resolved configuration to formatted output.
type Renderer interface {
	Render(cfg config.ResolvedConfig) string
}

// fieldKind drives styling in the terminal renderer.
type fieldKind int

const (
	kindText fieldKind = iota
	kindBool
	kindUnset
)

type field struct {
	Key    string
	Value  string
	Kind   fieldKind
	Source string // resolution source, when tracked
}

type section struct {
	Name   string
	Fields []field
}

// sections lays out cfg in display order. Keys use the engine's
// camelCase field names.
func sections(cfg config.ResolvedConfig) []section {
	return []section{
		{Name: "identity", Fields: []field{
			text("name", cfg.Name),
			text("dirname", cfg.Dirname),
			text("bin", cfg.Bin),
			sourced(text("version", cfg.Version), cfg.Sources.Version),
			text("channel", cfg.Channel),
			text("userAgent", cfg.UserAgent),
		}},
		{Name: "platform", Fields: []field{
			text("platform", cfg.Platform),
			text("arch", cfg.Arch),
			boolean("windows", cfg.Windows),
			text("shell", cfg.Shell),
		}},
		{Name: "runtime", Fields: []field{
			text("debug", strconv.Itoa(cfg.Debug)),
			text("defaultCommand", cfg.DefaultCommand),
			text("updateDisabled", cfg.UpdateDisabled),
		}},
		{Name: "analytics", Fields: []field{
			sourced(boolean("skipAnalytics", cfg.SkipAnalytics), cfg.Sources.SkipAnalytics),
			sourced(text("install", cfg.Install), string(cfg.Sources.Install)),
		}},
		{Name: "paths", Fields: []field{
			text("root", cfg.Root),
			text("home", cfg.Home),
			text("configDir", cfg.ConfigDir),
			text("cacheDir", cfg.CacheDir),
			text("dataDir", cfg.DataDir),
			text("settingsPath", cfg.SettingsPath),
			text("errlog", cfg.ErrLog),
		}},
	}
}

func text(key, value string) field {
	if value == "" {
		return field{Key: key, Kind: kindUnset}
	}
	return field{Key: key, Value: value, Kind: kindText}
}

func boolean(key string, value bool) field {
	return field{Key: key, Value: strconv.FormatBool(value), Kind: kindBool}
}

func sourced(f field, source string) field {
	f.Source = source
	return f
}

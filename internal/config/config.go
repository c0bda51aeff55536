package config

import (
	"log/slog"

	"github.com/dkoosis/cliengine/internal/install"
	"github.com/dkoosis/cliengine/internal/settings"
)

// Defaults for values no source provides.
const (
	DefaultName    = "cli-engine"
	DefaultVersion = "0.0.0"
	DefaultChannel = "stable"
	DefaultCommand = "help"
)

// Resolution sources recorded in Sources.
const (
	SourceOption     = "option"
	SourceEnvTesting = "env-testing"
	SourceEnv        = "env"
	SourceSettings   = "settings"
	SourceManifest   = "manifest"
	SourceDefault    = "default"
)

// Options are the caller-supplied inputs to Build. The zero value is valid.
type Options struct {
	// Manifest is the host CLI's package metadata.
	Manifest *Manifest

	// Explicit overrides. Version "" means unset; nil pointers mean unset.
	Version       string
	SkipAnalytics *bool
	Install       *string

	// Env is the environment snapshot every variable is read from. A nil
	// Env snapshots the process environment; a non-nil empty Env means
	// no variables are set and the process environment is never consulted.
	Env Env

	// Injection points; zero values select the real implementations.
	GOOS      string
	GOARCH    string
	Root      string
	Store     settings.Store
	Generator install.Generator
	Logger    *slog.Logger
}

// ResolvedConfig is the effective configuration of one run. It is built
// fresh by every Build call and never modified afterwards.
type ResolvedConfig struct {
	Name           string
	Dirname        string
	Version        string
	UserAgent      string
	Platform       string
	Arch           string
	Windows        bool
	Shell          string
	Channel        string
	UpdateDisabled string // empty when updates are enabled
	Debug          int
	Bin            string
	Root           string
	DefaultCommand string
	S3             map[string]string
	SkipAnalytics  bool
	Install        string // empty when no durable identifier is available

	// Per-user locations
	Home         string
	ConfigDir    string
	CacheDir     string
	DataDir      string
	SettingsPath string
	ErrLog       string

	// Resolution metadata (for debugging)
	Sources Sources
}

// Sources records which layer supplied the values resolved by precedence.
type Sources struct {
	Version       string
	SkipAnalytics string
	Install       install.Source
}

// HasInstall reports whether a durable installation identifier is available.
func (c ResolvedConfig) HasInstall() bool {
	return c.Install != ""
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dkoosis/cliengine/internal/detect"
	"github.com/dkoosis/cliengine/internal/install"
	"github.com/dkoosis/cliengine/internal/settings"
)

// Build resolves the configuration from all sources. It never fails:
// every unreadable or unwritable source degrades to its default.
//
// Resolution order for skipAnalytics (highest first):
//  1. Options.SkipAnalytics
//  2. TESTING=1|true
//  3. CLI_ENGINE_SKIP_ANALYTICS=1
//  4. skipAnalytics in the settings file
//  5. false
func Build(opts Options) ResolvedConfig {
	env := opts.Env
	if env == nil {
		env = EnvFromOS()
	}
	debug := env.Debug()
	logger := opts.Logger
	if logger == nil {
		logger = defaultLogger(debug)
	}

	goos := firstNonEmpty(opts.GOOS, runtime.GOOS)
	goarch := firstNonEmpty(opts.GOARCH, runtime.GOARCH)

	manifest := opts.Manifest
	if manifest == nil {
		manifest = &Manifest{}
	}
	name := firstNonEmpty(manifest.Name, DefaultName)
	dirname := firstNonEmpty(manifest.CLIEngine.Dirname, name)
	version, versionSource := resolveVersion(opts.Version, manifest.Version)

	platform := detect.Platform(goos, env.Get)
	d := resolveDirs(goos, dirname, env)

	store := opts.Store
	if store == nil {
		store = defaultStore(d, logger)
	}
	doc := readSettings(store, logger)

	skip, skipSource := resolveSkipAnalytics(opts.SkipAnalytics, env, doc)
	id := install.NewManager(store, opts.Generator, logger).Resolve(opts.Install, skip, doc)

	root := opts.Root
	if root == "" {
		root = executableRoot()
	}

	cfg := ResolvedConfig{
		Name:           name,
		Dirname:        dirname,
		Version:        version,
		UserAgent:      fmt.Sprintf("%s/%s (%s-%s) %s", name, version, platform.Platform, goarch, runtime.Version()),
		Platform:       platform.Platform,
		Arch:           goarch,
		Windows:        platform.Windows,
		Shell:          platform.Shell,
		Channel:        DefaultChannel,
		UpdateDisabled: env.UpdateDisabled(name),
		Debug:          debug,
		Bin:            name,
		Root:           root,
		DefaultCommand: DefaultCommand,
		S3:             map[string]string{},
		SkipAnalytics:  skip,
		Install:        id.ID,
		Home:           d.Home,
		ConfigDir:      d.Config,
		CacheDir:       d.Cache,
		DataDir:        d.Data,
		SettingsPath:   d.settingsPath(),
		ErrLog:         d.errLog(),
		Sources: Sources{
			Version:       versionSource,
			SkipAnalytics: skipSource,
			Install:       id.Source,
		},
	}

	logger.Debug("resolved config",
		"name", cfg.Name,
		"version", cfg.Version,
		"platform", cfg.Platform,
		"skipAnalytics", cfg.SkipAnalytics,
		"skipAnalyticsSource", skipSource,
		"installSource", string(id.Source),
	)
	return cfg
}

// BuildDefault resolves the configuration with no caller options.
func BuildDefault() ResolvedConfig {
	return Build(Options{})
}

func resolveVersion(option, manifest string) (string, string) {
	if option != "" {
		return option, SourceOption
	}
	if manifest != "" {
		return manifest, SourceManifest
	}
	return DefaultVersion, SourceDefault
}

func resolveSkipAnalytics(option *bool, env Env, doc settings.Document) (bool, string) {
	if option != nil {
		return *option, SourceOption
	}
	if env.Testing() {
		return true, SourceEnvTesting
	}
	if env.SkipAnalytics() {
		return true, SourceEnv
	}
	if v, ok := doc.SkipAnalytics(); ok {
		return v, SourceSettings
	}
	return false, SourceDefault
}

// defaultStore is the settings file under the config directory, or a store
// that refuses writes when that directory is unknown.
func defaultStore(d dirs, logger *slog.Logger) settings.Store {
	path := d.settingsPath()
	if path == "" {
		logger.Warn("no home directory; settings will not be persisted")
		return settings.NoLocationStore{}
	}
	return settings.NewFileStore(path)
}

// readSettings treats every read failure as an empty document.
func readSettings(store settings.Store, logger *slog.Logger) settings.Document {
	doc, err := store.Read()
	if err == nil {
		return doc
	}
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("settings file absent", "error", err)
	} else {
		logger.Warn("ignoring unreadable settings", "error", err)
	}
	return settings.Empty()
}

// executableRoot is the directory holding the running binary, or "" when
// it cannot be determined.
func executableRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func defaultLogger(debug int) *slog.Logger {
	if debug <= 0 {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

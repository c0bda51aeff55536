package render

import (
	"encoding/json"

	"github.com/dkoosis/cliengine/internal/config"
)

// JSON renders the configuration as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput mirrors ResolvedConfig with the engine's field names. Unset
// install and updateDisabled encode as null.
type jsonOutput struct {
	Name           string            `json:"name"`
	Dirname        string            `json:"dirname"`
	Version        string            `json:"version"`
	UserAgent      string            `json:"userAgent"`
	Platform       string            `json:"platform"`
	Arch           string            `json:"arch"`
	Windows        bool              `json:"windows"`
	Shell          string            `json:"shell"`
	Channel        string            `json:"channel"`
	UpdateDisabled *string           `json:"updateDisabled"`
	Debug          int               `json:"debug"`
	Bin            string            `json:"bin"`
	Root           string            `json:"root"`
	DefaultCommand string            `json:"defaultCommand"`
	S3             map[string]string `json:"s3"`
	SkipAnalytics  bool              `json:"skipAnalytics"`
	Install        *string           `json:"install"`
	Home           string            `json:"home"`
	ConfigDir      string            `json:"configDir"`
	CacheDir       string            `json:"cacheDir"`
	DataDir        string            `json:"dataDir"`
	SettingsPath   string            `json:"settingsPath"`
	ErrLog         string            `json:"errlog"`
	Sources        jsonSources       `json:"sources"`
}

type jsonSources struct {
	Version       string `json:"version"`
	SkipAnalytics string `json:"skipAnalytics"`
	Install       string `json:"install"`
}

// Render formats cfg as indented JSON.
func (j *JSON) Render(cfg config.ResolvedConfig) string {
	out := jsonOutput{
		Name:           cfg.Name,
		Dirname:        cfg.Dirname,
		Version:        cfg.Version,
		UserAgent:      cfg.UserAgent,
		Platform:       cfg.Platform,
		Arch:           cfg.Arch,
		Windows:        cfg.Windows,
		Shell:          cfg.Shell,
		Channel:        cfg.Channel,
		UpdateDisabled: nullable(cfg.UpdateDisabled),
		Debug:          cfg.Debug,
		Bin:            cfg.Bin,
		Root:           cfg.Root,
		DefaultCommand: cfg.DefaultCommand,
		S3:             cfg.S3,
		SkipAnalytics:  cfg.SkipAnalytics,
		Install:        nullable(cfg.Install),
		Home:           cfg.Home,
		ConfigDir:      cfg.ConfigDir,
		CacheDir:       cfg.CacheDir,
		DataDir:        cfg.DataDir,
		SettingsPath:   cfg.SettingsPath,
		ErrLog:         cfg.ErrLog,
		Sources: jsonSources{
			Version:       cfg.Sources.Version,
			SkipAnalytics: cfg.Sources.SkipAnalytics,
			Install:       string(cfg.Sources.Install),
		},
	}
	if out.S3 == nil {
		out.S3 = map[string]string{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

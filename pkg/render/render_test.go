package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/cliengine/internal/config"
	"github.com/dkoosis/cliengine/internal/install"
)

func sampleConfig() config.ResolvedConfig {
	return config.ResolvedConfig{
		Name:           "mycli",
		Dirname:        "heroku",
		Version:        "1.0.0",
		UserAgent:      "mycli/1.0.0 (linux-amd64) go1.24.7",
		Platform:       "linux",
		Arch:           "amd64",
		Shell:          "bash",
		Channel:        "stable",
		Bin:            "mycli",
		Root:           "/opt/mycli",
		DefaultCommand: "help",
		S3:             map[string]string{},
		Install:        "0b5a1b2c-3d4e-4f60-8a7b-9c0d1e2f3a4b",
		ConfigDir:      "/home/u/.config/heroku",
		Sources: config.Sources{
			Version:       config.SourceManifest,
			SkipAnalytics: config.SourceDefault,
			Install:       install.SourceSettings,
		},
	}
}

func TestTerminal_RendersEverySection(t *testing.T) {
	out := NewTerminal(MonoTheme(), 120).Render(sampleConfig())

	for _, want := range []string{"Mycli 1.0.0", "Identity", "Platform", "Runtime", "Analytics", "Paths"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "(manifest)")
	assert.Contains(t, out, "x false", "skipAnalytics uses the mono false icon")
}

func TestTerminal_AlignsKeys(t *testing.T) {
	out := NewTerminal(MonoTheme(), 120).Render(sampleConfig())

	var nameLine, settingsLine string
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "  name "):
			nameLine = line
		case strings.HasPrefix(line, "  settingsPath "):
			settingsLine = line
		}
	}
	require.NotEmpty(t, nameLine)
	require.NotEmpty(t, settingsLine)
	assert.Equal(t, strings.Index(settingsLine, "  -"), strings.Index(nameLine, "  mycli"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "abcdefg…", truncate("abcdefghijklmnop", 8))
}

func TestPlain_Render(t *testing.T) {
	out := NewPlain().Render(sampleConfig())

	assert.Contains(t, out, "name=mycli\n")
	assert.Contains(t, out, "updateDisabled=\n")
	assert.Contains(t, out, "windows=false\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestJSON_Render(t *testing.T) {
	cfg := sampleConfig()
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(NewJSON().Render(cfg)), &got))

	assert.Equal(t, "mycli", got["name"])
	assert.Equal(t, cfg.Install, got["install"])
	assert.Nil(t, got["updateDisabled"])
	assert.Equal(t, map[string]any{}, got["s3"])
	assert.Equal(t, "settings", got["sources"].(map[string]any)["install"])

	cfg.Install = ""
	require.NoError(t, json.Unmarshal([]byte(NewJSON().Render(cfg)), &got))
	assert.Contains(t, got, "install")
	assert.Nil(t, got["install"])
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("anything").Name)
}

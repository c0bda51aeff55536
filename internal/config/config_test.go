package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFromList(t *testing.T) {
	env := EnvFromList([]string{"A=1", "B=x=y", "EMPTY=", "=skipped", "NOEQUALS", "A=2"})

	assert.Equal(t, "2", env.Get("A"))
	assert.Equal(t, "x=y", env.Get("B"))
	assert.Equal(t, "", env.Get("EMPTY"))
	assert.Equal(t, "", env.Get("MISSING"))
	assert.NotContains(t, env, "NOEQUALS")
}

func TestEnv_Debug(t *testing.T) {
	tests := map[string]int{"": 0, "2": 2, " 3 ": 3, "true": 0, "-1": -1}
	for in, want := range tests {
		assert.Equal(t, want, Env{EnvDebug: in}.Debug(), "CLI_ENGINE_DEBUG=%q", in)
	}
}

func TestEnv_SkipAnalytics(t *testing.T) {
	assert.True(t, Env{EnvSkipAnalytics: "1"}.SkipAnalytics())
	assert.False(t, Env{EnvSkipAnalytics: "true"}.SkipAnalytics())
	assert.False(t, Env{}.SkipAnalytics())
}

func TestResolveDirs(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		env        Env
		wantConfig string
		wantCache  string
		wantData   string
	}{
		{
			name:       "linux defaults",
			goos:       "linux",
			env:        Env{"HOME": "/home/u"},
			wantConfig: filepath.Join("/home/u", ".config", "mycli"),
			wantCache:  filepath.Join("/home/u", ".cache", "mycli"),
			wantData:   filepath.Join("/home/u", ".local", "share", "mycli"),
		},
		{
			name:       "darwin cache",
			goos:       "darwin",
			env:        Env{"HOME": "/Users/u"},
			wantConfig: filepath.Join("/Users/u", ".config", "mycli"),
			wantCache:  filepath.Join("/Users/u", "Library", "Caches", "mycli"),
			wantData:   filepath.Join("/Users/u", ".local", "share", "mycli"),
		},
		{
			name:       "windows local app data",
			goos:       "windows",
			env:        Env{"USERPROFILE": "/c/Users/u", "LOCALAPPDATA": "/c/Users/u/AppData/Local"},
			wantConfig: filepath.Join("/c/Users/u/AppData/Local", "mycli"),
			wantCache:  filepath.Join("/c/Users/u/AppData/Local", "mycli"),
			wantData:   filepath.Join("/c/Users/u/AppData/Local", "mycli"),
		},
		{
			name: "xdg overrides",
			goos: "windows",
			env: Env{
				"HOME":            "/home/u",
				"LOCALAPPDATA":    "/local",
				"XDG_CONFIG_HOME": "/xdg/config",
				"XDG_CACHE_HOME":  "/xdg/cache",
				"XDG_DATA_HOME":   "/xdg/data",
			},
			wantConfig: filepath.Join("/xdg/config", "mycli"),
			wantCache:  filepath.Join("/xdg/cache", "mycli"),
			wantData:   filepath.Join("/xdg/data", "mycli"),
		},
		{
			name:       "no home",
			goos:       "linux",
			env:        Env{},
			wantConfig: "",
			wantCache:  "",
			wantData:   "",
		},
		{
			name:       "no home with xdg config",
			goos:       "linux",
			env:        Env{"XDG_CONFIG_HOME": "/xdg/config"},
			wantConfig: filepath.Join("/xdg/config", "mycli"),
			wantCache:  "",
			wantData:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := resolveDirs(tt.goos, "mycli", tt.env)
			assert.Equal(t, tt.wantConfig, d.Config)
			assert.Equal(t, tt.wantCache, d.Cache)
			assert.Equal(t, tt.wantData, d.Data)
			if tt.wantConfig == "" {
				assert.Empty(t, d.settingsPath())
			} else {
				assert.Equal(t, filepath.Join(tt.wantConfig, "config.json"), d.settingsPath())
			}
			if tt.wantCache == "" {
				assert.Empty(t, d.errLog())
			} else {
				assert.Equal(t, filepath.Join(tt.wantCache, "error.log"), d.errLog())
			}
		})
	}
}

func TestLoadManifest(t *testing.T) {
	want := &Manifest{Name: "mycli", Version: "1.0.0", CLIEngine: EngineSection{Dirname: "heroku"}}

	files := map[string]string{
		"package.json": `{
  "name": "mycli",
  "version": "1.0.0",
  "scripts": {"test": "jest"},
  "cli-engine": {"dirname": "heroku"}
}`,
		"manifest.yaml": "name: mycli\nversion: 1.0.0\ncli-engine:\n  dirname: heroku\n",
		"manifest.toml": "name = \"mycli\"\nversion = \"1.0.0\"\n\n[cli-engine]\ndirname = \"heroku\"\n",
	}

	dir := t.TempDir()
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			got, err := LoadManifest(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadManifest_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadManifest(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = LoadManifest(bad)
	assert.Error(t, err)
}

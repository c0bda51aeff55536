package detect

import "testing"

func envMap(vars map[string]string) Getenv {
	return func(key string) string { return vars[key] }
}

func TestPlatform_Windows(t *testing.T) {
	got := Platform("windows", nil)
	if got.Platform != "windows" {
		t.Errorf("Platform = %q, want windows", got.Platform)
	}
	if !got.Windows {
		t.Error("expected Windows to be true")
	}
}

func TestPlatform_Other(t *testing.T) {
	got := Platform("other", nil)
	if got.Platform != "other" {
		t.Errorf("Platform = %q, want other", got.Platform)
	}
	if got.Windows {
		t.Error("expected Windows to be false")
	}
}

func TestPlatform_Shell(t *testing.T) {
	tests := []struct {
		name string
		goos string
		env  map[string]string
		want string
	}{
		{
			name: "windows uses COMSPEC",
			goos: "windows",
			env:  map[string]string{"COMSPEC": `C:\ProgramFiles\cmd.exe`},
			want: "cmd.exe",
		},
		{
			name: "COMSPEC wins over SHELL on windows",
			goos: "windows",
			env:  map[string]string{"COMSPEC": `C:\Windows\System32\cmd.exe`, "SHELL": "/bin/bash"},
			want: "cmd.exe",
		},
		{
			name: "cygwin shell on windows",
			goos: "windows",
			env:  map[string]string{"SHELL": "/bin/bash"},
			want: "bash",
		},
		{
			name: "unix-like",
			goos: "darwin",
			env:  map[string]string{"SHELL": "/usr/bin/fish"},
			want: "fish",
		},
		{
			name: "COMSPEC ignored off windows",
			goos: "linux",
			env:  map[string]string{"COMSPEC": `C:\ProgramFiles\cmd.exe`},
			want: "",
		},
		{
			name: "no shell variables",
			goos: "linux",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Platform(tt.goos, envMap(tt.env))
			if got.Shell != tt.want {
				t.Errorf("Shell = %q, want %q", got.Shell, tt.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"/bin/zsh":                "zsh",
		`C:\ProgramFiles\cmd.exe`: "cmd.exe",
		"pwsh":                    "pwsh",
		"/usr/local/bin/bash/":    "bash",
		`C:\msys64/usr/bin/bash`:  "bash",
	}
	for in, want := range tests {
		if got := baseName(in); got != want {
			t.Errorf("baseName(%q) = %q, want %q", in, got, want)
		}
	}
}

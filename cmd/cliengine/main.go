// cliengine resolves and prints the effective configuration of a CLI built
// on the engine, creating its anonymous installation identifier on first use.
//
// Usage:
//
//	cliengine --manifest package.json
//	cliengine --manifest cli.toml --skip-analytics --format json
//	CLI_ENGINE_DEBUG=1 cliengine
//
// Output formats (auto-detected):
//
//	terminal  styled output (default when TTY)
//	plain     key=value lines (default when piped)
//	json      structured JSON for automation
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/dkoosis/cliengine/internal/config"
	"github.com/dkoosis/cliengine/internal/version"
	"github.com/dkoosis/cliengine/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], config.EnvFromOS(), os.Stdout, os.Stderr))
}

func run(args []string, env config.Env, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("cliengine", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	manifestFlag := fs.StringP("manifest", "m", "", "Path to the CLI manifest (package.json, .yaml or .toml)")
	versionFlag := fs.String("set-version", "", "Override the CLI version")
	installFlag := fs.String("install", "", "Use this installation identifier instead of the stored one")
	skipFlag := fs.Bool("skip-analytics", false, "Disable analytics for this run")
	formatFlag := fs.StringP("format", "f", "auto", "Output format: auto, terminal, plain, json")
	themeFlag := fs.String("theme", "default", "Theme: default, mono")
	showVersion := fs.BoolP("version", "v", false, "Print cliengine version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	renderer, err := selectRenderer(*formatFlag, *themeFlag, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "cliengine: %v\n", err)
		return 2
	}

	opts := config.Options{Env: env, Version: *versionFlag}
	if *manifestFlag != "" {
		m, err := config.LoadManifest(*manifestFlag)
		if err != nil {
			fmt.Fprintf(stderr, "cliengine: %v\n", err)
			return 1
		}
		opts.Manifest = m
	}
	if fs.Changed("install") {
		opts.Install = installFlag
	}
	if fs.Changed("skip-analytics") {
		opts.SkipAnalytics = skipFlag
	}

	cfg := config.Build(opts)
	fmt.Fprint(stdout, renderer.Render(cfg))
	return 0
}

func selectRenderer(format, theme string, stdout io.Writer) (render.Renderer, error) {
	if format == "auto" {
		format = "plain"
		if isTTYWriter(stdout) {
			format = "terminal"
		}
	}

	switch format {
	case "terminal":
		return render.NewTerminal(render.ThemeByName(theme), termWidth(stdout)), nil
	case "plain":
		return render.NewPlain(), nil
	case "json":
		return render.NewJSON(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want auto, terminal, plain, json)", format)
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width of w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/cliengine/internal/config"
)

// Terminal renders the configuration as styled terminal output via lipgloss.
// A Terminal is not safe for concurrent use.
type Terminal struct {
	theme  Theme
	width  int
	titler cases.Caser
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, titler: cases.Title(language.English)}
}

// Render formats cfg grouped by section with aligned keys.
func (t *Terminal) Render(cfg config.ResolvedConfig) string {
	all := sections(cfg)

	keyWidth := 0
	for _, s := range all {
		for _, f := range s.Fields {
			keyWidth = max(keyWidth, runewidth.StringWidth(f.Key))
		}
	}

	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(t.titler.String(cfg.Bin) + " " + cfg.Version))
	sb.WriteString(" ")
	sb.WriteString(t.theme.Muted.Render(t.theme.Icons.Bullet + " " + cfg.Channel))
	sb.WriteString("\n")

	for _, s := range all {
		sb.WriteString("\n")
		sb.WriteString(t.theme.Primary.Render(t.titler.String(s.Name)))
		sb.WriteString("\n")
		for _, f := range s.Fields {
			sb.WriteString(t.renderField(f, keyWidth))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (t *Terminal) renderField(f field, keyWidth int) string {
	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(padRight(f.Key, keyWidth))
	sb.WriteString("  ")

	avail := t.width - keyWidth - 4
	if f.Source != "" {
		avail -= runewidth.StringWidth(f.Source) + 3
	}

	switch f.Kind {
	case kindUnset:
		sb.WriteString(t.theme.Muted.Render(t.theme.Icons.Unset))
	case kindBool:
		icon, style := t.theme.Icons.False, t.theme.Muted
		if f.Value == "true" {
			icon, style = t.theme.Icons.True, t.theme.Success
		}
		sb.WriteString(style.Render(icon + " " + f.Value))
	default:
		sb.WriteString(t.valueStyle(f).Render(truncate(f.Value, avail)))
	}

	if f.Source != "" {
		sb.WriteString(t.theme.Muted.Render(" (" + f.Source + ")"))
	}
	return sb.String()
}

// valueStyle highlights values that did not come from a default.
func (t *Terminal) valueStyle(f field) lipgloss.Style {
	if f.Source != "" && f.Source != config.SourceDefault {
		return t.theme.Warning
	}
	return lipgloss.NewStyle()
}

func truncate(s string, width int) string {
	if width < 8 {
		width = 8
	}
	return runewidth.Truncate(s, width, "…")
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

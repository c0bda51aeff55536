package render

import (
	"strings"

	"github.com/dkoosis/cliengine/internal/config"
)

// Plain renders key=value lines with zero ANSI codes, for piping into
// scripts. Unset values render as an empty value.
type Plain struct{}

// NewPlain creates a plain renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats cfg one field per line in display order.
func (p *Plain) Render(cfg config.ResolvedConfig) string {
	var sb strings.Builder
	for _, s := range sections(cfg) {
		for _, f := range s.Fields {
			sb.WriteString(f.Key)
			sb.WriteString("=")
			sb.WriteString(f.Value)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

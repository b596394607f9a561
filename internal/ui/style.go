package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorAccent = lipgloss.Color("12")
	ColorWarn   = lipgloss.Color("11")
	ColorPass   = lipgloss.Color("10")
	ColorFail   = lipgloss.Color("9")
	ColorMuted  = lipgloss.Color("8")
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	passStyle   = lipgloss.NewStyle().Foreground(ColorPass)
	failStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
)

func render(style lipgloss.Style, s string) string {
	if !ShouldUseColor() {
		return s
	}
	return style.Render(s)
}

// RenderAccent highlights s in the accent color when color output is enabled.
func RenderAccent(s string) string { return render(accentStyle, s) }

// RenderWarn highlights s in the warning color when color output is enabled.
func RenderWarn(s string) string { return render(warnStyle, s) }

// RenderPass highlights s in the success color when color output is enabled.
func RenderPass(s string) string { return render(passStyle, s) }

// RenderFail highlights s in the failure color when color output is enabled.
func RenderFail(s string) string { return render(failStyle, s) }

// RenderMuted highlights s in the muted color when color output is enabled.
func RenderMuted(s string) string { return render(mutedStyle, s) }

// looksLikeMarkdown reports whether s contains a heading, a list marker,
// or a fenced code block, the cheap heuristic deciding whether a
// long-form field is worth spending a glamour render on.
func looksLikeMarkdown(s string) bool {
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, "- ") ||
			strings.HasPrefix(trimmed, "* ") ||
			strings.HasPrefix(trimmed, "```") {
			return true
		}
	}
	return false
}

// RenderMarkdown renders s through glamour's terminal renderer when color
// output is enabled and s looks like markdown; otherwise it returns s
// unchanged. Render failures (e.g. a malformed fence) fall back to the
// raw text rather than losing the field's content.
func RenderMarkdown(s string) string {
	if s == "" || !ShouldUseColor() || !looksLikeMarkdown(s) {
		return s
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetWidth()),
	)
	if err != nil {
		return s
	}
	out, err := renderer.Render(s)
	if err != nil {
		return s
	}
	return strings.TrimRight(out, "\n")
}

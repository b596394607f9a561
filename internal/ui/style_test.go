package ui

import "testing"

func TestLooksLikeMarkdown_DetectsHeading(t *testing.T) {
	if !looksLikeMarkdown("# Title\nsome body text") {
		t.Error("expected a heading to be detected as markdown")
	}
}

func TestLooksLikeMarkdown_DetectsListMarkers(t *testing.T) {
	for _, s := range []string{"- item one", "* item one"} {
		if !looksLikeMarkdown(s) {
			t.Errorf("expected %q to be detected as markdown", s)
		}
	}
}

func TestLooksLikeMarkdown_DetectsFencedCodeBlock(t *testing.T) {
	if !looksLikeMarkdown("intro\n```go\nfmt.Println(1)\n```") {
		t.Error("expected a fenced code block to be detected as markdown")
	}
}

func TestLooksLikeMarkdown_PlainTextIsNotMarkdown(t *testing.T) {
	if looksLikeMarkdown("just a plain sentence with no markup") {
		t.Error("expected plain text not to be detected as markdown")
	}
}

func TestRenderMarkdown_EmptyStringPassesThrough(t *testing.T) {
	if got := RenderMarkdown(""); got != "" {
		t.Errorf("got %q, want empty string unchanged", got)
	}
}

func TestRenderMarkdown_PassesThroughWhenColorDisabled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	s := "# Heading\n\n- a list item"
	if got := RenderMarkdown(s); got != s {
		t.Errorf("expected markdown to pass through unchanged with color disabled, got %q", got)
	}
}

func TestRenderMarkdown_PlainTextPassesThroughEvenWithColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")
	s := "just a plain sentence"
	if got := RenderMarkdown(s); got != s {
		t.Errorf("expected non-markdown text to pass through unchanged, got %q", got)
	}
}

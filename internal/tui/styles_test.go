package tui

import (
	"strings"
	"testing"
)

func TestRenderError(t *testing.T) {
	got := RenderError("prog.cpp:3:7", "Syntax error: expecting: Semicolon; saw: RightBrace(})")
	for _, want := range []string{"prog.cpp:3:7:", "error:", "expecting: Semicolon"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderError() = %q, missing %q", got, want)
		}
	}

	if got := RenderError("", "boom"); strings.Contains(got, ":  ") || !strings.Contains(got, "boom") {
		t.Errorf("RenderError without location = %q", got)
	}
}

func TestRenderKeyValue(t *testing.T) {
	got := RenderKeyValue("statements", 3, 14)
	if !strings.Contains(got, "statements") || !strings.Contains(got, "3") {
		t.Errorf("RenderKeyValue() = %q", got)
	}
}

func TestRenderTabs(t *testing.T) {
	got := RenderTabs([]string{"Tree", "S-Expr", "Tokens"}, 1)
	for _, want := range []string{"Tree", "S-Expr", "Tokens"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderTabs() = %q, missing %q", got, want)
		}
	}
}

package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(4); got != 0 {
		t.Errorf("ContentHeight(4) = %d, want 0", got)
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow terminal should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Cells are the unit of life...", "Slide 2/4", 100)

	for _, want := range []string{"EduVision", "Cells are the unit of life...", "Slide 2/4"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if h := lipgloss.Height(out); h != HeaderHeight {
		t.Errorf("header height = %d, want %d", h, HeaderHeight)
	}
}

func TestRenderFooter_DropsOverflow(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit the application right now"},
	}
	out := RenderFooter(hints, 30)
	if !strings.Contains(out, "Enter") {
		t.Error("first hint should fit")
	}
	if strings.Contains(out, "Quit the application") {
		t.Error("overflowing hint should be dropped")
	}
	if h := lipgloss.Height(out); h != FooterHeight {
		t.Errorf("footer height = %d, want %d", h, FooterHeight)
	}
}

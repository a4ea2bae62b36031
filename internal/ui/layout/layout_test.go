package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{60, 20, false},
		{59, 24, true},
		{80, 19, true},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader_ShowsTitleAndStatus(t *testing.T) {
	h := RenderHeader("Quiz", "Q 2/10  0:42", 80)
	if !strings.Contains(h, "QuickMath") || !strings.Contains(h, "Quiz") || !strings.Contains(h, "0:42") {
		t.Errorf("header missing parts:\n%s", h)
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
	if ContentHeight(header, footer, 4) != 0 {
		t.Error("ContentHeight should clamp at zero")
	}
}

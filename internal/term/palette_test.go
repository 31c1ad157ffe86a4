package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/mvim/internal/config"
)

func TestNamedColorDefault(t *testing.T) {
	if got := NamedColor(config.ColorDefault); got != tcell.ColorDefault {
		t.Errorf("NamedColor(ColorDefault) = %v, want tcell.ColorDefault", got)
	}
}

func TestNamedColorUnknownFallsBackToDefault(t *testing.T) {
	if got := NamedColor(config.ColorName("not-a-color")); got != tcell.ColorDefault {
		t.Errorf("NamedColor(unknown) = %v, want tcell.ColorDefault", got)
	}
}

func TestNamedColorResolvesEveryPaletteEntry(t *testing.T) {
	names := []config.ColorName{
		config.ColorBlack, config.ColorWhite, config.ColorRed, config.ColorGreen,
		config.ColorBlue, config.ColorYellow, config.ColorMagenta, config.ColorCyan,
	}
	for _, n := range names {
		if got := NamedColor(n); got == tcell.ColorDefault {
			t.Errorf("NamedColor(%q) resolved to the default color, want a distinct RGB color", n)
		}
	}
}

package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/mvim/internal/config"
)

// namedHex maps the editor's fixed color-name palette to an RGB hex
// triplet. go-colorful parses each into a colorful.Color so the palette
// is defined once in a perceptual color space rather than as raw tcell
// constants, even though these particular names map onto basic ANSI
// colors — this keeps the palette extensible to richer theme colors
// without changing how NamedColor resolves them.
var namedHex = map[config.ColorName]string{
	config.ColorDefault: "#c0c0c0",
	config.ColorBlack:   "#000000",
	config.ColorWhite:   "#ffffff",
	config.ColorRed:     "#ff0000",
	config.ColorGreen:   "#00ff00",
	config.ColorBlue:    "#0000ff",
	config.ColorYellow:  "#ffff00",
	config.ColorMagenta: "#ff00ff",
	config.ColorCyan:    "#00ffff",
}

// NamedColor resolves one of the editor's fixed color names to a
// tcell.Color. An unrecognized name resolves to tcell.ColorDefault.
func NamedColor(name config.ColorName) tcell.Color {
	if name == config.ColorDefault {
		return tcell.ColorDefault
	}
	hex, ok := namedHex[name]
	if !ok {
		return tcell.ColorDefault
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Package config holds the editor's runtime-tunable options: tab width,
// auto-pairing, auto-indent, number display, the onemore virtual column,
// mouse and color toggles, and the two named colors. These live on the
// Editor value itself, never in a package-level global, so a future
// multi-instance embedding stays possible without any code change here.
package config

// ColorName is one of the fixed palette names the "set background" and
// "set searchcolor" colon commands accept.
type ColorName string

const (
	ColorDefault ColorName = "default"
	ColorBlack   ColorName = "black"
	ColorWhite   ColorName = "white"
	ColorRed     ColorName = "red"
	ColorGreen   ColorName = "green"
	ColorBlue    ColorName = "blue"
	ColorYellow  ColorName = "yellow"
	ColorMagenta ColorName = "magenta"
	ColorCyan    ColorName = "cyan"
)

// ValidColorName reports whether name is one of the fixed palette names.
func ValidColorName(name string) bool {
	switch ColorName(name) {
	case ColorDefault, ColorBlack, ColorWhite, ColorRed, ColorGreen,
		ColorBlue, ColorYellow, ColorMagenta, ColorCyan:
		return true
	default:
		return false
	}
}

// Options is the full set of user-tunable editor options.
type Options struct {
	TabWidth        int
	AutoPair        bool
	AutoIndent      bool
	ShowNumbers     bool
	RelativeNumbers bool
	OneMore         bool
	EnableMouse     bool
	EnableColor     bool
	Background      ColorName
	SearchColor     ColorName
}

// Default returns the editor's default option set.
func Default() Options {
	return Options{
		TabWidth:        4,
		AutoPair:        true,
		AutoIndent:      true,
		ShowNumbers:     true,
		RelativeNumbers: false,
		OneMore:         false,
		EnableMouse:     true,
		EnableColor:     true,
		Background:  ColorDefault,
		SearchColor: ColorYellow,
	}
}

package config

import (
	"fmt"
	"strconv"
)

// Apply applies one "set <name> [arg]" colon-command body to opts,
// mutating it in place. An empty arg toggles a boolean option. It
// returns an error naming the unknown option or malformed argument.
func Apply(opts *Options, name, arg string) error {
	switch name {
	case "number":
		opts.ShowNumbers = toggleOrBool(opts.ShowNumbers, arg)
	case "relativenumber":
		opts.RelativeNumbers = toggleOrBool(opts.RelativeNumbers, arg)
	case "pair":
		opts.AutoPair = toggleOrBool(opts.AutoPair, arg)
	case "autoindent":
		opts.AutoIndent = toggleOrBool(opts.AutoIndent, arg)
	case "color":
		opts.EnableColor = toggleOrBool(opts.EnableColor, arg)
	case "onemore":
		opts.OneMore = toggleOrBool(opts.OneMore, arg)
	case "mouse":
		opts.EnableMouse = toggleOrBool(opts.EnableMouse, arg)
	case "tabwidth":
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return fmt.Errorf("config: tabwidth requires a positive integer, got %q", arg)
		}
		opts.TabWidth = n
	case "background":
		if !ValidColorName(arg) {
			return fmt.Errorf("config: unknown color %q", arg)
		}
		opts.Background = ColorName(arg)
	case "searchcolor":
		if !ValidColorName(arg) {
			return fmt.Errorf("config: unknown color %q", arg)
		}
		opts.SearchColor = ColorName(arg)
	default:
		return fmt.Errorf("config: unknown option %q", name)
	}
	return nil
}

// toggleOrBool resolves a boolean option's new value: "on"/"off" set it
// explicitly, an empty arg toggles the current value.
func toggleOrBool(current bool, arg string) bool {
	switch arg {
	case "on":
		return true
	case "off":
		return false
	default:
		return !current
	}
}

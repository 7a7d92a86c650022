// Package theme models the desktop light/dark preference.
package theme

import (
	"image/color"
	"strings"
)

// Theme is the desktop color scheme read once per run.
type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Parse classifies raw output from a theme query (e.g. "'prefer-dark'\n" or
// "Mint-Y-Dark-Aqua"). Anything that does not mention dark is Light.
func Parse(raw string) Theme {
	if strings.Contains(strings.ToLower(raw), "dark") {
		return Dark
	}
	return Light
}

// TextColor returns the opaque text color used on this theme.
func (t Theme) TextColor() color.NRGBA {
	if t == Dark {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.NRGBA{A: 0xff}
}

// PanelShift returns the signed brightness delta for the text panel: dark
// themes darken the panel under white text, light themes brighten it under
// black text.
func (t Theme) PanelShift(magnitude int) int {
	if t == Dark {
		return -magnitude
	}
	return magnitude
}

package desktop

import "github.com/ByLCY/todowall/executil"

func init() {
	Register("GNOME", NewGNOME)
}

// NewGNOME returns the GNOME integration. GNOME keeps separate wallpapers for
// the light and dark color schemes.
func NewGNOME(exec executil.Executor) Environment {
	return &GSettings{
		name:             "gnome",
		exec:             exec,
		BackgroundSchema: "org.gnome.desktop.background",
		LightKey:         "picture-uri",
		DarkKey:          "picture-uri-dark",
		ThemeSchema:      "org.gnome.desktop.interface",
		ThemeKey:         "color-scheme",
	}
}

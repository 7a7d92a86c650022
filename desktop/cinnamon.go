package desktop

import "github.com/ByLCY/todowall/executil"

func init() {
	Register("X-Cinnamon", NewCinnamon)
	Register("Cinnamon", NewCinnamon)
}

// NewCinnamon returns the Cinnamon integration. Cinnamon has one wallpaper
// key; the theme is inferred from the GTK theme name.
func NewCinnamon(exec executil.Executor) Environment {
	return &GSettings{
		name:             "cinnamon",
		exec:             exec,
		BackgroundSchema: "org.cinnamon.desktop.background",
		LightKey:         "picture-uri",
		ThemeSchema:      "org.cinnamon.desktop.interface",
		ThemeKey:         "gtk-theme",
	}
}

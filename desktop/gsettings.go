package desktop

import (
	"context"
	"fmt"

	"github.com/ByLCY/todowall/executil"
	"github.com/ByLCY/todowall/theme"
)

const gsettingsBin = "gsettings"

// GSettings is an Environment backed by the gsettings CLI. Desktops that
// share the GSettings model only differ by schema and key names.
type GSettings struct {
	name string
	exec executil.Executor

	BackgroundSchema string
	LightKey         string
	DarkKey          string // empty when the desktop has a single wallpaper key
	ThemeSchema      string
	ThemeKey         string
}

func (g *GSettings) Name() string { return g.name }

func (g *GSettings) Theme(ctx context.Context) theme.Theme {
	out, err := g.exec.Run(ctx, gsettingsBin, "get", g.ThemeSchema, g.ThemeKey)
	if err != nil {
		return theme.Light
	}
	return theme.Parse(string(out))
}

func (g *GSettings) WallpaperURI(ctx context.Context, t theme.Theme) (string, error) {
	out, err := g.exec.Run(ctx, gsettingsBin, "get", g.BackgroundSchema, g.key(t))
	if err != nil {
		return "", fmt.Errorf("read %s %s: %w", g.BackgroundSchema, g.key(t), err)
	}
	return string(out), nil
}

func (g *GSettings) SetWallpaperURI(ctx context.Context, t theme.Theme, uri string) error {
	if _, err := g.exec.Run(ctx, gsettingsBin, "set", g.BackgroundSchema, g.key(t), uri); err != nil {
		return fmt.Errorf("write %s %s: %w", g.BackgroundSchema, g.key(t), err)
	}
	return nil
}

func (g *GSettings) key(t theme.Theme) string {
	if t == theme.Dark && g.DarkKey != "" {
		return g.DarkKey
	}
	return g.LightKey
}

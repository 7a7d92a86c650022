// Package desktop talks to the desktop environment to read and change the
// active wallpaper and the light/dark preference.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/ByLCY/todowall/executil"
	"github.com/ByLCY/todowall/theme"
)

// ErrUnsupported is returned by Detect when no registered environment matches.
var ErrUnsupported = errors.New("unsupported desktop environment")

// Environment is one desktop environment integration.
type Environment interface {
	// Name is the identifier the environment was registered under.
	Name() string
	// Theme reports the current color scheme; it falls back to theme.Light
	// when the environment cannot be classified.
	Theme(ctx context.Context) theme.Theme
	// WallpaperURI returns the active wallpaper URI for the given theme.
	WallpaperURI(ctx context.Context, t theme.Theme) (string, error)
	// SetWallpaperURI activates uri as the wallpaper for the given theme.
	SetWallpaperURI(ctx context.Context, t theme.Theme, uri string) error
}

// Factory builds an Environment around an executor.
type Factory func(exec executil.Executor) Environment

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes an environment available to Detect under name
// (case-insensitive, matched against XDG_CURRENT_DESKTOP entries).
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = f
}

// Registered lists the registered environment names.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect picks the environment for an XDG_CURRENT_DESKTOP value such as
// "GNOME" or "ubuntu:GNOME". Entries are tried left to right.
func Detect(xdg string, exec executil.Executor) (Environment, error) {
	for _, part := range strings.Split(xdg, ":") {
		if f, ok := lookup(part); ok {
			return f(exec), nil
		}
	}
	if xdg == "" {
		return nil, fmt.Errorf("%w: XDG_CURRENT_DESKTOP is not set", ErrUnsupported)
	}
	return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupported, xdg, strings.Join(Registered(), ", "))
}

func lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// PathFromURI turns a wallpaper URI as printed by the desktop (for example
// "'file:///home/me/My%20Walls/a.jpg'\n") into a filesystem path.
func PathFromURI(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `'"`)
	if s == "" {
		return "", errors.New("empty wallpaper uri")
	}
	if !strings.HasPrefix(s, "file://") {
		if strings.Contains(s, "://") {
			return "", fmt.Errorf("unsupported wallpaper uri %q", s)
		}
		return s, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("decode wallpaper uri %q: %w", s, err)
	}
	if u.Path == "" {
		return "", fmt.Errorf("wallpaper uri %q has no path", s)
	}
	return u.Path, nil
}

// URIFromPath builds a percent-escaped file:// URI that PathFromURI maps
// back to path.
func URIFromPath(path string) string {
	return (&url.URL{Scheme: "file", Path: path}).String()
}

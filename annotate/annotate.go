// Package annotate drives one annotation run: collect the text, ask the
// desktop for the active wallpaper, resolve the original/annotated pair,
// render, and activate the result.
package annotate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/ByLCY/todowall/desktop"
	"github.com/ByLCY/todowall/renderer"
	"github.com/ByLCY/todowall/textblock"
	"github.com/ByLCY/todowall/theme"
	"github.com/ByLCY/todowall/wallpaper"
)

var (
	// ErrQueryFailed wraps failures reading the active wallpaper.
	ErrQueryFailed = errors.New("query active wallpaper")
	// ErrActivationFailed wraps failures switching the desktop wallpaper.
	ErrActivationFailed = errors.New("activate wallpaper")
)

// Result describes a finished (or aborted) run.
type Result struct {
	Stage Stage
	Theme theme.Theme
	Pair  wallpaper.Pair
	// RenderErr is set when rendering failed and the original was copied
	// into the annotated slot instead.
	RenderErr error
	Activated bool
}

// Annotator wires the desktop, the resolver and the renderer together.
type Annotator struct {
	env      desktop.Environment
	resolver *wallpaper.Resolver
	renderer renderer.Renderer
	headings textblock.Headings
	log      zerolog.Logger
}

// New creates an Annotator.
func New(env desktop.Environment, resolver *wallpaper.Resolver, r renderer.Renderer, headings textblock.Headings, log zerolog.Logger) *Annotator {
	return &Annotator{
		env:      env,
		resolver: resolver,
		renderer: r,
		headings: headings,
		log:      log.With().Str("component", "annotate").Str("desktop", env.Name()).Logger(),
	}
}

// Run annotates the active wallpaper with todos and dones.
//
// With both lists empty it returns immediately without touching the
// filesystem or the desktop. A render failure other than
// renderer.ErrImageTooSmall falls back to an unannotated copy, which is still
// activated; the render error is returned alongside the result.
func (a *Annotator) Run(ctx context.Context, todos, dones []string) (Result, error) {
	res := Result{Stage: Idle}

	text, ok := textblock.Compose(todos, dones, a.headings)
	if !ok {
		a.log.Info().Msg("nothing to annotate")
		return res, nil
	}
	res.Stage = TextCollected

	res.Theme = a.env.Theme(ctx)
	active, err := a.activePath(ctx, res.Theme)
	if err != nil {
		return res, err
	}
	res.Stage = WallpaperQueried
	a.log.Debug().Str("theme", res.Theme.String()).Str("active", active).Msg("queried wallpaper")

	pair, err := a.resolver.Resolve(active)
	if err != nil {
		return res, err
	}
	res.Pair = pair
	res.Stage = PathsResolved

	if err := a.renderer.Render(pair.Original.Path, pair.Annotated.Path, text, res.Theme); err != nil {
		if errors.Is(err, renderer.ErrImageTooSmall) {
			return res, err
		}
		a.log.Warn().Err(err).Str("original", pair.Original.Path).Msg("render failed, activating unannotated copy")
		if cerr := wallpaper.CopyFile(pair.Original.Path, pair.Annotated.Path); cerr != nil {
			return res, errors.Join(err, cerr)
		}
		res.RenderErr = err
		res.Stage = Fallback
	} else {
		res.Stage = Rendered
	}

	if err := a.activate(ctx, res.Theme, pair.Annotated.Path); err != nil {
		return res, errors.Join(res.RenderErr, err)
	}
	res.Activated = true
	res.Stage = Activated
	a.log.Info().Str("wallpaper", pair.Annotated.Path).Str("backup_dir", a.resolver.Dir()).Int("todos", len(todos)).Int("dones", len(dones)).Msg("wallpaper annotated")
	return res, res.RenderErr
}

// Restore re-activates the backed-up original of the active wallpaper.
func (a *Annotator) Restore(ctx context.Context) (Result, error) {
	res := Result{Stage: Idle, Theme: a.env.Theme(ctx)}

	active, err := a.activePath(ctx, res.Theme)
	if err != nil {
		return res, err
	}
	res.Stage = WallpaperQueried

	pair := a.resolver.Pair(active)
	if _, err := os.Stat(pair.Original.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, fmt.Errorf("%w: no backup of %s in %s", wallpaper.ErrOriginalMissing, active, a.resolver.Dir())
		}
		return res, fmt.Errorf("stat original: %w", err)
	}
	res.Pair = pair
	res.Stage = PathsResolved

	if err := a.activate(ctx, res.Theme, pair.Original.Path); err != nil {
		return res, err
	}
	res.Activated = true
	res.Stage = Activated
	a.log.Info().Str("wallpaper", pair.Original.Path).Msg("original wallpaper restored")
	return res, nil
}

func (a *Annotator) activePath(ctx context.Context, t theme.Theme) (string, error) {
	uri, err := a.env.WallpaperURI(ctx, t)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	path, err := desktop.PathFromURI(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return path, nil
}

func (a *Annotator) activate(ctx context.Context, t theme.Theme, path string) error {
	if err := a.env.SetWallpaperURI(ctx, t, desktop.URIFromPath(path)); err != nil {
		return fmt.Errorf("%w: %w", ErrActivationFailed, err)
	}
	return nil
}

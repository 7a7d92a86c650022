package wallpaper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var (
	// ErrOriginalMissing means an annotated wallpaper was found without a
	// backed-up original to pair it with.
	ErrOriginalMissing = errors.New("original wallpaper is missing")
	// ErrCopyFailed wraps filesystem errors while copying wallpapers.
	ErrCopyFailed = errors.New("copy wallpaper")
)

// Resolver maps the active wallpaper to its pair inside a backup directory.
type Resolver struct {
	dir    string
	marker string
	log    zerolog.Logger
}

// NewResolver returns a Resolver rooted at dir. An empty marker means
// DefaultMarker.
func NewResolver(dir, marker string, log zerolog.Logger) *Resolver {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Resolver{dir: dir, marker: marker, log: log}
}

// Dir returns the backup directory.
func (r *Resolver) Dir() string { return r.dir }

// Pair computes the pair for active without touching the filesystem.
func (r *Resolver) Pair(active string) Pair {
	base := BaseName(active, r.marker)
	return Pair{
		Original:  Location{Path: filepath.Join(r.dir, base), Variant: Original},
		Annotated: Location{Path: filepath.Join(r.dir, AnnotatedName(base, r.marker)), Variant: Annotated},
	}
}

// Resolve returns the pair for the active wallpaper, creating the backup
// directory and copying active into the original slot when needed. It copies
// at most once and never overwrites an existing original. An annotated active
// wallpaper is never promoted to original.
func (r *Resolver) Resolve(active string) (Pair, error) {
	loc := ParseLocation(active, r.marker)
	pair := r.Pair(active)
	logger := r.log.With().Str("active", active).Str("variant", loc.Variant.String()).Logger()

	info, err := os.Stat(r.dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if loc.Variant == Annotated {
			return Pair{}, fmt.Errorf("%w: %s is annotated but %s does not exist", ErrOriginalMissing, active, r.dir)
		}
		if err := os.MkdirAll(r.dir, 0o755); err != nil {
			return Pair{}, fmt.Errorf("%w: create backup dir: %w", ErrCopyFailed, err)
		}
		logger.Info().Str("dir", r.dir).Msg("created backup directory")
		return r.backup(active, pair, logger)
	case err != nil:
		return Pair{}, fmt.Errorf("stat backup dir: %w", err)
	case !info.IsDir():
		return Pair{}, fmt.Errorf("backup path %s is not a directory", r.dir)
	}

	_, err = os.Stat(pair.Original.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if loc.Variant == Annotated {
			return Pair{}, fmt.Errorf("%w: %s has no original at %s", ErrOriginalMissing, active, pair.Original.Path)
		}
		return r.backup(active, pair, logger)
	case err != nil:
		return Pair{}, fmt.Errorf("stat original: %w", err)
	}

	logger.Debug().Str("original", pair.Original.Path).Msg("original already backed up")
	return pair, nil
}

func (r *Resolver) backup(active string, pair Pair, logger zerolog.Logger) (Pair, error) {
	if err := CopyFile(active, pair.Original.Path); err != nil {
		return Pair{}, err
	}
	logger.Info().Str("original", pair.Original.Path).Msg("backed up original wallpaper")
	return pair, nil
}

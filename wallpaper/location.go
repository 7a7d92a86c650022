// Package wallpaper keeps track of the original and annotated copies of a
// wallpaper inside the backup directory.
package wallpaper

import (
	"path/filepath"
	"strings"
)

// DefaultMarker is appended to the filename stem of annotated wallpapers.
const DefaultMarker = "todowall"

// Variant tags a wallpaper file as the pristine original or the annotated copy.
type Variant int

const (
	Original Variant = iota
	Annotated
)

func (v Variant) String() string {
	if v == Annotated {
		return "annotated"
	}
	return "original"
}

// Location is a wallpaper path together with its variant, computed once.
type Location struct {
	Path    string
	Variant Variant
}

// Pair is the original/annotated pair for one wallpaper identity.
type Pair struct {
	Original  Location
	Annotated Location
}

// ParseLocation tags path by looking for "-<marker>" at the end of its stem.
func ParseLocation(path, marker string) Location {
	stem, _ := splitName(filepath.Base(path))
	if strings.HasSuffix(stem, "-"+marker) {
		return Location{Path: path, Variant: Annotated}
	}
	return Location{Path: path, Variant: Original}
}

// BaseName returns the filename of path with the marker removed, i.e. the
// name the original carries in the backup directory.
func BaseName(path, marker string) string {
	stem, ext := splitName(filepath.Base(path))
	return strings.TrimSuffix(stem, "-"+marker) + ext
}

// AnnotatedName returns the annotated filename for a base name.
func AnnotatedName(base, marker string) string {
	stem, ext := splitName(base)
	return stem + "-" + marker + ext
}

// splitName splits a filename into stem and extension; dotfiles keep their
// leading dot in the stem.
func splitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

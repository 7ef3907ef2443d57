// Package fs implements filesystem adapters.
package fs

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/texpkg/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*Resolver)(nil)

// Resolver implements the SourceResolver interface using doublestar globs.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveSources expands patterns relative to root. Absolute patterns are used as is.
// Only regular files (after following symlinks) are returned.
func (r *Resolver) ResolveSources(root string, patterns []string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "root", root)
	}

	unique := make(map[string]struct{})

	for _, pattern := range patterns {
		full := pattern
		if !filepath.IsAbs(full) {
			full = filepath.Join(absRoot, pattern)
		}

		if !doublestar.ValidatePathPattern(full) {
			return nil, zerr.With(domain.ErrInvalidGlob, "pattern", pattern)
		}

		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidGlob.Error()), "pattern", pattern)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}

			abs, err := filepath.Abs(match)
			if err != nil {
				continue
			}
			unique[abs] = struct{}{}
		}
	}

	result := make([]string, 0, len(unique))
	for path := range unique {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}

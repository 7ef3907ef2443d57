// Package latex implements the dependency extractor for LaTeX sources.
package latex

import (
	"context"
	"os"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/texpkg/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var _ ports.DependencyExtractor = (*Extractor)(nil)

// declarationPattern matches \usepackage and \RequirePackage with an optional
// option list. The brace argument may span lines.
var declarationPattern = regexp.MustCompile(`\\(?:usepackage|RequirePackage)(?:\[[^\]]*\])?\{([^}]*)\}`)

// Extractor scans TeX sources for package declarations.
type Extractor struct {
	concurrency int
}

// NewExtractor creates an Extractor that reads up to runtime.NumCPU files at once.
func NewExtractor() *Extractor {
	return &Extractor{concurrency: runtime.NumCPU()}
}

// Extract returns the sorted set of package names declared across files.
// Commented-out declarations are ignored and undecodable bytes are dropped.
func (e *Extractor) Extract(ctx context.Context, files []string) ([]string, error) {
	contents := make([][]byte, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file) //nolint:gosec // paths come from the configured globs
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", file)
			}
			contents[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	found := make(map[string]struct{})
	seen := make(map[uint64]struct{}, len(contents))

	for _, data := range contents {
		digest := xxhash.Sum64(data)
		if _, ok := seen[digest]; ok {
			continue
		}
		seen[digest] = struct{}{}

		for _, name := range ParsePackages(decode(data)) {
			found[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

// ParsePackages returns every package name declared in text, in order of
// appearance and possibly repeated.
func ParsePackages(text string) []string {
	var names []string

	for _, match := range declarationPattern.FindAllStringSubmatch(StripComments(text), -1) {
		for part := range strings.SplitSeq(match[1], ",") {
			if name := strings.TrimSpace(part); name != "" {
				names = append(names, name)
			}
		}
	}

	return names
}

// StripComments removes everything from an unescaped % to the end of each line.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = stripLineComment(strings.TrimSuffix(line, "\r"))
	}
	return strings.Join(lines, "\n")
}

func stripLineComment(line string) string {
	for i := range len(line) {
		if line[i] == '%' && (i == 0 || line[i-1] != '\\') {
			return line[:i]
		}
	}
	return line
}

// decode drops byte sequences that are not valid UTF-8.
func decode(data []byte) string {
	t := transform.Chain(
		runes.ReplaceIllFormed(),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	)

	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "")
	}
	return string(out)
}

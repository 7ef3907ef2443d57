package ports

// SourceResolver defines the interface for resolving TeX source globs.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type SourceResolver interface {
	// ResolveSources expands the patterns against root and returns absolute,
	// sorted, de-duplicated paths of regular files. No matches is not an error.
	ResolveSources(root string, patterns []string) ([]string, error)
}

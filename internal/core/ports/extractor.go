package ports

import "context"

// DependencyExtractor defines the interface for scanning sources for package declarations.
//
//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type DependencyExtractor interface {
	// Extract returns the sorted, de-duplicated package names declared across files.
	Extract(ctx context.Context, files []string) ([]string, error)
}

// Package resolver maps LaTeX package names to tlmgr package names.
package resolver

import (
	"slices"

	"go.trai.ch/texpkg/internal/core/domain"
)

// Resolve maps the extracted LaTeX names through the alias tables and adds
// the configured extras.
//
// A LaTeX name without an alias resolves to itself. An alias with an empty
// value marks the name as unresolved. Inferred extras are added verbatim and
// requested extras go through the requested-alias table. The resolved list
// is sorted and free of duplicates; unresolved names keep their input order.
func Resolve(names []string, mappings domain.Mappings) domain.Resolution {
	resolved := make(map[string]struct{})
	var unresolved []string

	for _, name := range names {
		target := lookup(mappings.LatexAliases, name)
		if target == "" {
			unresolved = append(unresolved, name)
			continue
		}
		resolved[target] = struct{}{}
	}

	for _, name := range mappings.InferredExtras {
		if name != "" {
			resolved[name] = struct{}{}
		}
	}

	for _, name := range mappings.RequestedExtras {
		if target := lookup(mappings.RequestedAliases, name); target != "" {
			resolved[target] = struct{}{}
		}
	}

	packages := make([]string, 0, len(resolved))
	for pkg := range resolved {
		packages = append(packages, pkg)
	}
	slices.Sort(packages)

	return domain.Resolution{Packages: packages, Unresolved: unresolved}
}

// lookup returns aliases[name] when present, name otherwise.
func lookup(aliases map[string]string, name string) string {
	if target, ok := aliases[name]; ok {
		return target
	}
	return name
}

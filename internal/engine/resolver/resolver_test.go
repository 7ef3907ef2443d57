package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/texpkg/internal/engine/resolver"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		names          []string
		mappings       domain.Mappings
		wantPackages   []string
		wantUnresolved []string
	}{
		{
			name:  "alias, empty alias and identity",
			names: []string{"foo", "baz", "qux"},
			mappings: domain.Mappings{
				LatexAliases: map[string]string{"foo": "bar-tex", "baz": ""},
			},
			wantPackages:   []string{"bar-tex", "qux"},
			wantUnresolved: []string{"baz"},
		},
		{
			name:  "aliases collapse onto one package",
			names: []string{"amsmath", "amssymb", "amsthm"},
			mappings: domain.Mappings{
				LatexAliases: map[string]string{"amssymb": "amsfonts", "amsthm": "amscls", "amsmath": "amsmath"},
			},
			wantPackages: []string{"amscls", "amsfonts", "amsmath"},
		},
		{
			name:  "extras",
			names: []string{"graphicx"},
			mappings: domain.Mappings{
				LatexAliases:     map[string]string{"graphicx": "graphics"},
				InferredExtras:   []string{"latexmk", "graphics"},
				RequestedExtras:  []string{"fonts", "biber"},
				RequestedAliases: map[string]string{"fonts": "collection-fontsrecommended"},
			},
			wantPackages: []string{"biber", "collection-fontsrecommended", "graphics", "latexmk"},
		},
		{
			name:  "unresolved keeps input order",
			names: []string{"zeta", "alpha"},
			mappings: domain.Mappings{
				LatexAliases: map[string]string{"zeta": "", "alpha": ""},
			},
			wantPackages:   []string{},
			wantUnresolved: []string{"zeta", "alpha"},
		},
		{
			name:         "empty input",
			wantPackages: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.names, tt.mappings)

			assert.Equal(t, tt.wantPackages, got.Packages)
			assert.Equal(t, tt.wantUnresolved, got.Unresolved)
		})
	}
}

func TestResolve_SortedAndUnique(t *testing.T) {
	got := resolver.Resolve(
		[]string{"c", "a", "b", "a"},
		domain.Mappings{InferredExtras: []string{"b", "d"}},
	)

	assert.Equal(t, []string{"a", "b", "c", "d"}, got.Packages)
	assert.True(t, slicesIsSortedUnique(got.Packages))
}

func slicesIsSortedUnique(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

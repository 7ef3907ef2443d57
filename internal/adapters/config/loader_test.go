package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texpkg/internal/adapters/config"
	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/texpkg/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := writeConfig(t, "packages.yaml", `
settings:
  tex_globs: ["../preamble*.tex", "doc.tex"]
  tlmgr_command: /opt/texlive/bin/tlmgr
  install_timeout_seconds: 60
  installed_check_timeout_seconds: 5
  repository_switch_timeout_seconds: 10
  tlmgr_repositories:
    - https://mirror.a/tlnet
    - https://mirror.b/tlnet
  auto_switch_repository_on_tlpdb_error: false
mappings:
  latex_to_tlmgr:
    foo: bar-tex
    baz:
  requested_aliases:
    fonts: collection-fontsrecommended
extras:
  inferred: [latexmk]
  requested: [fonts]
`)

	cfg, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, filepath.Dir(path), cfg.BaseDir)
	assert.Equal(t, []string{"../preamble*.tex", "doc.tex"}, cfg.TexGlobs)
	assert.Equal(t, "/opt/texlive/bin/tlmgr", cfg.Command)
	assert.Equal(t, 60*time.Second, cfg.InstallTimeout)
	assert.Equal(t, 5*time.Second, cfg.CheckTimeout)
	assert.Equal(t, 10*time.Second, cfg.RepositoryTimeout)
	assert.Equal(t, []string{"https://mirror.a/tlnet", "https://mirror.b/tlnet"}, cfg.Repositories)
	assert.False(t, cfg.AutoSwitchRepository)
	assert.Equal(t, map[string]string{"foo": "bar-tex", "baz": ""}, cfg.Mappings.LatexAliases)
	assert.Equal(t, "collection-fontsrecommended", cfg.Mappings.RequestedAliases["fonts"])
	assert.Equal(t, []string{"latexmk"}, cfg.Mappings.InferredExtras)
	assert.Equal(t, []string{"fonts"}, cfg.Mappings.RequestedExtras)
}

func TestLoad_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := writeConfig(t, "packages.yaml", "settings: {}\n")

	cfg, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTexGlobs(), cfg.TexGlobs)
	assert.Equal(t, domain.DefaultCommand, cfg.Command)
	assert.Equal(t, domain.DefaultInstallTimeout, cfg.InstallTimeout)
	assert.Equal(t, domain.DefaultCheckTimeout, cfg.CheckTimeout)
	assert.Equal(t, domain.DefaultRepositoryTimeout, cfg.RepositoryTimeout)
	assert.True(t, cfg.AutoSwitchRepository)
	assert.Empty(t, cfg.Repositories)
	assert.Empty(t, cfg.Mappings.LatexAliases)
}

func TestLoad_NonPositiveTimeoutWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("settings.install_timeout_seconds must be positive, using 3m0s")
	mockLogger.EXPECT().Warn("settings.installed_check_timeout_seconds must be positive, using 25s")

	path := writeConfig(t, "packages.yaml", `
settings:
  install_timeout_seconds: 0
  installed_check_timeout_seconds: -4
`)

	cfg, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultInstallTimeout, cfg.InstallTimeout)
	assert.Equal(t, domain.DefaultCheckTimeout, cfg.CheckTimeout)
}

func TestLoad_TOML(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := writeConfig(t, "packages.toml", `
[settings]
tex_globs = ["*.tex"]
tlmgr_repositories = ["https://mirror.a/tlnet"]
install_timeout_seconds = 90

[mappings.latex_to_tlmgr]
graphicx = "graphics"

[extras]
inferred = ["latexmk"]
`)

	cfg, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.InstallTimeout)
	assert.Equal(t, []string{"https://mirror.a/tlnet"}, cfg.Repositories)
	assert.Equal(t, "graphics", cfg.Mappings.LatexAliases["graphicx"])
	assert.Equal(t, []string{"latexmk"}, cfg.Mappings.InferredExtras)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T) string
		errContains string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "packages.yaml")
			},
			errContains: domain.ErrConfigNotFound.Error(),
		},
		{
			name: "top level list",
			setup: func(t *testing.T) string {
				t.Helper()
				return writeConfig(t, "packages.yaml", "- a\n- b\n")
			},
			errContains: domain.ErrConfigInvalid.Error(),
		},
		{
			name: "empty document",
			setup: func(t *testing.T) string {
				t.Helper()
				return writeConfig(t, "packages.yaml", "")
			},
			errContains: domain.ErrConfigInvalid.Error(),
		},
		{
			name: "malformed yaml",
			setup: func(t *testing.T) string {
				t.Helper()
				return writeConfig(t, "packages.yaml", "settings: [unclosed\n")
			},
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name: "wrong value type",
			setup: func(t *testing.T) string {
				t.Helper()
				return writeConfig(t, "packages.yaml", "settings:\n  install_timeout_seconds: soon\n")
			},
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name: "malformed toml",
			setup: func(t *testing.T) string {
				t.Helper()
				return writeConfig(t, "packages.toml", "[settings\n")
			},
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name: "directory instead of file",
			setup: func(t *testing.T) string {
				t.Helper()
				return t.TempDir()
			},
			errContains: domain.ErrConfigReadFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)

			_, err := config.NewLoader(mockLogger).Load(tt.setup(t))
			require.Error(t, err)
			require.ErrorContains(t, err, tt.errContains)
		})
	}
}

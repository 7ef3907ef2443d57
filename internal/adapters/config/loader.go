// Package config provides the configuration loader for texpkg.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/texpkg/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path and applies defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func (l *Loader) Load(path string) (*domain.Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "path", path)
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", absPath)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", absPath)
	}

	var file File
	if strings.EqualFold(filepath.Ext(absPath), ".toml") {
		err = decodeTOML(data, &file)
	} else {
		err = decodeYAML(data, &file)
	}
	if err != nil {
		return nil, zerr.With(err, "path", absPath)
	}

	return l.toDomain(absPath, &file), nil
}

func decodeYAML(data []byte, file *File) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	// An empty document decodes to a zero node.
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return domain.ErrConfigInvalid
	}

	if err := root.Content[0].Decode(file); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func decodeTOML(data []byte, file *File) error {
	if _, err := toml.Decode(string(data), file); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func (l *Loader) toDomain(path string, file *File) *domain.Config {
	s := file.Settings

	cfg := &domain.Config{
		Path:                 path,
		BaseDir:              filepath.Dir(path),
		TexGlobs:             s.TexGlobs,
		Command:              s.TlmgrCommand,
		Repositories:         s.TlmgrRepositories,
		AutoSwitchRepository: domain.DefaultAutoSwitchRepository,
		Mappings: domain.Mappings{
			LatexAliases:     file.Mappings.LatexToTlmgr,
			RequestedAliases: file.Mappings.RequestedAliases,
			InferredExtras:   file.Extras.Inferred,
			RequestedExtras:  file.Extras.Requested,
		},
	}

	if len(cfg.TexGlobs) == 0 {
		cfg.TexGlobs = domain.DefaultTexGlobs()
	}
	if cfg.Command == "" {
		cfg.Command = domain.DefaultCommand
	}
	if s.AutoSwitchOnTLPDBFailure != nil {
		cfg.AutoSwitchRepository = *s.AutoSwitchOnTLPDBFailure
	}

	cfg.InstallTimeout = l.seconds("install_timeout_seconds", s.InstallTimeoutSeconds, domain.DefaultInstallTimeout)
	cfg.CheckTimeout = l.seconds("installed_check_timeout_seconds", s.InstalledCheckSeconds, domain.DefaultCheckTimeout)
	cfg.RepositoryTimeout = l.seconds(
		"repository_switch_timeout_seconds", s.RepositorySwitchSeconds, domain.DefaultRepositoryTimeout,
	)

	return cfg
}

func (l *Loader) seconds(key string, value *int, fallback time.Duration) time.Duration {
	if value == nil {
		return fallback
	}
	if *value <= 0 {
		l.Logger.Warn(fmt.Sprintf("settings.%s must be positive, using %s", key, fallback))
		return fallback
	}
	return time.Duration(*value) * time.Second
}

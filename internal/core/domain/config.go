package domain

import "time"

// Config is the fully defaulted configuration for one run.
// It is built once by the config loader and not modified afterwards.
type Config struct {
	// Path is the absolute path of the configuration file.
	Path string

	// BaseDir is the directory tex_globs are resolved against.
	BaseDir string

	// TexGlobs are the source patterns, relative to BaseDir unless absolute.
	TexGlobs []string

	// Command is the package manager binary (usually "tlmgr").
	Command string

	InstallTimeout    time.Duration
	CheckTimeout      time.Duration
	RepositoryTimeout time.Duration

	// Repositories is the ordered mirror list; the first entry is the primary.
	Repositories []string

	// AutoSwitchRepository enables mirror failover on TLPDB errors.
	AutoSwitchRepository bool

	Mappings Mappings
}

// Mappings holds the alias tables and extra package lists used by resolution.
type Mappings struct {
	// LatexAliases maps a LaTeX package name to a tlmgr package name.
	// An empty value marks the LaTeX name as unresolvable.
	LatexAliases map[string]string

	// RequestedAliases maps a requested extra to a tlmgr package name.
	RequestedAliases map[string]string

	// InferredExtras are added to the resolved set verbatim.
	InferredExtras []string

	// RequestedExtras are added after lookup in RequestedAliases.
	RequestedExtras []string
}

// InstallSettings returns the subset of the configuration the install loop needs.
func (c *Config) InstallSettings() InstallSettings {
	return InstallSettings{
		Command:              c.Command,
		InstallTimeout:       c.InstallTimeout,
		CheckTimeout:         c.CheckTimeout,
		RepositoryTimeout:    c.RepositoryTimeout,
		Repositories:         c.Repositories,
		AutoSwitchRepository: c.AutoSwitchRepository,
	}
}

// InstallSettings configures the orchestrator for one run.
type InstallSettings struct {
	Command              string
	InstallTimeout       time.Duration
	CheckTimeout         time.Duration
	RepositoryTimeout    time.Duration
	Repositories         []string
	AutoSwitchRepository bool
}

// Resolution is the result of mapping extracted LaTeX names to tlmgr packages.
type Resolution struct {
	// Packages is sorted and free of duplicates.
	Packages []string

	// Unresolved lists LaTeX names whose alias maps to an empty value, in encounter order.
	Unresolved []string
}

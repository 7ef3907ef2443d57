package config

// File is the on-disk shape of packages.yaml (or packages.toml).
type File struct {
	Settings Settings `yaml:"settings" toml:"settings"`
	Mappings Mappings `yaml:"mappings" toml:"mappings"`
	Extras   Extras   `yaml:"extras" toml:"extras"`
}

// Settings holds the run settings. Pointer fields distinguish "absent" from zero.
type Settings struct {
	TexGlobs                 []string `yaml:"tex_globs" toml:"tex_globs"`
	TlmgrCommand             string   `yaml:"tlmgr_command" toml:"tlmgr_command"`
	InstallTimeoutSeconds    *int     `yaml:"install_timeout_seconds" toml:"install_timeout_seconds"`
	InstalledCheckSeconds    *int     `yaml:"installed_check_timeout_seconds" toml:"installed_check_timeout_seconds"`
	RepositorySwitchSeconds  *int     `yaml:"repository_switch_timeout_seconds" toml:"repository_switch_timeout_seconds"`
	TlmgrRepositories        []string `yaml:"tlmgr_repositories" toml:"tlmgr_repositories"`
	AutoSwitchOnTLPDBFailure *bool    `yaml:"auto_switch_repository_on_tlpdb_error" toml:"auto_switch_repository_on_tlpdb_error"`
}

// Mappings holds the LaTeX-to-tlmgr name tables.
type Mappings struct {
	LatexToTlmgr     map[string]string `yaml:"latex_to_tlmgr" toml:"latex_to_tlmgr"`
	RequestedAliases map[string]string `yaml:"requested_aliases" toml:"requested_aliases"`
}

// Extras holds packages installed regardless of what the sources declare.
type Extras struct {
	Inferred  []string `yaml:"inferred" toml:"inferred"`
	Requested []string `yaml:"requested" toml:"requested"`
}

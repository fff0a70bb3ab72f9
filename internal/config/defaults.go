package config

const (
	defaultConfigPath    = "~/.config/eplotdb/config.toml"
	defaultDatabasePath  = "~/.local/share/eplotdb/data.db"
	defaultLogDir        = "~/.local/share/eplotdb/logs"
	defaultRepoURL       = "https://github.com/sudoghut/eplot"
	defaultCheckoutDir   = "~/.local/share/eplotdb/eplot"
	defaultContentSubdir = "src/content/blog"
	defaultGitBinary     = "git"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultAPIBind       = "127.0.0.1:7490"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DatabasePath: defaultDatabasePath,
			LogDir:       defaultLogDir,
		},
		Source: Source{
			RepoURL:       defaultRepoURL,
			CheckoutDir:   defaultCheckoutDir,
			ContentSubdir: defaultContentSubdir,
			Sync:          true,
			GitBinary:     defaultGitBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		API: API{
			Bind: defaultAPIBind,
		},
	}
}

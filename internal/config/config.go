package config

// Config represents the application configuration
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths" yaml:"paths"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// PathsConfig contains the project paths. SiteConfig and Manifest are
// resolved relative to Root unless absolute.
type PathsConfig struct {
	Root       string `mapstructure:"root" yaml:"root"`
	SiteConfig string `mapstructure:"site_config" yaml:"site_config"`
	Manifest   string `mapstructure:"manifest" yaml:"manifest"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Progress bool `mapstructure:"progress" yaml:"progress"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and applies defaults for invalid
// values
func (c *Config) Validate() error {
	if c.Paths.Root == "" {
		c.Paths.Root = DefaultRoot
	}
	if c.Paths.SiteConfig == "" {
		c.Paths.SiteConfig = DefaultSiteConfig
	}
	if c.Paths.Manifest == "" {
		c.Paths.Manifest = DefaultManifest
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Logging.Level = DefaultLogLevel
	}
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

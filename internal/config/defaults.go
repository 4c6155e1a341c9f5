package config

import "github.com/spf13/viper"

// Default configuration values
const (
	DefaultRoot       = "."
	DefaultSiteConfig = "site.config.json"
	DefaultManifest   = "site.manifest.json"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "pretty"
)

// setDefaults registers default values on the viper instance
func setDefaults(v *viper.Viper) {
	v.SetDefault("paths.root", DefaultRoot)
	v.SetDefault("paths.site_config", DefaultSiteConfig)
	v.SetDefault("paths.manifest", DefaultManifest)
	v.SetDefault("output.progress", true)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

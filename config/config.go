// Package config holds app-wide settings for the phylo command,
// unmarshalled from Viper (see: /cmd/phylo). Values come from defaults,
// PHYLO_* environment variables, or bound command-line flags.
package config

import "github.com/spf13/viper"

// Config is the root-level settings struct for the CLI.
type Config struct {
	// decimal places used when printing distances
	Precision int `mapstructure:"precision"`

	// whether to print the distance and score matrices after the tree
	Matrices bool `mapstructure:"matrices"`
}

// New returns a Config populated by Viper settings: defaults first,
// overridden by PHYLO_* environment variables and any bound flags.
func New() (Config, error) {
	viper.SetEnvPrefix("phylo")
	viper.AutomaticEnv()

	viper.SetDefault("precision", 4)
	viper.SetDefault("matrices", false)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, err
	}

	return c, nil
}

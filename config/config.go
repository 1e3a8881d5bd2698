// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// DigestConfig settings for protease digestion
type DigestConfig struct {
	// comma separated protease names to cut with
	Proteases string `mapstructure:"proteases"`

	// the maximum number of missed cleavage sites per peptide
	MissedCleavages int `mapstructure:"missed-cleavages"`

	// the minimum peptide length to report
	MinLength int `mapstructure:"min-length"`

	// the maximum peptide length to report (< 1 means unbounded)
	MaxLength int `mapstructure:"max-length"`
}

// FragmentConfig settings for fragment ion generation
type FragmentConfig struct {
	// comma separated ion series, eg "b,y"
	Types string `mapstructure:"types"`

	// first ion number to generate
	Min int `mapstructure:"min"`

	// last ion number to generate (< 1 means up to Length-1)
	Max int `mapstructure:"max"`
}

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those from the command line
type Config struct {
	// digestion settings passed thru CLI
	Digest DigestConfig

	// fragment generation settings
	Fragment FragmentConfig
}

// New returns a new Config struct populated by Viper settings (either
// from a local settings file) and/or command line arguments
func New() Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}
	return c
}

func setDefaults() {
	viper.SetDefault("digest.proteases", "trypsin")
	viper.SetDefault("digest.missed-cleavages", 0)
	viper.SetDefault("digest.min-length", 1)
	viper.SetDefault("digest.max-length", 0)
	viper.SetDefault("fragment.types", "b,y")
	viper.SetDefault("fragment.min", 1)
	viper.SetDefault("fragment.max", 0)
}

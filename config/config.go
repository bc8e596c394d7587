// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AlignmentConfig are the Smith-Waterman settings shared by every
// alignment in a run
type AlignmentConfig struct {
	// the score awarded for a matching base pair
	Match int `mapstructure:"match"`

	// the penalty for a mismatching base pair (negative)
	Mismatch int `mapstructure:"mismatch"`

	// the penalty for opening a new gap (negative)
	GapOpen int `mapstructure:"gap-open"`

	// the penalty for extending an already open gap (negative)
	GapExtend int `mapstructure:"gap-extend"`

	// the width of the banded alignment's diagonal corridor
	// (zero or below means a full matrix)
	BandWidth int `mapstructure:"band-width"`

	// the minimum alignment score to consider a hit at all
	MinScore int `mapstructure:"min-score"`
}

// AnnotateConfig are thresholds for accepting annotation hits
type AnnotateConfig struct {
	// the minimum percent identity to report a hit (0-100)
	MinIdentity float64 `mapstructure:"min-identity"`

	// the minimum query coverage to report a hit (0-100)
	MinCoverage float64 `mapstructure:"min-coverage"`
}

// Config is the root-level settings struct and is a mix of settings
// available in the settings file and those from the command line
type Config struct {
	// path to the components database
	DB string `mapstructure:"db"`

	// whether to log verbose output
	Verbose bool `mapstructure:"verbose"`

	// alignment settings
	Alignment AlignmentConfig `mapstructure:"alignment"`

	// annotation settings
	Annotate AnnotateConfig `mapstructure:"annotate"`
}

// setDefaults registers every setting's default with viper. Annotation
// results are only reproducible across installs when these match
func setDefaults() {
	viper.SetDefault("db", filepath.Join(root(), "components.db"))
	viper.SetDefault("verbose", false)

	viper.SetDefault("alignment.match", 2)
	viper.SetDefault("alignment.mismatch", -3)
	viper.SetDefault("alignment.gap-open", -5)
	viper.SetDefault("alignment.gap-extend", -2)
	viper.SetDefault("alignment.band-width", 50)
	viper.SetDefault("alignment.min-score", 20)

	viper.SetDefault("annotate.min-identity", 80.0)
	viper.SetDefault("annotate.min-coverage", 80.0)
}

// root is the directory where helix keeps its settings file and
// components database: ~/.helix
func root() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".helix")
}

// New returns a new Config struct populated by Viper settings, from the
// settings file in ~/.helix (if one exists) and command line arguments
func New() *Config {
	setDefaults()

	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(root())
	if err := viper.ReadInConfig(); err != nil {
		// a missing settings file just means defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read settings file: %v", err)
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}

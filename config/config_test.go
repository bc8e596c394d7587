package config

import (
	"testing"

	"github.com/spf13/viper"
)

// the default settings have to reproduce the reference scoring exactly,
// annotation results depend on them
func TestNew_defaults(t *testing.T) {
	viper.Reset()

	c := New()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"match", c.Alignment.Match, 2},
		{"mismatch", c.Alignment.Mismatch, -3},
		{"gap-open", c.Alignment.GapOpen, -5},
		{"gap-extend", c.Alignment.GapExtend, -2},
		{"band-width", c.Alignment.BandWidth, 50},
		{"min-score", c.Alignment.MinScore, 20},
		{"min-identity", c.Annotate.MinIdentity, 80.0},
		{"min-coverage", c.Annotate.MinCoverage, 80.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Config default %s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if c.DB == "" {
		t.Error("Config default db path is empty")
	}
}

func TestNew_overrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("alignment.band-width", 25)
	viper.Set("annotate.min-identity", 95.0)

	c := New()

	if c.Alignment.BandWidth != 25 {
		t.Errorf("Config band-width = %d, want 25", c.Alignment.BandWidth)
	}
	if c.Annotate.MinIdentity != 95.0 {
		t.Errorf("Config min-identity = %f, want 95.0", c.Annotate.MinIdentity)
	}

	// untouched settings keep their defaults
	if c.Alignment.Match != 2 {
		t.Errorf("Config match = %d, want 2", c.Alignment.Match)
	}
}

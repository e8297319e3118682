package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Factor int    `env:"DRAGON_TEST_FACTOR" envDefault:"2"`
	Glyph  string `env:"DRAGON_TEST_GLYPH"`
}

func TestParseEnvDefaults(t *testing.T) {
	cfg := envTestConfig{Glyph: "#"}

	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 2, cfg.Factor)
	assert.Equal(t, "#", cfg.Glyph, "unset variables keep the preset value")
}

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("DRAGON_TEST_FACTOR", "5")
	t.Setenv("DRAGON_TEST_GLYPH", "*")

	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 5, cfg.Factor)
	assert.Equal(t, "*", cfg.Glyph)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("DRAGON_TEST_FACTOR", "not-an-int")

	var cfg envTestConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Tokens:    []string{"-l", "2024-01-01", "2024-01-02"},
		Output:    OutputText,
		LogFormat: "text",
		LogLevel:  "info",
	}
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		mutate      func(c *Config)
		errContains string
	}{
		{name: "valid tokens", mutate: func(c *Config) {}},
		{name: "valid trips path only", mutate: func(c *Config) { c.Tokens = nil; c.TripsPath = "trips.hcl" }},
		{name: "json output", mutate: func(c *Config) { c.Output = OutputJSON }},
		{name: "no trips", mutate: func(c *Config) { c.Tokens = nil }, errContains: "no trips given"},
		{name: "bad output", mutate: func(c *Config) { c.Output = "xml" }, errContains: "invalid output"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "yaml" }, errContains: "invalid log-format"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, errContains: "invalid log-level"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tc.mutate(&cfg)
			got, err := NewConfig(cfg)

			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg.Output, got.Output)
		})
	}
}

func TestNewConfig_CopiesTokens(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	got, err := NewConfig(cfg)
	require.NoError(t, err)

	cfg.Tokens[0] = "-h"
	assert.Equal(t, "-l", got.Tokens[0])
}

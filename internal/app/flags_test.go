package app

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, "sand", c.Sim)
	assert.Empty(t, c.Overrides())
}

func TestConfigBind(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c.Bind(fs)

	require.NoError(t, fs.Parse([]string{
		"-scale", "4", "-tps", "20", "-seed", "7",
		"-config", "sand.yaml", "-w", "80", "-scene", "dunes",
	}))
	assert.Equal(t, 4, c.Scale)
	assert.Equal(t, 20, c.TPS)
	assert.Equal(t, map[string]string{
		"config": "sand.yaml",
		"w":      "80",
		"scene":  "dunes",
		"seed":   "7",
	}, c.Overrides())
}

func TestConfigBindRejectsBadValues(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	NewConfig().Bind(fs)
	assert.Error(t, fs.Parse([]string{"-tps", "fast"}))
}

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.API.Port)
	assert.False(t, cfg.API.TLS)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.API.ShutdownTimeout)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("SOCIALGRAPH_API_PORT", "9090")
	t.Setenv("SOCIALGRAPH_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.API.Port = 8080
		c.Log.Level = "info"
		return c
	}

	require.NoError(t, validateConfig(valid()))

	c := valid()
	c.API.Port = 0
	assert.Error(t, validateConfig(c))

	c = valid()
	c.Log.Level = "verbose"
	assert.Error(t, validateConfig(c))

	c = valid()
	c.API.TLS = true
	c.API.CertFile = ""
	assert.Error(t, validateConfig(c))
}

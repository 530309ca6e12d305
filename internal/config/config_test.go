package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBase() *Config {
	var c Config
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Import.MaxSchedulePairs = 24
	c.Import.MaxRowErrors = 20
	return &c
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(validBase()))

	c := validBase()
	c.Log.Level = "verbose"
	assert.Error(t, validateConfig(c))

	c = validBase()
	c.Log.Format = "xml"
	assert.Error(t, validateConfig(c))

	c = validBase()
	c.Import.MaxSchedulePairs = 0
	assert.Error(t, validateConfig(c))

	c = validBase()
	c.Import.MaxRowErrors = 0
	assert.Error(t, validateConfig(c))
}

func TestInitializeConfigDefaults(t *testing.T) {
	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.False(t, config.Import.StrictNumbers)
	assert.Equal(t, 24, config.Import.MaxSchedulePairs)
	assert.Equal(t, 20, config.Import.MaxRowErrors)
	assert.Empty(t, config.Data.StatusesFile)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("RASSROCHKA_LOG_LEVEL", "debug")
	t.Setenv("RASSROCHKA_IMPORT_STRICT_NUMBERS", "true")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.True(t, config.Import.StrictNumbers)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	c := validBase()
	c.Log.Level = "debug"
	c.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(c)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingInvalidLevelFallsBack(t *testing.T) {
	c := validBase()
	c.Log.Level = "verbose"

	logger := ConfigureLoggingFromConfig(c)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

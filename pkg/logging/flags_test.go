package logging

import (
	"os"
	"testing"

	"github.com/alecthomas/kingpin/v2"
	"github.com/echocat/slf4g/level"
	"github.com/echocat/slf4g/native"
	"github.com/echocat/slf4g/native/consumer"
	"github.com/stretchr/testify/require"
)

func TestConfigureLoggingForFlags(t *testing.T) {
	of := &native.Provider{}
	app := kingpin.New("test", "")

	ConfigureLoggingForFlags(app, "TEST_", of)

	w, ok := of.GetConsumer().(*consumer.Writer)
	require.True(t, ok)
	require.Same(t, os.Stderr, w.GetOut())
	require.NotNil(t, app.GetFlag("log.level"))
	require.NotNil(t, app.GetFlag("log.format"))
	require.NotNil(t, app.GetFlag("log.colorMode"))

	_, err := app.Parse([]string{"--log.level=debug"})
	require.NoError(t, err)
	require.Equal(t, level.Debug, of.GetLevel())
}

func TestConfigureLoggingForFlags_envar(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "error")
	of := &native.Provider{}
	app := kingpin.New("test", "")

	ConfigureLoggingForFlags(app, "TEST_", of)

	_, err := app.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, level.Error, of.GetLevel())
}

func TestConfigureLoggingForFlags_leavesDefaultProviderAlone(t *testing.T) {
	before := native.DefaultProvider.Consumer

	ConfigureLoggingForFlags(kingpin.New("test", ""), "TEST_", &native.Provider{})

	require.Equal(t, before, native.DefaultProvider.Consumer)
}

package main

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	null "gopkg.in/guregu/null.v3"
)

// testFlagSet mirrors the flags the disasm command sees.
func testFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := imageFlagSet()
	flags.String("log-level", "info", "")
	flags.String("log-format", "text", "")
	flags.Bool("no-color", false, "")
	flags.Int64P("count", "n", 0, "")
	flags.BoolP("bytes", "b", true, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestDefaultConfig(t *testing.T) {
	conf, err := getConsolidatedConfig(afero.NewMemMapFs(), testFlagSet(t), "")
	require.NoError(t, err)

	assert.Equal(t, "info", conf.LogLevel.String)
	assert.Equal(t, "text", conf.LogFormat.String)
	assert.True(t, conf.ShowBytes.Bool)
	assert.Equal(t, int64(0), conf.Count.Int64)
	assert.Equal(t, "0000:0100", conf.LoadAddr.String)
	assert.Equal(t, int64(500), conf.Scrollback.Int64)
	assert.False(t, conf.LoadAddr.Valid, "defaults are not explicitly set")
}

func TestConfigLayering(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "conf.json", []byte(`{
		"logLevel": "warn",
		"count": 5,
		"loadAddr": "0000:7C00",
		"symbols": "boot.yaml"
	}`), 0o644))

	t.Setenv("IE86DIS_LOG_LEVEL", "error")
	t.Setenv("IE86DIS_COUNT", "7")

	conf, err := getConsolidatedConfig(fs, testFlagSet(t, "--count", "9"), "conf.json")
	require.NoError(t, err)

	assert.Equal(t, "error", conf.LogLevel.String, "environment beats file")
	assert.Equal(t, int64(9), conf.Count.Int64, "flags beat environment")
	assert.Equal(t, "0000:7C00", conf.LoadAddr.String, "file beats defaults")
	assert.Equal(t, "boot.yaml", conf.Symbols.String)
	assert.True(t, conf.ShowBytes.Bool)
}

func TestConfigEnvBool(t *testing.T) {
	t.Setenv("IE86DIS_SHOW_BYTES", "false")
	t.Setenv("IE86DIS_NO_COLOR", "true")

	conf, err := getConsolidatedConfig(afero.NewMemMapFs(), testFlagSet(t), "")
	require.NoError(t, err)
	assert.False(t, conf.ShowBytes.Bool)
	assert.True(t, conf.NoColor.Bool)
}

func TestConfigApplyKeepsUnset(t *testing.T) {
	base := Config{Entry: null.StringFrom("0200")}
	got := base.Apply(Config{Count: null.IntFrom(3)})
	assert.Equal(t, "0200", got.Entry.String)
	assert.Equal(t, int64(3), got.Count.Int64)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		conf Config
		want string
	}{
		{"log level", Config{LogLevel: null.StringFrom("loud")}, "loud"},
		{"log format", Config{LogFormat: null.StringFrom("xml")}, "unknown log format"},
		{"count", Config{Count: null.IntFrom(-1)}, "count must not be negative"},
		{"scrollback", Config{Scrollback: null.IntFrom(0)}, "scrollback must be positive"},
		{"load", Config{LoadAddr: null.StringFrom("7C00")}, "load address"},
		{"entry", Config{Entry: null.StringFrom("12345")}, "entry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := defaultConfig().Apply(tt.conf).Validate()
			assert.ErrorContains(t, err, tt.want)
		})
	}

	assert.NoError(t, defaultConfig().Validate())
}

func TestConfigFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.json", []byte(`{"count": "many"}`), 0o644))

	_, err := getConsolidatedConfig(fs, testFlagSet(t), "bad.json")
	assert.ErrorContains(t, err, "bad.json")

	_, err = getConsolidatedConfig(fs, testFlagSet(t), "missing.json")
	assert.Error(t, err)
}

func TestConfigureLogger(t *testing.T) {
	logger := newLogger(io.Discard)
	conf := defaultConfig().Apply(Config{
		LogLevel:  null.StringFrom("debug"),
		LogFormat: null.StringFrom("json"),
	})
	require.NoError(t, configureLogger(logger, conf, false))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	conf = defaultConfig().Apply(Config{NoColor: null.BoolFrom(true)})
	require.NoError(t, configureLogger(logger, conf, true))
	formatter, ok := logger.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.True(t, formatter.DisableColors)
	assert.False(t, formatter.ForceColors)
}

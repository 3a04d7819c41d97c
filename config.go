// config.go - Layered configuration: defaults, JSON file, environment, flags

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	null "gopkg.in/guregu/null.v3"
)

const envPrefix = "ie86dis"

// Config holds every setting that can come from the config file, the
// IE86DIS_* environment or the command line. Unset fields are invalid
// nulls, and Apply copies only valid ones.
type Config struct {
	LogLevel   null.String `json:"logLevel" envconfig:"log_level"`
	LogFormat  null.String `json:"logFormat" envconfig:"log_format"`
	NoColor    null.Bool   `json:"noColor" envconfig:"no_color"`
	ShowBytes  null.Bool   `json:"showBytes" envconfig:"show_bytes"`
	Count      null.Int    `json:"count" envconfig:"count"`
	LoadAddr   null.String `json:"loadAddr" envconfig:"load_addr"`
	Entry      null.String `json:"entry" envconfig:"entry"`
	Symbols    null.String `json:"symbols" envconfig:"symbols"`
	Scrollback null.Int    `json:"scrollback" envconfig:"scrollback"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:   null.NewString("info", false),
		LogFormat:  null.NewString("text", false),
		NoColor:    null.NewBool(false, false),
		ShowBytes:  null.NewBool(true, false),
		Count:      null.NewInt(0, false),
		LoadAddr:   null.NewString("0000:0100", false),
		Scrollback: null.NewInt(500, false),
	}
}

// Apply overlays the valid fields of cfg on c.
func (c Config) Apply(cfg Config) Config {
	if cfg.LogLevel.Valid {
		c.LogLevel = cfg.LogLevel
	}
	if cfg.LogFormat.Valid {
		c.LogFormat = cfg.LogFormat
	}
	if cfg.NoColor.Valid {
		c.NoColor = cfg.NoColor
	}
	if cfg.ShowBytes.Valid {
		c.ShowBytes = cfg.ShowBytes
	}
	if cfg.Count.Valid {
		c.Count = cfg.Count
	}
	if cfg.LoadAddr.Valid {
		c.LoadAddr = cfg.LoadAddr
	}
	if cfg.Entry.Valid {
		c.Entry = cfg.Entry
	}
	if cfg.Symbols.Valid {
		c.Symbols = cfg.Symbols
	}
	if cfg.Scrollback.Valid {
		c.Scrollback = cfg.Scrollback
	}
	return c
}

// Validate checks the consolidated settings.
func (c Config) Validate() error {
	var errs []error
	if _, err := logrus.ParseLevel(c.LogLevel.String); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat.String {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat.String))
	}
	if c.Count.Int64 < 0 {
		errs = append(errs, fmt.Errorf("count must not be negative, got %d", c.Count.Int64))
	}
	if c.Scrollback.Int64 <= 0 {
		errs = append(errs, fmt.Errorf("scrollback must be positive, got %d", c.Scrollback.Int64))
	}
	if _, err := ParseFarAddress(c.LoadAddr.String); err != nil {
		errs = append(errs, fmt.Errorf("load address: %w", err))
	}
	if c.Entry.String != "" {
		if _, err := parseOffset(c.Entry.String); err != nil {
			errs = append(errs, fmt.Errorf("entry: %w", err))
		}
	}
	return errors.Join(errs...)
}

// parseOffset reads a 16-bit hex offset in any form ParseAddress accepts.
func parseOffset(s string) (uint16, error) {
	v, ok := ParseAddress(s)
	if !ok || v > 0xFFFF {
		return 0, fmt.Errorf("%w: %q", ErrBadAddress, s)
	}
	return uint16(v), nil
}

// imageFlagSet holds the flags shared by every command that loads an image.
func imageFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.String("load", "0000:0100", "load address for the image as SEG:OFF")
	flags.String("entry", "", "offset to start decoding at (default: the load offset)")
	flags.String("symbols", "", "YAML symbol file")
	return flags
}

// getConfig reads the settings that were given on the command line.
func getConfig(flags *pflag.FlagSet) Config {
	return Config{
		LogLevel:   getNullString(flags, "log-level"),
		LogFormat:  getNullString(flags, "log-format"),
		NoColor:    getNullBool(flags, "no-color"),
		ShowBytes:  getNullBool(flags, "bytes"),
		Count:      getNullInt64(flags, "count"),
		LoadAddr:   getNullString(flags, "load"),
		Entry:      getNullString(flags, "entry"),
		Symbols:    getNullString(flags, "symbols"),
		Scrollback: getNullInt64(flags, "scrollback"),
	}
}

// Flags a command does not define stay unset.
func getNullBool(flags *pflag.FlagSet, key string) null.Bool {
	v, err := flags.GetBool(key)
	if err != nil {
		return null.Bool{}
	}
	return null.NewBool(v, flags.Changed(key))
}

func getNullInt64(flags *pflag.FlagSet, key string) null.Int {
	v, err := flags.GetInt64(key)
	if err != nil {
		return null.Int{}
	}
	return null.NewInt(v, flags.Changed(key))
}

func getNullString(flags *pflag.FlagSet, key string) null.String {
	v, err := flags.GetString(key)
	if err != nil {
		return null.String{}
	}
	return null.NewString(v, flags.Changed(key))
}

// readDiskConfig reads a JSON config file. An empty path means no file.
func readDiskConfig(fs afero.Fs, path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, err
	}
	var conf Config
	if err := json.Unmarshal(data, &conf); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// readEnvConfig reads IE86DIS_* variables.
func readEnvConfig() (conf Config, err error) {
	err = envconfig.Process(envPrefix, &conf)
	return conf, err
}

// getConsolidatedConfig layers defaults < config file < environment < flags.
func getConsolidatedConfig(fs afero.Fs, flags *pflag.FlagSet, configPath string) (Config, error) {
	fileConf, err := readDiskConfig(fs, configPath)
	if err != nil {
		return Config{}, err
	}
	envConf, err := readEnvConfig()
	if err != nil {
		return Config{}, err
	}
	conf := defaultConfig().Apply(fileConf).Apply(envConf).Apply(getConfig(flags))
	return conf, conf.Validate()
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys shared by flags, environment and config file.
const (
	keyFormat        = "format"
	keyEpsilon       = "epsilon"
	keyMaxIterations = "max-iterations"
	keyPivotRule     = "pivot-rule"
	keyNoDelegate    = "no-graphical"
	keyMethod        = "method"
	keyConfig        = "config"
	keyFile          = "file"
	keyNoColor       = "no-color"
)

// settings is the resolved configuration for one command run.
type settings struct {
	File          string
	Format        string
	Epsilon       float64
	MaxIterations int
	PivotRule     string
	NoDelegate    bool
	Method        string
	NoColor       bool
}

// loadSettings binds fs into a fresh viper instance layered over
// ORSOLVE_* environment variables and an optional orsolve.yaml.
func loadSettings(fs *pflag.FlagSet) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix("ORSOLVE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return settings{}, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("orsolve")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/orsolve")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := settings{
		File:          v.GetString(keyFile),
		Format:        strings.ToLower(v.GetString(keyFormat)),
		Epsilon:       v.GetFloat64(keyEpsilon),
		MaxIterations: v.GetInt(keyMaxIterations),
		PivotRule:     strings.ToLower(v.GetString(keyPivotRule)),
		NoDelegate:    v.GetBool(keyNoDelegate),
		Method:        v.GetString(keyMethod),
		NoColor:       v.GetBool(keyNoColor),
	}
	switch s.Format {
	case formatText, formatJSON, formatProtoJSON:
	default:
		return settings{}, fmt.Errorf("unknown format %q (want text, json or protojson)", s.Format)
	}

	return s, nil
}

package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bzlmod-tools/modcmake/internal/branding"
	"github.com/bzlmod-tools/modcmake/internal/cmakegen"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// Setting keys, as written in the YAML file.
const (
	KeyGenerator       = "generator"
	KeyCMakeMinVersion = "cmake_min_version"
)

// Flag names bound to the setting keys.
const (
	FlagGenerator       = "generator"
	FlagCMakeMinVersion = "cmake-min-version"
)

var flagKeys = map[string]string{
	KeyGenerator:       FlagGenerator,
	KeyCMakeMinVersion: FlagCMakeMinVersion,
}

// Settings are the resolved generator settings.
type Settings struct {
	Generator       string `yaml:"generator"`
	CMakeMinVersion string `yaml:"cmake_min_version"`
}

// Options converts the settings into renderer options.
func (s *Settings) Options() cmakegen.Options {
	return cmakegen.Options{
		Generator:  s.Generator,
		MinVersion: s.CMakeMinVersion,
	}
}

// YAML returns the settings in config-file form.
func (s *Settings) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling settings: %w", err)
	}
	return out, nil
}

// Load resolves settings from the embedded defaults, the YAML file at path
// (skipped when path is empty) and the changed flags in flags (may be nil).
// Environment variables are never consulted.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetDefault(KeyGenerator, branding.Generator())
	v.SetDefault(KeyCMakeMinVersion, branding.CMakeMinVersion())

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := Validate(data); err != nil {
			return nil, fmt.Errorf("validating config file %s: %w", path, err)
		}
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	s := &Settings{
		Generator:       v.GetString(KeyGenerator),
		CMakeMinVersion: v.GetString(KeyCMakeMinVersion),
	}
	if err := s.Options().Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// RegisterFlags adds the setting flags to fs with the embedded defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagGenerator, branding.Generator(), "Label written into the generated file header")
	fs.String(FlagCMakeMinVersion, branding.CMakeMinVersion(), "Lowest CMake version that gets include_guard()")
}

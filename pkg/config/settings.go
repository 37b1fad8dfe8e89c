package config

import (
	"strings"

	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/arthur-debert/omni/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as settings
const EnvPrefix = "OMNI_"

// Settings are omni's own configuration knobs
type Settings struct {
	// UserConfigFile is the user configuration path merged paths are written to
	UserConfigFile string `koanf:"user_config"`

	// LogFile overrides the log file location
	LogFile string `koanf:"log_file"`

	NoColor bool `koanf:"no_color"`

	// UpdateUserConfig is the default of the --update-user-config flag
	UpdateUserConfig string `koanf:"update_user_config"`
}

// LoadSettings merges embedded defaults, computed defaults and OMNI_* variables
func LoadSettings() (*Settings, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	// 2. Defaults that depend on the environment
	computed := map[string]interface{}{
		"user_config": paths.UserConfigFile(),
	}
	if err := k.Load(confmap.Provider(computed, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load computed settings")
	}

	// 3. Environment variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment settings")
	}

	// 4. Unmarshal
	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}

	// Empty variables fall back to the defaults
	if s.UserConfigFile == "" {
		s.UserConfigFile = paths.UserConfigFile()
	}
	if s.UpdateUserConfig == "" {
		s.UpdateUserConfig = "no"
	}

	s.UserConfigFile = paths.ExpandHome(s.UserConfigFile)
	s.LogFile = paths.ExpandHome(s.LogFile)
	return &s, nil
}

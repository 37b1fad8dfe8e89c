package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/arthur-debert/omni/pkg/pathmerge"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// RepoConfigFiles are the repository configuration locations, by precedence
var RepoConfigFiles = []string{
	".omni.yaml",
	".omni.yml",
	filepath.Join(".omni", "config.yaml"),
	filepath.Join(".omni", "config.yml"),
	".omni.toml",
}

// Repository configuration keys omni reads
const (
	UpKey   = "up"
	PathKey = "path"
)

// RepoConfig is the read-only configuration of one repository
type RepoConfig struct {
	file string
	k    *koanf.Koanf
}

// FindRepoConfig returns the configuration file used for root, or "" if none exists
func FindRepoConfig(root string) string {
	for _, name := range RepoConfigFiles {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadRepoConfig loads the repository configuration of root.
// A repository without configuration file yields an empty configuration.
func LoadRepoConfig(root string) (*RepoConfig, error) {
	cfg := &RepoConfig{k: koanf.New(".")}

	cfg.file = FindRepoConfig(root)
	if cfg.file == "" {
		return cfg, nil
	}

	var parser koanf.Parser = yaml.Parser()
	if strings.EqualFold(filepath.Ext(cfg.file), ".toml") {
		parser = toml.Parser()
	}

	if err := cfg.k.Load(file.Provider(cfg.file), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", cfg.file).
			WithDetail("file", cfg.file)
	}
	return cfg, nil
}

// File returns the loaded configuration file, or "" if there was none
func (c *RepoConfig) File() string {
	return c.file
}

// Up returns the raw "up" value and whether one is set
func (c *RepoConfig) Up() (interface{}, bool) {
	raw := c.k.Get(UpKey)
	return raw, raw != nil
}

// Path decodes the "path" section
func (c *RepoConfig) Path() (pathmerge.Contribution, error) {
	contribution, err := pathmerge.FromValue(c.k.Get(PathKey))
	if err != nil {
		return pathmerge.Contribution{}, errors.Wrapf(err, errors.ErrConfigParse, "invalid %s configuration in %s", PathKey, c.file).
			WithDetail("file", c.file)
	}
	return contribution, nil
}

package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/pattrix/errors"
)

// Save writes the configuration to ~/.pattrix/config.toml, creating the
// directory when needed. An existing file is rotated to a .back copy first.
func Save(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create config directory %s", dir)
	}

	path := filepath.Join(dir, "config.toml")
	if err := backup(path); err != nil {
		return err
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}
	return nil
}

// backup copies the current config aside before it is overwritten.
func backup(path string) error {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(path+".back", content, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config backup")
	}
	return nil
}

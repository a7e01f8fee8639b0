// Package cliconfig stores API credential profiles for the pixgate CLI
// under ~/.pixgate/config.yaml.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CurrentProfile string              `yaml:"current_profile"`
	Profiles       map[string]*Profile `yaml:"profiles"`
	path           string
}

type Profile struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

func Default() *Config {
	return &Config{
		CurrentProfile: "default",
		Profiles:       make(map[string]*Profile),
	}
}

func Load(cfgFile string) (*Config, error) {
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfgFile = filepath.Join(home, ".pixgate", "config.yaml")
	}

	cfg := Default()
	cfg.path = cfgFile

	data, err := os.ReadFile(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	if c.path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(home, ".pixgate", "config.yaml")
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0600)
}

// SaveProfile stores credentials under name and makes it current.
func (c *Config) SaveProfile(name, baseURL, apiKey string) error {
	if c.Profiles == nil {
		c.Profiles = make(map[string]*Profile)
	}

	c.Profiles[name] = &Profile{
		BaseURL: baseURL,
		APIKey:  apiKey,
	}

	c.CurrentProfile = name
	return c.Save()
}

// GetProfile returns the named profile, defaulting to the current one.
func (c *Config) GetProfile(name string) (*Profile, error) {
	if name == "" {
		name = c.CurrentProfile
	}

	profile, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found; run 'pixgate login' first", name)
	}

	return profile, nil
}

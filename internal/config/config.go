package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Rorical/RoriPersons/internal/models"
	"github.com/Rorical/RoriPersons/internal/store"
)

type Config struct {
	Seed       []models.Person `yaml:"seed"`
	StartShown bool            `yaml:"start_shown"`
	LogFile    string          `yaml:"log_file,omitempty"`
	path       string
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config at configPath, creating a default one if missing.
func LoadFrom(configPath string) (*Config, error) {
	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.path = configPath

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

// Validate checks the seed records.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Seed))
	for i, p := range c.Seed {
		if p.ID == "" {
			return fmt.Errorf("seed[%d]: empty id", i)
		}
		if p.Age < 0 {
			return fmt.Errorf("seed[%d]: negative age %d", i, p.Age)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("seed[%d]: %q: %w", i, p.ID, store.ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// InitialState builds the startup snapshot from the seed.
func (c *Config) InitialState() (*store.State, error) {
	s, err := store.New(c.Seed)
	if err != nil {
		return nil, err
	}
	if c.StartShown {
		s = s.WithVisibility(store.Shown)
	}
	return s, nil
}

func (c *Config) Path() string {
	return c.path
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORIPERSONS_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORIPERSONS_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".roripersons", "config.yaml"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return createDefaultConfig(configPath)
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func Default() *Config {
	return &Config{Seed: store.Seed()}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := Default()

	// Save default config to file
	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		c.path = configPath
	}
	if err := c.Validate(); err != nil {
		return err
	}

	return saveConfig(c, c.path)
}

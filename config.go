package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultInterpreter    = "dfrotz"
	defaultMaxMessageSize = 1900
	defaultConfirmTimeout = 60 * time.Second
	defaultPromptTimeout  = 5 * time.Second

	// Telegram rejects messages above 4096 characters.
	maxTransportMessageSize = 4000
)

// Run modes with different required settings.
const (
	modeTelegram = "telegram"
	modeWeb      = "web"
	modeConsole  = "console"
)

// Config is the relay's settings file.
type Config struct {
	BotToken          string        `yaml:"bot_token"`
	AllowedUsers      []int64       `yaml:"allowed_users"`
	GameFolder        string        `yaml:"game_folder"`
	Interpreter       string        `yaml:"interpreter,omitempty"`
	UsePTY            bool          `yaml:"use_pty,omitempty"`
	MaxMessageSize    int           `yaml:"max_message_size,omitempty"`
	ConfirmTimeout    time.Duration `yaml:"confirm_timeout,omitempty"`
	PromptTimeout     time.Duration `yaml:"prompt_timeout,omitempty"`
	LegacyBlankNoise  bool          `yaml:"legacy_blank_noise,omitempty"`
	WebUIPasswordHash string        `yaml:"webui_password_hash,omitempty"`
}

// configPathOverride allows tests and --config to redirect the config file
var configPathOverride string

func getConfigDir() string {
	if configPathOverride != "" {
		return filepath.Dir(configPathOverride)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".frotz-relay")
}

func getConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	return filepath.Join(getConfigDir(), "config.yaml")
}

// applyDefaults fills every optional field left empty.
func (c *Config) applyDefaults() {
	if c.Interpreter == "" {
		c.Interpreter = defaultInterpreter
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = defaultMaxMessageSize
	}
	if c.ConfirmTimeout == 0 {
		c.ConfirmTimeout = defaultConfirmTimeout
	}
	if c.PromptTimeout == 0 {
		c.PromptTimeout = defaultPromptTimeout
	}
}

// Validate checks the fields the given mode needs.
func (c *Config) Validate(mode string) error {
	var errs []error
	if c.GameFolder == "" {
		errs = append(errs, errors.New("game_folder is required"))
	} else if info, err := os.Stat(c.GameFolder); err != nil {
		errs = append(errs, fmt.Errorf("game_folder: %w", err))
	} else if !info.IsDir() {
		errs = append(errs, fmt.Errorf("game_folder %s is not a directory", c.GameFolder))
	}
	if mode == modeTelegram {
		if c.BotToken == "" {
			errs = append(errs, errors.New("bot_token is required"))
		}
		if len(c.AllowedUsers) == 0 {
			errs = append(errs, errors.New("allowed_users must list at least one user"))
		}
	}
	if c.MaxMessageSize < 1 || c.MaxMessageSize > maxTransportMessageSize {
		errs = append(errs, fmt.Errorf("max_message_size must be between 1 and %d, got %d",
			maxTransportMessageSize, c.MaxMessageSize))
	}
	if c.ConfirmTimeout < 0 || c.PromptTimeout < 0 {
		errs = append(errs, errors.New("timeouts must not be negative"))
	}
	return errors.Join(errs...)
}

// loadConfig reads the settings file and applies defaults. It does not
// validate; callers do that for their mode.
func loadConfig() (*Config, error) {
	data, err := os.ReadFile(getConfigPath())
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", getConfigPath(), err)
	}
	config.applyDefaults()
	return &config, nil
}

// loadValidConfig loads the settings file and validates it for mode.
func loadValidConfig(mode string) (*Config, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := config.Validate(mode); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", getConfigPath(), err)
	}
	return config, nil
}

func saveConfig(config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(getConfigDir(), 0700); err != nil {
		return err
	}
	return os.WriteFile(getConfigPath(), data, 0600)
}

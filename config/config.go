package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	UpdateKeyID          = "id"
	UpdateKeyDateOfBirth = "date_of_birth"

	StoreMemory = "memory"
	StoreMemDB  = "memdb"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type LogConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=console json"`
}

// Config configures the likebox command.
type Config struct {
	Log       LogConfig `yaml:"log"`
	Data      string    `yaml:"data"`
	Store     string    `yaml:"store" validate:"required,oneof=memory memdb"`
	UpdateKey string    `yaml:"update_key" validate:"required,oneof=id date_of_birth"`
}

func Default() Config {
	return Config{
		Log:       LogConfig{Level: "info", Format: LogFormatConsole},
		Store:     StoreMemory,
		UpdateKey: UpdateKeyID,
	}
}

// Load reads a YAML config file over the defaults and validates it.
// An empty path yields the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func (c Config) Validate() error {
	if err := structValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

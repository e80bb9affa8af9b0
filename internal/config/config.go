// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type UploadsConfig struct {
	Dir string `yaml:"dir"`
}

type BookingConfig struct {
	// NotifyEmail receives the operator notification for every booking.
	NotifyEmail string `yaml:"notify_email"`
}

// Duration parses YAML values like "2s" or "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

type GeocodeConfig struct {
	BaseURL string   `yaml:"base_url"`
	Limit   int      `yaml:"limit"`
	Timeout Duration `yaml:"timeout"`
	APIKey  string   `yaml:"-"` // Loaded from environment
}

type SESConfig struct {
	// All loaded from environment; notification email is disabled when empty.
	AccessKeyID     string `yaml:"-"`
	SecretAccessKey string `yaml:"-"`
	Region          string `yaml:"-"`
	Sender          string `yaml:"-"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`
	Uploads  UploadsConfig  `yaml:"uploads"`
	Booking  BookingConfig  `yaml:"booking"`
	Geocode  GeocodeConfig  `yaml:"geocode"`
	SES      SESConfig      `yaml:"-"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Read and parse YAML config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	cfg.applyDefaults()

	// Load sensitive values from environment
	cfg.Geocode.APIKey = os.Getenv("GEOAPIFY_API_KEY")
	cfg.SES.AccessKeyID = os.Getenv("SES_ACCESS_KEY_ID")
	cfg.SES.SecretAccessKey = os.Getenv("SES_SECRET_ACCESS_KEY")
	cfg.SES.Region = os.Getenv("SES_REGION")
	cfg.SES.Sender = os.Getenv("SES_SENDER")

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = "static/uploads"
	}
	if c.Geocode.BaseURL == "" {
		c.Geocode.BaseURL = "https://api.geoapify.com/v1/geocode/autocomplete"
	}
	if c.Geocode.Limit == 0 {
		c.Geocode.Limit = 5
	}
	if c.Geocode.Timeout == 0 {
		c.Geocode.Timeout = Duration(2 * time.Second)
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	return nil
}

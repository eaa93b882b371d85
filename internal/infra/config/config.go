package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env       string          `yaml:"env"        validate:"omitempty,oneof=dev prod"`
	PublicURL string          `yaml:"public_url" validate:"required,url"`
	Server    ServerConfig    `yaml:"server"     validate:"required"`
	Database  DatabaseConfig  `yaml:"database"   validate:"required"`
	State     StateConfig     `yaml:"state"`
	Auth      AuthConfig      `yaml:"auth"       validate:"required"`
	Mercury   MercuryConfig   `yaml:"mercury"    validate:"required"`
	Signature SignatureConfig `yaml:"signature"`
	Engine    EngineConfig    `yaml:"engine"     validate:"required"`
	Log       LogConfig       `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type ServerConfig struct {
	Host string `yaml:"host" validate:"omitempty,ip|hostname"`
	Port int    `yaml:"port" validate:"required,min=1,max=65535"`
}

type DatabaseConfig struct {
	Driver    string `yaml:"driver"    validate:"required,oneof=sqlite postgres"`
	DSN       string `yaml:"dsn"       validate:"required"`
	Namespace string `yaml:"namespace" validate:"omitempty,alphanum"`
}

// StateConfig selects where subscription state (webhook id + secret) lives.
type StateConfig struct {
	Driver string      `yaml:"driver" validate:"omitempty,oneof=sql redis"`
	Redis  RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"       validate:"min=0"`
	Prefix   string `yaml:"prefix"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key" validate:"required"`
}

// MercuryConfig contains Mercury API settings
type MercuryConfig struct {
	BaseURL   string            `yaml:"base_url"   validate:"required,url"`
	Timeout   string            `yaml:"timeout"`
	RateLimit float64           `yaml:"rate_limit" validate:"min=0"`
	Auth      MercuryAuthConfig `yaml:"auth"       validate:"required"`
}

// MercuryAuthConfig chooses between a static API token and OAuth2 credentials.
type MercuryAuthConfig struct {
	Method   string              `yaml:"method"    validate:"required,oneof=api_token oauth2"`
	APIToken string              `yaml:"api_token" validate:"required_if=Method api_token"`
	OAuth2   MercuryOAuth2Config `yaml:"oauth2"`
}

type MercuryOAuth2Config struct {
	ClientID     string   `yaml:"client_id"     validate:"required_with=RefreshToken"`
	ClientSecret string   `yaml:"client_secret" validate:"required_with=RefreshToken"`
	AuthURL      string   `yaml:"auth_url"      validate:"omitempty,url"`
	TokenURL     string   `yaml:"token_url"     validate:"omitempty,url"`
	Scopes       []string `yaml:"scopes"`
	RefreshToken string   `yaml:"refresh_token"`
	AccessToken  string   `yaml:"access_token"`
}

// SignatureConfig tunes incoming webhook verification
type SignatureConfig struct {
	Tolerance string `yaml:"tolerance"`
}

// EngineConfig configures hand-off of forwarded resources to the workflow engine
type EngineConfig struct {
	URL          string `yaml:"url"           validate:"required,url"`
	Secret       string `yaml:"secret"        validate:"required"`
	MaxReceive   int    `yaml:"max_receive"   validate:"min=0"`
	Workers      int    `yaml:"workers"       validate:"min=0"`
	PollInterval string `yaml:"poll_interval"`
}

type LogConfig struct {
	Level  string `yaml:"level"  validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=json text"`
}

type MetricsConfig struct {
	Enable    bool   `yaml:"enable"`
	GoMetrics bool   `yaml:"go_metrics"`
	Path      string `yaml:"path"       validate:"omitempty,startswith=/"`
}

func Load(path string) (*Config, error) {
	// .env next to the config file is optional
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load %s: %w", envPath, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read file: %w", err)
	}

	// Expand environment variables in the config
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse yaml: %w", err)
	}

	applyDefaults(&cfg)

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	if err := validateDependent(&cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Env == "" {
		cfg.Env = "prod"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.State.Driver == "" {
		cfg.State.Driver = "sql"
	}
	if cfg.State.Redis.Prefix == "" {
		cfg.State.Redis.Prefix = "mercuryhook"
	}
	if cfg.Mercury.BaseURL == "" {
		cfg.Mercury.BaseURL = "https://api.mercury.com/api/v1"
	}
	if cfg.Mercury.Timeout == "" {
		cfg.Mercury.Timeout = "30s"
	}
	if cfg.Mercury.Auth.Method == "" {
		cfg.Mercury.Auth.Method = "api_token"
	}
	if cfg.Mercury.Auth.OAuth2.AuthURL == "" {
		cfg.Mercury.Auth.OAuth2.AuthURL = "https://oauth2.mercury.com/oauth2/auth"
	}
	if cfg.Mercury.Auth.OAuth2.TokenURL == "" {
		cfg.Mercury.Auth.OAuth2.TokenURL = "https://oauth2.mercury.com/oauth2/token"
	}
	if len(cfg.Mercury.Auth.OAuth2.Scopes) == 0 {
		cfg.Mercury.Auth.OAuth2.Scopes = []string{
			"offline_access", "read", "webhooks:create", "webhooks:edit",
		}
	}
	if cfg.Signature.Tolerance == "" {
		cfg.Signature.Tolerance = "5m"
	}
	if cfg.Engine.MaxReceive == 0 {
		cfg.Engine.MaxReceive = 5
	}
	if cfg.Engine.Workers == 0 {
		cfg.Engine.Workers = 10
	}
	if cfg.Engine.PollInterval == "" {
		cfg.Engine.PollInterval = "1s"
	}
}

// validateDependent checks rules that span nested structs.
func validateDependent(cfg *Config) error {
	if cfg.State.Driver == "redis" && cfg.State.Redis.Addr == "" {
		return errors.New("state.redis.addr is required for the redis state driver")
	}
	if cfg.Mercury.Auth.Method == "oauth2" {
		o := cfg.Mercury.Auth.OAuth2
		if o.AccessToken == "" && o.RefreshToken == "" {
			return errors.New("mercury.auth.oauth2 needs an access_token or a refresh_token")
		}
	}
	return nil
}

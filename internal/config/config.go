package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pixgate-systems/pixgate/internal/webhook"
)

type Config struct {
	Server        ServerConfig     `mapstructure:"server"`
	Auth          AuthConfig       `mapstructure:"auth"`
	Subscriptions []string         `mapstructure:"subscriptions"`
	Webhook       WebhookConfig    `mapstructure:"webhook"`
	Redis         RedisConfig      `mapstructure:"redis"`
	RateLimit     RateLimitConfig  `mapstructure:"rate_limit"`
	Forwarder     ForwarderConfig  `mapstructure:"forwarder"`
	AbacatePay    AbacatePayConfig `mapstructure:"abacatepay"`
	Logging       LoggingConfig    `mapstructure:"logging"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type AuthConfig struct {
	Mode        string `mapstructure:"mode"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	HeaderName  string `mapstructure:"header_name"`
	HeaderValue string `mapstructure:"header_value"`
}

type WebhookConfig struct {
	MaxBodySize int64 `mapstructure:"max_body_size"`
}

type RedisConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type ForwarderConfig struct {
	Backend       string        `mapstructure:"backend"`
	URL           string        `mapstructure:"url"`
	SubjectPrefix string        `mapstructure:"subject_prefix"`
	Stream        string        `mapstructure:"stream"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type AbacatePayConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8099)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("auth.mode", "none")
	v.SetDefault("auth.header_name", "Authorization")
	v.SetDefault("subscriptions", []string{})
	v.SetDefault("webhook.max_body_size", 1048576)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.url", "redis://localhost:6379")
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests", 1000)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("forwarder.backend", "none")
	v.SetDefault("forwarder.url", "nats://localhost:4222")
	v.SetDefault("forwarder.subject_prefix", "pixgate.events")
	v.SetDefault("forwarder.stream", "PIXGATE_EVENTS")
	v.SetDefault("forwarder.timeout", "5s")
	v.SetDefault("abacatepay.base_url", "https://api.abacatepay.com")
	v.SetDefault("abacatepay.timeout", "30s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/pixgate")
	}

	// Environment variables override
	v.SetEnvPrefix("PIXGATE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the pipeline cannot honor.
func (c *Config) Validate() error {
	if _, ok := webhook.ParseAuthMode(c.Auth.Mode); !ok {
		return fmt.Errorf("unknown auth mode %q (supported: none, basicAuth, headerAuth)", c.Auth.Mode)
	}

	switch c.Forwarder.Backend {
	case "none", "log", "nats", "":
	default:
		return fmt.Errorf("unknown forwarder backend %q (supported: none, log, nats)", c.Forwarder.Backend)
	}

	known := make(map[string]struct{})
	for _, e := range webhook.AllEvents() {
		known[e] = struct{}{}
	}
	for _, e := range c.Subscriptions {
		if _, ok := known[e]; !ok {
			return fmt.Errorf("unknown subscription event %q", e)
		}
	}

	return nil
}

// WebhookAuth converts the config section into the core auth gate form.
func (c *Config) WebhookAuth() webhook.AuthConfig {
	mode, _ := webhook.ParseAuthMode(c.Auth.Mode)
	return webhook.AuthConfig{
		Mode:        mode,
		Username:    c.Auth.Username,
		Password:    c.Auth.Password,
		HeaderName:  c.Auth.HeaderName,
		HeaderValue: c.Auth.HeaderValue,
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret        string `yaml:"secret"`
	Issuer        string `yaml:"issuer"`
	Audience      string `yaml:"audience"`
	ExpireMinutes int    `yaml:"expire_minutes"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type RatesConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Symbol  string `yaml:"symbol"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Rates    RatesConfig    `yaml:"rates"`
}

type Config struct {
	Port         string
	GinMode      string
	DSN          string
	JWTSecret    string
	JWTIssuer    string
	JWTAudience  string
	TokenTTL     time.Duration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	RatesBaseURL string
	RatesAPIKey  string
	RatesSymbol  string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load reads config/config.yml when present and falls back to environment
// variables for every key. The rate symbol defaults to SLE when unconfigured.
func Load() (*Config, error) {
	configFile, err := loadConfigFile("config/config.yml")
	if err != nil {
		// No file is fine; environment variables carry the full surface.
		configFile = &ConfigFile{}
	}

	cfg := &Config{
		Port:         env("PORT", withDefaultInt(configFile.App.Port, 8080)),
		GinMode:      env("GIN_MODE", withDefault(configFile.App.GinMode, "release")),
		DSN:          env("DATABASE_DSN", configFile.Database.DSN),
		JWTSecret:    env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:    env("JWT_ISSUER", withDefault(configFile.JWT.Issuer, "currencysvc")),
		JWTAudience:  env("JWT_AUDIENCE", withDefault(configFile.JWT.Audience, "currencysvc")),
		SMTPHost:     env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:     envInt("SMTP_PORT", withDefaultN(configFile.SMTP.Port, 465)),
		SMTPUsername: env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword: env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:     env("SMTP_FROM", configFile.SMTP.From),
		RatesBaseURL: env("RATES_BASE_URL", configFile.Rates.BaseURL),
		RatesAPIKey:  env("RATES_API_KEY", configFile.Rates.APIKey),
		RatesSymbol:  env("RATES_SYMBOL", withDefault(configFile.Rates.Symbol, "SLE")),
	}

	expireMinutes := envInt("JWT_EXPIRE_MINUTES", withDefaultN(configFile.JWT.ExpireMinutes, 60))
	cfg.TokenTTL = time.Duration(expireMinutes) * time.Minute

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is required")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func withDefaultN(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func withDefaultInt(v, def int) string {
	return strconv.Itoa(withDefaultN(v, def))
}

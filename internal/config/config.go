package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"` // debug or release
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Catalog struct {
		Path string `yaml:"path"`
	} `yaml:"catalog"`
	Auth struct {
		JWTSecret     string `yaml:"jwt_secret"`
		AdminUser     string `yaml:"admin_user"`
		AdminPassword string `yaml:"admin_password"`
	} `yaml:"auth"`
	Enrich struct {
		Provider       string   `yaml:"provider"` // hub, gemini, or none
		Token          string   `yaml:"token"`
		Models         []string `yaml:"models"`
		GeminiModel    string   `yaml:"gemini_model"`
		TimeoutSeconds int      `yaml:"timeout_seconds"`
	} `yaml:"enrich"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Server.Mode = "debug"
	cfg.Database.Path = "sihportal.db"
	cfg.Catalog.Path = "problems.json"
	cfg.Auth.AdminUser = "admin"
	cfg.Auth.AdminPassword = "admin123"
	cfg.Enrich.Provider = "hub"
	cfg.Enrich.Models = []string{
		"microsoft/DialoGPT-medium",
		"facebook/bart-large-cnn",
		"google/flan-t5-base",
	}
	cfg.Enrich.GeminiModel = "gemini-2.0-flash"
	cfg.Enrich.TimeoutSeconds = 8
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config; a missing file falls back to defaults
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with environment variables if present
	if port := os.Getenv("SIH_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("SIH_DB_PATH"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if secret := os.Getenv("SIH_JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if user := os.Getenv("SIH_ADMIN_USER"); user != "" {
		cfg.Auth.AdminUser = user
	}
	if pass := os.Getenv("SIH_ADMIN_PASS"); pass != "" {
		cfg.Auth.AdminPassword = pass
	}
	if token := os.Getenv("SIH_HF_TOKEN"); token != "" {
		cfg.Enrich.Token = token
	}
	if provider := os.Getenv("SIH_ENRICH_PROVIDER"); provider != "" {
		cfg.Enrich.Provider = provider
	}
	if key := os.Getenv("SIH_GEMINI_API_KEY"); key != "" && cfg.Enrich.Provider == "gemini" {
		cfg.Enrich.Token = key
	}
	if timeout := os.Getenv("SIH_ENRICH_TIMEOUT"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			cfg.Enrich.TimeoutSeconds = secs
		}
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	SQLite SQLiteConfig

	// Upstreams. These are service-level defaults; users can override
	// them per account in their settings.
	Confluence ConfluenceConfig
	AI         AIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SQLiteConfig struct {
	Path string
}

// ConfluenceConfig holds the default Confluence Cloud credentials.
type ConfluenceConfig struct {
	BaseURL      string
	Email        string
	APIToken     string
	DefaultSpace string
}

// AIConfig holds the chat-completions endpoint configuration.
type AIConfig struct {
	BaseURL string
	Model   string
	APIKey  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.SQLite.Path = viper.GetString("sqlite.path")

	// Confluence defaults
	cfg.Confluence.BaseURL = viper.GetString("confluence.base_url")
	cfg.Confluence.Email = viper.GetString("confluence.email")
	cfg.Confluence.APIToken = viper.GetString("confluence.api_token")
	cfg.Confluence.DefaultSpace = viper.GetString("confluence.default_space")
	if token := viper.GetString("confluence_api_token"); token != "" {
		cfg.Confluence.APIToken = token
	}

	// AI endpoint
	cfg.AI.BaseURL = viper.GetString("ai.base_url")
	cfg.AI.Model = viper.GetString("ai.model")
	cfg.AI.APIKey = viper.GetString("ai.api_key")
	if key := viper.GetString("ai_api_key"); key != "" {
		cfg.AI.APIKey = key
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("sqlite.path", "data/assistant.db")
	viper.SetDefault("ai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("ai.model", "gpt-4o-mini")
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Assistant AssistantConfig
	Redis     RedisConfig
	Postgres  PostgresConfig
	Mqtt      MqttConfig
	Smarthome SmarthomeConfig
	Plugins   PluginsConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type AssistantConfig struct {
	ID              string
	DefaultLanguage string
	Languages       []string
	ConfidenceFloor float64
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type MqttConfig struct {
	BrokerURL string
	ClientID  string
	BaseTopic string
	Username  string
	Password  string
}

type SmarthomeConfig struct {
	DevicesFile string
}

type PluginsConfig struct {
	Dir string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("SERVER_PORT", 20721),
		},
		Assistant: AssistantConfig{
			ID:              getEnv("ASSISTANT_ID", "assistant"),
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
			Languages:       parseCommaSeparated(getEnv("SUPPORTED_LANGUAGES", "en,de")),
			ConfidenceFloor: getEnvFloat("NLU_CONFIDENCE_FLOOR", 0.75),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "assist"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "assist"),
		},
		Mqtt: MqttConfig{
			BrokerURL: getEnv("MQTT_BROKER_URL", "tcp://localhost:1883"),
			ClientID:  getEnv("MQTT_CLIENT_ID", "voxa-assist"),
			BaseTopic: getEnv("MQTT_BASE_TOPIC", "voxa/smarthome"),
			Username:  getEnv("MQTT_USERNAME", ""),
			Password:  getEnv("MQTT_PASSWORD", ""),
		},
		Smarthome: SmarthomeConfig{
			DevicesFile: getEnv("SMARTHOME_DEVICES_FILE", "devices.yaml"),
		},
		Plugins: PluginsConfig{
			Dir: getEnv("PLUGINS_DIR", "plugins"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Assistant.ID == "" {
		return fmt.Errorf("ASSISTANT_ID is required")
	}
	if strings.Contains(c.Assistant.ID, ".") {
		return fmt.Errorf("ASSISTANT_ID must not contain '.'")
	}
	if len(c.Assistant.Languages) == 0 {
		return fmt.Errorf("SUPPORTED_LANGUAGES is required")
	}
	if c.Assistant.ConfidenceFloor <= 0 || c.Assistant.ConfidenceFloor > 1 {
		return fmt.Errorf("NLU_CONFIDENCE_FLOOR must be in (0,1]")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("SERVER_PORT must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

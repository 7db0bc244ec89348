package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port           string
	ProductionType string
	LogPath        string

	Database Database
	GitHub   GitHub
	Scoring  Scoring

	// Ключ шифрования токенов доступа репозиториев
	EncryptionKey string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type GitHub struct {
	// Токен по умолчанию; репозиторий может переопределить его своим
	Token string

	// Таймаут одного обращения к GitHub API в секундах
	TimeoutSeconds int
}

type Scoring struct {
	APIKey  string
	BaseURL string
	Model   string

	// Таймаут одного обращения к scoring-сервису в секундах
	TimeoutSeconds int
}

func NewEnvConfig() *Config {
	return &Config{
		Port:           os.Getenv("APP_PORT"),
		ProductionType: os.Getenv("APP_PRODUCTION_TYPE"),
		LogPath:        os.Getenv("APP_LOG_PATH"),
		EncryptionKey:  os.Getenv("APP_ENCRYPTION_KEY"),

		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},

		GitHub: GitHub{
			Token:          os.Getenv("GITHUB_TOKEN"),
			TimeoutSeconds: envInt("GITHUB_TIMEOUT_SECONDS", 30),
		},

		Scoring: Scoring{
			APIKey:         os.Getenv("SCORING_API_KEY"),
			BaseURL:        os.Getenv("SCORING_BASE_URL"),
			Model:          os.Getenv("SCORING_MODEL"),
			TimeoutSeconds: envInt("SCORING_TIMEOUT_SECONDS", 60),
		},
	}
}

// envInt читает целочисленную переменную окружения с значением по умолчанию
func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func (config *Config) PrintConfigWithHiddenSecrets() {
	// Функция для маскировки секретов
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return strings.Repeat("*", len(s))
	}

	fmt.Println("========== Configuration ==========")
	fmt.Println()
	fmt.Println("App Configuration:")
	fmt.Printf("\tPort: %s\n", config.Port)
	fmt.Printf("\tProductionType: %s\n", config.ProductionType)
	fmt.Printf("\tLogPath: %s\n", config.LogPath)
	fmt.Printf("\tEncryptionKey: %s\n", mask(config.EncryptionKey))

	fmt.Println("\nDatabase Configuration:")
	fmt.Printf("\tHost: %s\n", config.Database.Host)
	fmt.Printf("\tPort: %s\n", config.Database.Port)
	fmt.Printf("\tUser: %s\n", config.Database.User)
	fmt.Printf("\tPassword: %s\n", mask(config.Database.Password))
	fmt.Printf("\tName: %s\n", config.Database.Name)
	fmt.Printf("\tSSLMode: %s\n", config.Database.SSLMode)

	fmt.Println("\nGitHub Configuration:")
	fmt.Printf("\tToken: %s\n", mask(config.GitHub.Token))
	fmt.Printf("\tTimeoutSeconds: %d\n", config.GitHub.TimeoutSeconds)

	fmt.Println("\nScoring Configuration:")
	fmt.Printf("\tAPIKey: %s\n", mask(config.Scoring.APIKey))
	fmt.Printf("\tBaseURL: %s\n", config.Scoring.BaseURL)
	fmt.Printf("\tModel: %s\n", config.Scoring.Model)
	fmt.Printf("\tTimeoutSeconds: %d\n", config.Scoring.TimeoutSeconds)

	fmt.Println("\n===================================")
}

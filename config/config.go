package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Queue    QueueConfig
	Mailer   MailerConfig
	Upload   UploadConfig
	Notify   NotifyConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// QueueConfig selects the notification queue driver: "redis" for the
// stream-backed queue, "memory" for the in-process channel queue.
type QueueConfig struct {
	Driver string
}

type MailerConfig struct {
	Provider           string // "ses" or "noop"
	FromAddress        string
	FromName           string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
}

type UploadConfig struct {
	Dir string
}

type NotifyConfig struct {
	CreatorEmail string
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env is optional; in deployed environments the variables come from
	// the process environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Queue: QueueConfig{
			Driver: getEnv("QUEUE_DRIVER", "memory"),
		},
		Mailer: MailerConfig{
			Provider:           getEnv("MAIL_PROVIDER", "noop"),
			FromAddress:        getEnv("MAIL_FROM_ADDRESS", "events@localhost"),
			FromName:           getEnv("MAIL_FROM_NAME", ""),
			SESRegion:          getEnv("SES_REGION", "us-east-1"),
			SESAccessKeyID:     getEnv("SES_ACCESS_KEY_ID", ""),
			SESSecretAccessKey: getEnv("SES_SECRET_ACCESS_KEY", ""),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
		Notify: NotifyConfig{
			CreatorEmail: getEnv("CREATOR_EMAIL", "events@localhost"),
		},
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "3000"},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5433",
			User:     "postgres",
			Password: "postgres",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     "6380",
			Password: "",
			DB:       1,
		},
		Queue:  QueueConfig{Driver: "memory"},
		Mailer: MailerConfig{Provider: "noop", FromAddress: "events@localhost"},
		Upload: UploadConfig{Dir: "uploads"},
		Notify: NotifyConfig{CreatorEmail: "creator@localhost"},
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "eventboard"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	HTTP     HTTPConfig
	Menu     MenuConfig
	DB       DBConfig
	Mongo    MongoConfig
	Telegram TelegramConfig
}

type HTTPConfig struct {
	Addr string
}

// MenuConfig selects where the catalog lives.
type MenuConfig struct {
	Backend string // "file", "postgres" or "mongo"
	File    string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type MongoConfig struct {
	URI      string
	Database string
}

type TelegramConfig struct {
	Token         string // receipts are sent only when set
	ReceiptChatID int64
}

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	chatID, _ := strconv.ParseInt(getEnv("RECEIPT_CHAT_ID", "0"), 10, 64)

	return &Config{
		Env: getEnv("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Addr: getEnv("ADDR", ":8080"),
		},
		Menu: MenuConfig{
			Backend: strings.ToLower(getEnv("MENU_BACKEND", BackendFile)),
			File:    getEnv("MENU_FILE", "menu.json"),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "restaurant"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "restaurant"),
		},
		Telegram: TelegramConfig{
			Token:         getEnv("TOKEN", ""),
			ReceiptChatID: chatID,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	DatabaseName    string
	JWTSecret       string
	StripeSecretKey string
	Origin          string
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	Timeout         time.Duration
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			// .env file not found, proceed with environment values
		} else {
			panic("Error loading .env file")
		}
	}
	cfg := Config{
		Port:            getEnv("PORT", "5000"),
		MongoURI:        getEnv("MONGODB_URI", ""),
		DatabaseName:    getEnv("DATABASE_NAME", "yogaJourneyDb"),
		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", ""),
		StripeSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		Origin:          getEnv("ORIGIN", "http://localhost:5173"),
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		SMTPUsername:    getEnv("SMTP_USER", ""),
		SMTPPassword:    getEnv("SMTP_PASS", ""),
		Timeout:         10 * time.Second,
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = buildMongoURI(
			getEnv("DB_USER", ""),
			getEnv("DB_PASS", ""),
			getEnv("DB_HOST", "localhost:27017"),
		)
	}
	return cfg
}

// buildMongoURI assembles a connection string from credential parts when no
// full MONGODB_URI is provided.
func buildMongoURI(user, pass, host string) string {
	if user == "" {
		return fmt.Sprintf("mongodb://%s", host)
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", user, pass, host)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

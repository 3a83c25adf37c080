package config

import (
	"os"
)

type Config struct {
	Server     ServerConfig
	Mongo      MongoConfig
	Firebase   FirebaseConfig
	Cloudinary CloudinaryConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Port   string
	AppEnv string
}

type MongoConfig struct {
	URI      string
	Database string
}

type FirebaseConfig struct {
	CredentialsJSON string
	ProjectID       string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type LoggerConfig struct {
	Level string
}

// Load reads the whole configuration from environment variables.
// godotenv is expected to have been loaded by main beforehand.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:   getEnv("PORT", "7000"),
			AppEnv: getEnv("APP_ENV", "development"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB", "gagan"),
		},
		Firebase: FirebaseConfig{
			CredentialsJSON: getEnv("FIREBASE_CREDENTIALS_JSON", ""),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUD_API_KEY", ""),
			APISecret: getEnv("CLOUD_API_SECRET", ""),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import "os"

// Config holds the service configuration. The persistence store URI is
// the only collaborator address the deployment overrides; everything
// else about the questionnaire is schema data, not environment.
type Config struct {
	MongoURI   string
	MongoDB    string
	RedisAddr  string
	Port       string
	JWTSecret  string
	WebhookURL string
}

func Load() *Config {
	return &Config{
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "confmatch"),
		RedisAddr:  getEnv("REDIS_URI", "localhost:6379"),
		Port:       getEnv("PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		WebhookURL: os.Getenv("WEBHOOK_URL"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

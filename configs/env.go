package configs

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// loadEnv reads a local .env file if one exists. Missing files are fine;
// in production everything comes from real environment variables.
func loadEnv() {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

func envOrDefault(key, fallback string) string {
	loadEnv()
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func EnvPort() string {
	return envOrDefault("PORT", "5000")
}

func EnvMongoURI() string {
	return envOrDefault("MONGOURI", "mongodb://localhost:27017/eventalbum")
}

func EnvMongoDBName() string {
	return envOrDefault("MONGO_DB_NAME", "eventalbum")
}

func EnvJWTSecret() string {
	return envOrDefault("JWT_SECRET", "")
}

func EnvAWSAccessKey() string {
	return envOrDefault("AWS_ACCESS_KEY_ID", "")
}

func EnvAWSSecretKey() string {
	return envOrDefault("AWS_SECRET_ACCESS_KEY", "")
}

func EnvAWSRegion() string {
	return envOrDefault("AWS_REGION", "us-east-1")
}

func EnvMediaBucket() string {
	return envOrDefault("AWS_S3_BUCKET", "event-album-media")
}

func EnvRedisURL() string {
	return envOrDefault("REDISURL", "")
}

func EnvNotificationChannel() string {
	return envOrDefault("NOTIFICATION_CHANNEL", "album-activity")
}

// EnvEnvironment names the deployment environment; "production" switches
// on Secure cookies.
func EnvEnvironment() string {
	return envOrDefault("ENV", "development")
}

func EnvDBHost() string {
	return envOrDefault("DB_HOST", "localhost")
}

func EnvDBUser() string {
	return envOrDefault("DB_USER", "postgres")
}

func EnvDBPassword() string {
	return envOrDefault("DB_PASSWORD", "")
}

func EnvDBName() string {
	return envOrDefault("DB_NAME", "eventalbum")
}

func EnvDBPort() string {
	return envOrDefault("DB_PORT", "5432")
}

package config

import (
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/utils"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "meditrack"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "meditrack.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "meditrack_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
		},
		API: AppAPI{
			BaseUrl:              utils.GetEnvString("API_BASE_URL", "http://localhost:3000/v1"),
			TimeoutInSeconds:     utils.GetEnvInt("API_TIMEOUT_IN_SECONDS", 0),
			MaxRequestsPerSecond: utils.GetEnvFloat("API_MAX_REQUESTS_PER_SECOND", 0),
			SingleFlightRefresh:  utils.GetEnvBool("API_SINGLE_FLIGHT_REFRESH", false),
			UserAgent:            utils.GetEnvString("API_USER_AGENT", constvars.DefaultUserAgent),
		},
		CredentialStore: AppCredential{
			Driver:     utils.GetEnvString("CREDENTIAL_STORE_DRIVER", constvars.CredentialStoreDriverFile),
			FilePath:   utils.GetEnvString("CREDENTIAL_STORE_FILE_PATH", defaultCredentialFilePath()),
			Passphrase: utils.GetEnvString("CREDENTIAL_STORE_PASSPHRASE", ""),
			Namespace:  utils.GetEnvString("CREDENTIAL_STORE_NAMESPACE", "meditrack"),
			Collection: utils.GetEnvString("CREDENTIAL_STORE_COLLECTION", "sessions"),
		},
		SessionEvents: AppSessionEvent{
			Enabled: utils.GetEnvBool("SESSION_EVENTS_ENABLED", false),
			Queue:   utils.GetEnvString("SESSION_EVENTS_QUEUE", "meditrack.session-events"),
		},
		Export: AppExport{
			BucketName: utils.GetEnvString("EXPORT_BUCKET_NAME", "meditrack-exports"),
			Prefix:     utils.GetEnvString("EXPORT_PREFIX", "patients"),
		},
		Metrics: AppMetrics{
			Address:              utils.GetEnvString("METRICS_ADDRESS", ":9464"),
			WatchIntervalSeconds: utils.GetEnvInt("WATCH_INTERVAL_SECONDS", 30),
		},
	}
}

func defaultCredentialFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".meditrack-session.json"
	}
	return filepath.Join(dir, "meditrack", "session.json")
}

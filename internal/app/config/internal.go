package config

type InternalConfig struct {
	App             App             `mapstructure:"app"`
	API             AppAPI          `mapstructure:"api"`
	CredentialStore AppCredential   `mapstructure:"credential_store"`
	SessionEvents   AppSessionEvent `mapstructure:"session_events"`
	Export          AppExport       `mapstructure:"export"`
	Metrics         AppMetrics      `mapstructure:"metrics"`
}

type App struct {
	Env                      string `mapstructure:"env"`
	Version                  string `mapstructure:"version"`
	Timezone                 string `mapstructure:"timezone"`
	ShutdownTimeoutInSeconds int    `mapstructure:"shutdown_timeout_in_seconds"`
}

type AppAPI struct {
	// BaseUrl is the backend root including its version prefix, e.g. http://localhost:3000/v1
	BaseUrl string `mapstructure:"base_url"`
	// TimeoutInSeconds of the underlying http.Client, 0 keeps the transport default
	TimeoutInSeconds int `mapstructure:"timeout_in_seconds"`
	// MaxRequestsPerSecond throttles outbound calls, 0 disables throttling
	MaxRequestsPerSecond float64 `mapstructure:"max_requests_per_second"`
	// SingleFlightRefresh shares one in-flight refresh between concurrent callers
	SingleFlightRefresh bool   `mapstructure:"single_flight_refresh"`
	UserAgent           string `mapstructure:"user_agent"`
}

type AppCredential struct {
	// Driver is one of memory, file, redis, mongo
	Driver     string `mapstructure:"driver"`
	FilePath   string `mapstructure:"file_path"`
	Passphrase string `mapstructure:"passphrase"`
	Namespace  string `mapstructure:"namespace"`
	Collection string `mapstructure:"collection"`
}

type AppSessionEvent struct {
	Enabled bool   `mapstructure:"enabled"`
	Queue   string `mapstructure:"queue"`
}

type AppExport struct {
	BucketName string `mapstructure:"bucket_name"`
	Prefix     string `mapstructure:"prefix"`
}

type AppMetrics struct {
	Address              string `mapstructure:"address"`
	WatchIntervalSeconds int    `mapstructure:"watch_interval_seconds"`
}

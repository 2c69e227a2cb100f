package config

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	AdminToken string
	Datasets   DatasetsConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		AdminToken: envOrDefault(envAdminToken, ""),
		Datasets:   loadDatasets(),
		Metrics:    loadMetrics(),
	}
}

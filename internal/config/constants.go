package config

const (
	envPort           = "PORT"
	envPlayersPath    = "PLAYERS_DATASET"
	envGamesPath      = "GAMES_DATASET"
	envFranchisesPath = "FRANCHISES_DATASET"
	envLeague         = "LEAGUE_FILTER"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken     = "ADMIN_TOKEN"

	defaultPort           = "8080"
	defaultPlayersPath    = "data/nba.csv"
	defaultGamesPath      = "data/nbaallelo.csv"
	defaultFranchisesPath = "data/franchises.csv"
	// Only league rows kept in the snapshot; the Elo dataset mixes ABA games in.
	defaultLeague      = "NBA"
	defaultMetricsPort = "9090"
	defaultServiceName = "hoops-stats-service"
)

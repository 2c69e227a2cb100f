package config

// DatasetsConfig locates the tabular source files loaded into the snapshot.
type DatasetsConfig struct {
	PlayersPath    string
	GamesPath      string
	FranchisesPath string
	League         string // league identifier rows must match to enter the snapshot
}

func loadDatasets() DatasetsConfig {
	return DatasetsConfig{
		PlayersPath:    envOrDefault(envPlayersPath, defaultPlayersPath),
		GamesPath:      envOrDefault(envGamesPath, defaultGamesPath),
		FranchisesPath: envOrDefault(envFranchisesPath, defaultFranchisesPath),
		League:         envOrDefault(envLeague, defaultLeague),
	}
}

// Package loader builds the immutable dataset snapshot from the tabular
// source files.
package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Abhilekh0724/hoops-stats-service/internal/config"
	"github.com/Abhilekh0724/hoops-stats-service/internal/domain"
	"github.com/Abhilekh0724/hoops-stats-service/internal/domain/teams"
	"github.com/Abhilekh0724/hoops-stats-service/internal/logging"
	"github.com/Abhilekh0724/hoops-stats-service/internal/metrics"
)

// Dataset names used in logs and metrics.
const (
	datasetPlayers    = "players"
	datasetGames      = "games"
	datasetFranchises = "franchises"
)

// Loader reads the three source tables and assembles a snapshot. Safe to run
// again for reloads; each run produces a fresh snapshot with its own load ID.
type Loader struct {
	cfg     config.DatasetsConfig
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// New constructs a Loader.
func New(cfg config.DatasetsConfig, logger *slog.Logger, recorder *metrics.Recorder) *Loader {
	return &Loader{
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Load parses all three datasets and returns the assembled snapshot. Any
// dataset failing to load fails the whole snapshot; a previously loaded
// snapshot stays in service in that case.
func (l *Loader) Load(ctx context.Context) (*domain.Snapshot, error) {
	playerRows, err := loadDataset(l, ctx, datasetPlayers, l.cfg.PlayersPath, parsePlayers)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}

	gameRows, err := loadDataset(l, ctx, datasetGames, l.cfg.GamesPath, func(r io.Reader) ([]teams.TeamGame, error) {
		return parseTeamGames(r, l.cfg.League)
	})
	if err != nil {
		return nil, fmt.Errorf("load games: %w", err)
	}

	franchiseRows, err := loadDataset(l, ctx, datasetFranchises, l.cfg.FranchisesPath, parseFranchises)
	if err != nil {
		return nil, fmt.Errorf("load franchises: %w", err)
	}

	snap := domain.NewSnapshot(uuid.NewString(), l.now(), playerRows, gameRows, franchiseRows)
	logging.Info(l.logger, "snapshot loaded",
		slog.String(logging.FieldLoadID, snap.LoadID()),
		slog.Int("players", snap.PlayerCount()),
		slog.Int("games", snap.GameCount()),
		slog.Int("franchises", snap.FranchiseCount()),
	)
	return snap, nil
}

// loadDataset opens one source file, parses it, and records load metrics.
func loadDataset[T any](l *Loader, ctx context.Context, dataset, path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := l.now()
	file, err := os.Open(path)
	if err != nil {
		l.metrics.RecordDatasetLoad(dataset, 0, l.now().Sub(start), err)
		return nil, err
	}
	defer file.Close()

	rows, err := parse(file)
	duration := l.now().Sub(start)
	l.metrics.RecordDatasetLoad(dataset, len(rows), duration, err)
	if err != nil {
		logging.Error(l.logger, "dataset load failed", err,
			slog.String(logging.FieldDataset, dataset),
			slog.String(logging.FieldPath, path),
		)
		return nil, err
	}

	logging.Info(l.logger, "dataset loaded",
		slog.String(logging.FieldDataset, dataset),
		slog.Int(logging.FieldCount, len(rows)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return rows, nil
}

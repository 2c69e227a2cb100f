package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Abhilekh0724/hoops-stats-service/internal/config"
	"github.com/Abhilekh0724/hoops-stats-service/internal/loader"
	"github.com/Abhilekh0724/hoops-stats-service/internal/metrics"
	"github.com/Abhilekh0724/hoops-stats-service/internal/store"
	"github.com/Abhilekh0724/hoops-stats-service/internal/testutil"
)

type stubServer struct {
	addr     string
	handler  http.Handler
	serveErr error

	mu       sync.Mutex
	shutdown bool
	release  chan struct{}
}

func newStubServer(addr string, handler http.Handler, serveErr error) *stubServer {
	return &stubServer{addr: addr, handler: handler, serveErr: serveErr, release: make(chan struct{})}
}

func (s *stubServer) ListenAndServe() error {
	if s.serveErr != nil {
		return s.serveErr
	}
	<-s.release
	return http.ErrServerClosed
}

func (s *stubServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.shutdown {
		s.shutdown = true
		close(s.release)
	}
	return nil
}

func (s *stubServer) Addr() string { return s.addr }

func (s *stubServer) wasShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdown
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Config{
		Port: "0",
		Datasets: config.DatasetsConfig{
			PlayersPath:    dir + "/players.csv",
			GamesPath:      dir + "/games.csv",
			FranchisesPath: dir + "/franchises.csv",
			League:         "NBA",
		},
		Metrics: config.MetricsConfig{Enabled: false},
	}
	return cfg
}

func withStubServers(t *testing.T, serveErr error) *[]*stubServer {
	t.Helper()
	created := &[]*stubServer{}
	orig := newServerFunc
	newServerFunc = func(addr string, handler http.Handler) httpServer {
		srv := newStubServer(addr, handler, serveErr)
		*created = append(*created, srv)
		return srv
	}
	t.Cleanup(func() { newServerFunc = orig })
	return created
}

func TestRunStopsOnContextCancel(t *testing.T) {
	servers := withStubServers(t, nil)
	logger, _ := testutil.NewBufferLogger()
	srv := New(testConfig(t), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, cancel) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil error on clean shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if len(*servers) != 1 {
		t.Fatalf("expected one server with metrics disabled, got %d", len(*servers))
	}
	if !(*servers)[0].wasShutdown() {
		t.Fatal("expected graceful shutdown")
	}
}

func TestRunReturnsServeError(t *testing.T) {
	withStubServers(t, errors.New("port in use"))
	logger, _ := testutil.NewBufferLogger()
	srv := New(testConfig(t), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := srv.Run(ctx, cancel)
	if err == nil {
		t.Fatal("expected serve error surfaced")
	}
}

func TestRunSurvivesMissingDatasets(t *testing.T) {
	servers := withStubServers(t, nil)
	logger, buf := testutil.NewBufferLogger()
	srv := New(testConfig(t), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, cancel) }()

	time.Sleep(50 * time.Millisecond)

	if len(*servers) == 0 {
		cancel()
		t.Fatal("server never started")
	}
	rec := httptest.NewRecorder()
	(*servers)[0].handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected degraded readiness, got %d", rec.Code)
	}

	cancel()
	<-done

	if buf.Len() == 0 {
		t.Fatal("expected load failure logged")
	}
}

func TestReloadSwapsSnapshotOnSuccess(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig(t)
	writeDatasets(t, cfg.Datasets)

	memStore := store.NewMemoryStore()
	datasets := loader.New(cfg.Datasets, logger, metrics.NewRecorder())
	srv := New(cfg, logger)

	snap, err := srv.reloadFunc(memStore, datasets)(context.Background())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	stored, ok := memStore.Snapshot()
	if !ok || stored.LoadID() != snap.LoadID() {
		t.Fatal("expected reloaded snapshot in store")
	}
}

func TestReloadKeepsOldSnapshotOnFailure(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig(t)

	memStore := store.NewMemoryStore()
	old := testutil.SampleSnapshot(nil, nil, nil)
	memStore.Replace(old)

	datasets := loader.New(cfg.Datasets, logger, metrics.NewRecorder())
	srv := New(cfg, logger)

	if _, err := srv.reloadFunc(memStore, datasets)(context.Background()); err == nil {
		t.Fatal("expected reload failure for missing files")
	}
	stored, ok := memStore.Snapshot()
	if !ok || stored.LoadID() != old.LoadID() {
		t.Fatal("expected old snapshot retained after failed reload")
	}
}

func writeDatasets(t *testing.T, cfg config.DatasetsConfig) {
	t.Helper()
	writeFile(t, cfg.PlayersPath, "player,pos,tm,pts\nAlice Example,PG,BOS,28.5\n")
	writeFile(t, cfg.GamesPath, "team_id,date_game,game_result,pts,opp_pts,elo_n,lg_id\nBOS,3/12/2015,W,102,99,1500,NBA\n")
	writeFile(t, cfg.FranchisesPath, "team,full_name,league,conference,division\nBOS,Boston Celtics,NBA,East,Atlantic\n")
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

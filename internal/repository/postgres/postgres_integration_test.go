package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/lazygod321/rustplusplus/config"
	"github.com/lazygod321/rustplusplus/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPairedMembersIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	empty, err := repo.PairedMembers(ctx, "srv-1")
	require.NoError(t, err)
	require.Empty(t, empty)

	alice, err := repo.PairMember(ctx, entities.PairedMember{ServerID: "srv-1", MemberID: "76561198000000001", Name: "Alice"})
	require.NoError(t, err)
	require.False(t, alice.PairedAt.IsZero())

	_, err = repo.PairMember(ctx, entities.PairedMember{ServerID: "srv-1", MemberID: "76561198000000002", Name: "Bob"})
	require.NoError(t, err)
	_, err = repo.PairMember(ctx, entities.PairedMember{ServerID: "srv-2", MemberID: "76561198000000001", Name: "Alice"})
	require.NoError(t, err)

	_, err = repo.PairMember(ctx, entities.PairedMember{ServerID: "srv-1", MemberID: "76561198000000001", Name: "Alice"})
	require.ErrorIs(t, err, entities.ErrAlreadyPaired)

	list, err := repo.PairedMembers(ctx, "srv-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	set := entities.NewPairedSet(list)
	require.True(t, set.Has("76561198000000001"))
	require.True(t, set.Has("76561198000000002"))

	require.NoError(t, repo.UnpairMember(ctx, "srv-1", "76561198000000002"))
	require.ErrorIs(t, repo.UnpairMember(ctx, "srv-1", "76561198000000002"), entities.ErrNotPaired)

	list, err = repo.PairedMembers(ctx, "srv-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, entities.MemberID("76561198000000001"), list[0].MemberID)
	require.Equal(t, "srv-1", list[0].ServerID)

	other, err := repo.PairedMembers(ctx, "srv-2")
	require.NoError(t, err)
	require.Len(t, other, 1)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=rustplusplus_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "rustplusplus_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}

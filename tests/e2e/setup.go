//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"donbalon/cmd/bootstrap"
	"donbalon/cmd/bootstrap/components"
	"donbalon/internal/infra/db"
	"donbalon/internal/pkg/config"
	"donbalon/internal/usecase/commands"
	"donbalon/tests/common/authtest"
	"donbalon/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "donbalon"
	pgPassword = "donbalon"
	pgPort     = "5432/tcp"

	schemaFile = "migrations/001_initial_schema.sql"
)

// One PostgreSQL container per test binary; every suite gets its own database inside it.
var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

type pgEndpoint struct {
	Host string
	Port nat.Port
}

func (e pgEndpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.Host, e.Port.Port(), database)
}

// e2eApp holds what the suites pull out of the fx graph.
type e2eApp struct {
	router *gin.Engine
	cfg    config.Config
	sweep  commands.SweepCommands
}

func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *e2eApp) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	endpoint := postgresEndpoint(t)
	dbConfig := createBookingDatabase(t, endpoint)

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, closePool, err := db.Connect(connectCtx, dbConfig)
	require.NoError(t, err, "connect to booking database")
	t.Cleanup(closePool)

	require.NoError(t, applySchema(connectCtx, pool), "apply schema")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed courts, schedules, clients and payment methods")

	built := startApp(t, pool, dbConfig)
	slog.Debug("e2e environment ready", "database", dbConfig.DBName, "host", endpoint.Host, "port", endpoint.Port.Port())
	return pool, built
}

func postgresEndpoint(t *testing.T) pgEndpoint {
	t.Helper()
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				// throwaway data, durability off
				Cmd: []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "full_page_writes=off"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return pgEndpoint{Host: host, Port: port}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"app": "donbalon", "purpose": "e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgErr, "start postgres container")

	ctx := context.Background()
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err, "resolve postgres port")
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err, "resolve postgres host")
	return pgEndpoint{Host: host, Port: port}
}

// createBookingDatabase creates a uniquely named database and drops it when the suite ends.
func createBookingDatabase(t *testing.T, endpoint pgEndpoint) config.DBConfig {
	t.Helper()
	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, endpoint.dsn("postgres"))
	require.NoError(t, err, "connect as admin")
	defer admin.Close()

	// the container may still be finishing its init scripts right after the wait strategy passes
	for attempt := range 5 {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil {
			break
		}
		slog.Warn("create database failed, retrying", "attempt", attempt+1, "error", err.Error())
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "create database %s", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, endpoint.dsn("postgres"))
		if err != nil {
			slog.Warn("drop database skipped", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     endpoint.Host,
		Port:     endpoint.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

// applySchema runs the migration file; go test starts in the package directory, so it walks up to the module root.
func applySchema(ctx context.Context, pool *pgxpool.Pool) error {
	path := schemaFile
	var (
		sql []byte
		err error
	)
	for range 4 {
		if sql, err = os.ReadFile(path); err == nil {
			break
		}
		path = filepath.Join("..", path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", schemaFile, err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute %s: %w", path, err)
	}
	return nil
}

// startApp wires the production modules around the test pool; AMQP_URL is empty, so events go to the no-op publisher.
func startApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig) *e2eApp {
	t.Helper()
	built := &e2eApp{}

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig

	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(bootstrap.NewCalendarLocation),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.EventsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&built.router, &built.cfg, &built.sweep),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err.Error())
		}
	})
	return built
}

// SharedSuite is embedded by every e2e suite: one database per suite, reset before each subtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Sweep  commands.SweepCommands
	JWT    *authtest.JWTHelper
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	pool, built := setupE2EEnvironment(t)
	s.DB = pool
	s.Router = built.router
	s.Config = built.cfg
	s.Sweep = built.sweep
	s.JWT = authtest.NewJWTHelper(built.cfg.JWT)

	require.NotNil(t, s.Router, "router not populated")
	require.NotNil(t, s.Sweep, "sweep commands not populated")
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

package testutils

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"performance-tracker-backend/internal/config"
	"performance-tracker-backend/internal/database"
	"performance-tracker-backend/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestNotifyChannel is the change-notification channel installed on the test database
const TestNotifyChannel = "perftrack_test_changes"

// truncateAll empties the tracker tables. CASCADE covers the join and child rows.
const truncateAll = `TRUNCATE TABLE ratings, task_attachments, subtasks, task_assignments, tasks, members RESTART IDENTITY CASCADE`

// postgresEnv is one Postgres container shared by every suite in the test binary
type postgresEnv struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var (
	envMu sync.Mutex
	env   *postgresEnv
)

// BaseTestSuite hands integration suites a migrated database on the shared container
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the container on first use, or again after a purge, and
// fails the test when Docker is unavailable.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()
	envMu.Lock()
	defer envMu.Unlock()
	if env == nil {
		e, err := startPostgres()
		if err != nil {
			t.Fatalf("postgres test container: %v", err)
		}
		env = e
	}
	return &BaseTestSuite{DB: env.db, Config: env.cfg}
}

// CleanupSharedContainer closes the pool and purges the container. It is safe to
// call more than once and when no container was started.
func CleanupSharedContainer() {
	envMu.Lock()
	defer envMu.Unlock()
	if env == nil {
		return
	}
	log := logger.WithComponent("testutils")
	if sqlDB, err := env.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := env.pool.Purge(env.resource); err != nil {
		log.WithError(err).Warn("Could not purge postgres container")
	} else {
		log.WithField("container", env.resource.Container.Name).Info("Purged postgres container")
	}
	env = nil
}

// RunWithContainer runs m and purges the shared container afterwards, also when
// the run is interrupted. TestMain hands the result to os.Exit.
func RunWithContainer(m *testing.M) int {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		<-sig
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	return code
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	if err := s.DB.Exec(truncateAll).Error; err != nil {
		logger.WithComponent("testutils").WithError(err).Warn("Truncate failed")
	}
}

func startPostgres() (*postgresEnv, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=perftrack",
			"POSTGRES_PASSWORD=perftrack",
			"POSTGRES_DB=perftrack_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://perftrack:perftrack@%s/perftrack_test?sslmode=disable", resource.GetHostPort("5432/tcp"))

	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)
		return conn.Ping(ctx)
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{
		LogLevel:      gormlogger.Silent,
		NotifyChannel: TestNotifyChannel,
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("migrate test database: %w", err)
	}

	return &postgresEnv{
		pool:     pool,
		resource: resource,
		db:       db,
		cfg: &config.Config{
			DatabaseURL:        dsn,
			Port:               "8080",
			LogLevel:           "debug",
			Environment:        "test",
			NotifyChannel:      TestNotifyChannel,
			NotifyReconnectSec: 1,
			RecentRatingsLimit: 5,
		},
	}, nil
}

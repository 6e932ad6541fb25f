package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"church-planning-backend/internal/config"
	"church-planning-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

const (
	pgUser     = "planning"
	pgPassword = "planning"
	pgDatabase = "planning_test"
)

// one Postgres container serves every suite of a test binary
var (
	containerOnce sync.Once
	containerErr  error
	pool          *dockertest.Pool
	resource      *dockertest.Resource
	sharedDB      *gorm.DB
	sharedConfig  *config.Config
)

// tables in dependency order, truncated between tests
var truncatedTables = []string{
	"plannings",
	"event_departments",
	"events",
	"user_departments",
	"user_church_roles",
	"users",
	"members",
	"departments",
	"ministries",
	"churches",
}

// BaseTestSuite gives a suite access to the migrated shared database
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use and returns a handle to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	containerOnce.Do(func() { containerErr = startPostgres() })
	if containerErr != nil {
		t.Fatalf("failed to start test database: %v", containerErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// SetupTest empties the tables before a test
func (s *BaseTestSuite) SetupTest() { s.truncate() }

// TearDownTest empties the tables after a test
func (s *BaseTestSuite) TearDownTest() { s.truncate() }

// TeardownTestSuite empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.truncate() }

func (s *BaseTestSuite) truncate() {
	if s.DB == nil {
		return
	}
	migrator := s.DB.Migrator()
	for _, table := range truncatedTables {
		if migrator.HasTable(table) {
			s.DB.Exec(`TRUNCATE TABLE "` + table + `" RESTART IDENTITY CASCADE`)
		}
	}
}

// CleanupSharedContainer closes the pool and purges the container. Called from TestMain.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if pool != nil && resource != nil {
		if err := pool.Purge(resource); err != nil {
			log.Printf("WARN: could not purge test database container: %v", err)
		}
		pool, resource = nil, nil
	}
}

func startPostgres() error {
	var err error
	pool, err = dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, err = pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		// Initialize runs the migrations
		db, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		sharedDB = db
		return nil
	}); err != nil {
		return fmt.Errorf("postgres did not become ready: %w", err)
	}

	sharedConfig = &config.Config{
		DatabaseURL: dsn,
		Port:        "8080",
		LogLevel:    "debug",
		Environment: "test",
		JWTSecret:   "test-secret",
		JWTTTLHours: 1,
	}
	log.Printf("test database ready on port %s", port)
	return nil
}

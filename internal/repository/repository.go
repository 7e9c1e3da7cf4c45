// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"

	"daylog/internal/config"
	"daylog/internal/db/migrations"
	"daylog/internal/logging"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
)

// Repository provides access to the SQLite data store. All per-user queries
// are built through Builder so the owner filter is applied in one place.
type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

// NewRepository opens the SQLite database and prepares the query builder.
func NewRepository(cfg *config.Config) (*Repository, error) {
	db, err := sql.Open("sqlite3", cfg.Database.Path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", cfg.Database.Path, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database at %s: %w", cfg.Database.Path, err)
	}

	return &Repository{
		DB:      db,
		Cache:   cache.New(cache.NoExpiration, 0),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the underlying database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// EnsureSchemaBootstrapped applies all pending migrations on startup.
func (s *Repository) EnsureSchemaBootstrapped() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	version, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return err
	}
	logging.Log.Infof("Database schema at version %d", version)
	return nil
}

// MigrateUp migrates the database to the most recent version.
func (s *Repository) MigrateUp() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(s.DB, ".")
}

// MigrateDown rolls the database back by one version.
func (s *Repository) MigrateDown() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Down(s.DB, ".")
}

// MigrationStatus prints the migration status for the current database.
func (s *Repository) MigrationStatus() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Status(s.DB, ".")
}

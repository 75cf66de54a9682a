package database

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Migration is one versioned schema change, read from a pair of
// NNN_name.up.sql / NNN_name.down.sql files.
type Migration struct {
	Version  string
	Title    string
	UpSQL    string
	DownSQL  string
	Checksum string // SHA256 of UpSQL
}

// MigrationExecutor applies pending migrations and guards applied ones
// against later edits via their recorded checksums.
type MigrationExecutor struct {
	db *sql.DB
}

// NewMigrationExecutor creates a new migration executor
func NewMigrationExecutor(db *sql.DB) *MigrationExecutor {
	return &MigrationExecutor{db: db}
}

// RunMigrations applies all pending migrations from the given directory
// in version order
func (m *MigrationExecutor) RunMigrations(migrationsPath string) error {
	if err := m.createTrackingTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrations, err := loadMigrations(migrationsPath)
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	applied, err := m.appliedChecksums()
	if err != nil {
		return fmt.Errorf("failed to load applied migrations: %w", err)
	}

	for _, migration := range migrations {
		checksum, done := applied[migration.Version]
		if done {
			if checksum != migration.Checksum {
				return fmt.Errorf(
					"applied migration %s (%s) has been modified on disk; restore the original file or add a new migration",
					migration.Version, migration.Title,
				)
			}
			continue
		}

		if err := m.apply(migration); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", migration.Version, err)
		}
		slog.Info("Applied migration", "version", migration.Version, "title", migration.Title)
	}

	return nil
}

func (m *MigrationExecutor) createTrackingTable() error {
	_, err := m.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			title TEXT,
			checksum TEXT,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// appliedChecksums returns version -> up-SQL checksum for every recorded
// migration
func (m *MigrationExecutor) appliedChecksums() (map[string]string, error) {
	rows, err := m.db.Query(`SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]string)
	for rows.Next() {
		var version, checksum string
		if err := rows.Scan(&version, &checksum); err != nil {
			return nil, err
		}
		applied[version] = checksum
	}
	return applied, rows.Err()
}

// apply runs one migration and records it in the same transaction
func (m *MigrationExecutor) apply(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("Failed to rollback migration transaction", "error", err)
		}
	}()

	if _, err := tx.Exec(migration.UpSQL); err != nil {
		return fmt.Errorf("migration SQL failed: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO schema_migrations (version, title, checksum) VALUES (?, ?, ?)`,
		migration.Version, migration.Title, migration.Checksum,
	)
	if err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}

// loadMigrations reads the NNN_name.{up,down}.sql pairs of a directory,
// sorted by version. Files without an up part are skipped.
func loadMigrations(dir string) ([]Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	byVersion := make(map[string]*Migration)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		isUp := strings.HasSuffix(name, ".up.sql")
		isDown := strings.HasSuffix(name, ".down.sql")
		if !isUp && !isDown {
			continue
		}

		version, rest, ok := strings.Cut(name, "_")
		if !ok {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		migration := byVersion[version]
		if migration == nil {
			title := strings.TrimSuffix(strings.TrimSuffix(rest, ".up.sql"), ".down.sql")
			migration = &Migration{
				Version: version,
				Title:   strings.ReplaceAll(title, "_", " "),
			}
			byVersion[version] = migration
		}

		if isUp {
			migration.UpSQL = string(content)
			sum := sha256.Sum256(content)
			migration.Checksum = hex.EncodeToString(sum[:])
		} else {
			migration.DownSQL = string(content)
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, migration := range byVersion {
		if migration.UpSQL != "" {
			migrations = append(migrations, *migration)
		}
	}
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultDatabasePath is used when DATABASE_URL is empty.
const DefaultDatabasePath = "instance/portfolio.db"

// DB is the process-wide database handle.
var DB *gorm.DB

// Init opens the database described by databaseURL, migrates the schema and
// stores the handle in DB.
func Init(databaseURL string) error {
	gdb, err := Open(databaseURL, &gorm.Config{})
	if err != nil {
		return err
	}
	DB = gdb
	return nil
}

// Open connects to databaseURL and runs the automatic migrations.
// postgres:// and postgresql:// URLs use the postgres driver; anything else is
// treated as a sqlite path, with an optional sqlite:/// prefix.
func Open(databaseURL string, cfg *gorm.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(databaseURL)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, err
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates missing tables and columns. Existing rows are left alone.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&Booking{},
		&Review{},
		&Blog{},
	)
}

func dialectorFor(databaseURL string) (gorm.Dialector, error) {
	url := strings.TrimSpace(databaseURL)
	if url == "" {
		url = DefaultDatabasePath
	}

	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return postgres.Open(url), nil
	}

	path := SQLitePath(url)
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := ensureParentDir(path); err != nil {
			return nil, err
		}
	}
	return sqlite.Open(path), nil
}

// SQLitePath strips the sqlite:/// scheme used by DATABASE_URL values.
func SQLitePath(url string) string {
	switch {
	case strings.HasPrefix(url, "sqlite:///"):
		return strings.TrimPrefix(url, "sqlite:///")
	case strings.HasPrefix(url, "sqlite://"):
		return strings.TrimPrefix(url, "sqlite://")
	default:
		return url
	}
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}

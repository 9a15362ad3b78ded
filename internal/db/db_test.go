package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSQLitePath(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "three slashes", url: "sqlite:///instance/portfolio.db", want: "instance/portfolio.db"},
		{name: "two slashes", url: "sqlite://portfolio.db", want: "portfolio.db"},
		{name: "bare path", url: "data/site.db", want: "data/site.db"},
		{name: "memory", url: ":memory:", want: ":memory:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SQLitePath(tt.url); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestOpenCreatesParentDirAndTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")

	gdb, err := Open("sqlite:///"+path, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	migrator := gdb.Migrator()
	for _, model := range []interface{}{&Booking{}, &Review{}, &Blog{}} {
		if !migrator.HasTable(model) {
			t.Fatalf("expected table for %T to exist", model)
		}
	}
	if !migrator.HasIndex(&Blog{}, "idx_blogs_slug") {
		t.Fatal("expected unique index on blog slug")
	}
}

func TestBookingLevelLabel(t *testing.T) {
	if got := (Booking{Level: LevelALevel}).LevelLabel(); got != "A-Level" {
		t.Fatalf("expected A-Level, got %q", got)
	}
	if got := (Booking{Level: LevelGCSE}).LevelLabel(); got != "GCSE" {
		t.Fatalf("expected GCSE, got %q", got)
	}
}

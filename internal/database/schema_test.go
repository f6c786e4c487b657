package database

import (
	"io/fs"
	"strings"
	"testing"

	"shopbot/migrations"
)

func TestMigrationFilesExist(t *testing.T) {
	expectedMigrations := []string{
		"00001_create_products_table.sql",
		"00002_create_orders_table.sql",
	}

	for _, migration := range expectedMigrations {
		if _, err := fs.Stat(migrations.Embed, migration); err != nil {
			t.Errorf("Migration file %s is not embedded: %v", migration, err)
		}
	}
}

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	entries, err := fs.ReadDir(migrations.Embed, ".")
	if err != nil {
		t.Fatalf("Failed to read embedded migrations: %v", err)
	}

	sqlFileCount := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		sqlFileCount++
		content, err := fs.ReadFile(migrations.Embed, entry.Name())
		if err != nil {
			t.Errorf("Failed to read migration file %s: %v", entry.Name(), err)
			continue
		}

		contentStr := string(content)

		for _, directive := range []string{
			"-- +goose Up",
			"-- +goose Down",
			"-- +goose StatementBegin",
			"-- +goose StatementEnd",
		} {
			if !strings.Contains(contentStr, directive) {
				t.Errorf("Migration file %s missing %q directive", entry.Name(), directive)
			}
		}
	}

	if sqlFileCount == 0 {
		t.Error("No SQL migration files are embedded")
	}
}

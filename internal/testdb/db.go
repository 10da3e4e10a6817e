package testdb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dave-vazquez/lambda-posts/internal/platform/postgres"
	"github.com/dave-vazquez/lambda-posts/internal/redact"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"
)

// GetTestDBWithT returns a database connection for testing.
// It skips the test if no database URL is set and closes the connection
// when the test finishes.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL or POSTS_TEST_DB_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		t.Fatalf("Database ping failed for %s: %v", redact.String(dbURL), redact.Error(err))
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	return db
}

// SetupTestDatabaseSchema applies all embedded migrations to db.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	if err := postgres.Migrate(ctx, db, postgres.MigrateUp, nil); err != nil {
		t.Fatalf("Migration failed: %v", err)
	}
}

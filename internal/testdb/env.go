package testdb

import (
	"os"
	"time"
)

// TestTimeout bounds every database round trip made by the helpers.
const TestTimeout = 10 * time.Second

// databaseURLEnvVars are checked in order by GetTestDatabaseURL.
var databaseURLEnvVars = []string{"POSTS_TEST_DB_URL", "DATABASE_URL", "POSTS_DATABASE_URL"}

// IsIntegrationTestEnvironment returns true if any of the database URL environment
// variables are set, indicating that integration tests can be run.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// ShouldSkipDatabaseTest returns true if the database connection environment variables
// are not set, indicating that database integration tests should be skipped.
func ShouldSkipDatabaseTest() bool {
	return !IsIntegrationTestEnvironment()
}

// GetTestDatabaseURL returns the first non-empty database URL found in the
// environment, or "" if none is set.
func GetTestDatabaseURL() string {
	for _, name := range databaseURLEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

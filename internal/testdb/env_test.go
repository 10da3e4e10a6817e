package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTestDatabaseURL(t *testing.T) {
	t.Setenv("POSTS_TEST_DB_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTS_DATABASE_URL", "")

	assert.Empty(t, GetTestDatabaseURL())
	assert.True(t, ShouldSkipDatabaseTest())

	t.Setenv("POSTS_DATABASE_URL", "postgres://c")
	assert.Equal(t, "postgres://c", GetTestDatabaseURL())

	t.Setenv("DATABASE_URL", "postgres://b")
	assert.Equal(t, "postgres://b", GetTestDatabaseURL())

	t.Setenv("POSTS_TEST_DB_URL", "postgres://a")
	assert.Equal(t, "postgres://a", GetTestDatabaseURL())
	assert.True(t, IsIntegrationTestEnvironment())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("TEST_STR", "def"))
	assert.Equal(t, "def", GetEnv("TEST_STR_MISSING", "def"))

	t.Setenv("TEST_EMPTY", "")
	assert.Equal(t, "def", GetEnv("TEST_EMPTY", "def"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("TEST_INT", 7))

	t.Setenv("TEST_INT_BAD", "not-a-number")
	assert.Equal(t, 7, GetEnvInt("TEST_INT_BAD", 7))
	assert.Equal(t, 7, GetEnvInt("TEST_INT_MISSING", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, GetEnvBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL_BAD", "yep")
	assert.False(t, GetEnvBool("TEST_BOOL_BAD", false))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DUR", time.Minute))

	t.Setenv("TEST_DUR_BAD", "ninety")
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DUR_BAD", time.Minute))
}

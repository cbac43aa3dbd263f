package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsMergeOverwrites(t *testing.T) {
	s := Settings{"A": "old", "KEEP": "yes"}

	n := s.Merge(map[string]string{"A": "new", "B": "2"})

	assert.Equal(t, 2, n)
	assert.Equal(t, "new", s.Get("A"))
	assert.Equal(t, "2", s.Get("B"))
	assert.Equal(t, "yes", s.Get("KEEP"))
}

func TestSettingsMergeEmpty(t *testing.T) {
	s := Settings{"A": "1"}

	assert.Zero(t, s.Merge(nil))
	assert.Equal(t, Settings{"A": "1"}, s)
}

func TestLoadSeedsSecretSettings(t *testing.T) {
	t.Setenv(KeySecretName, "prod/website")
	t.Setenv(KeySecretProvider, "aws")

	cfg := Load()

	assert.Equal(t, "prod/website", cfg.Settings.Get(KeySecretName))
	assert.Equal(t, "aws", cfg.Settings.Get(KeySecretProvider))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "website", cfg.ServiceName)
	assert.Equal(t, 8080, cfg.Port)
	assert.NotNil(t, cfg.Settings)
}

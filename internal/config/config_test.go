package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	c := Resolve(Defaults())

	assert.Equal(t, "mongodb://localhost:27017/wonderland", c.MongoURI)
	assert.Equal(t, "postgres://localhost:5432/wonderland?sslmode=disable", c.PostgresURI)
	assert.Equal(t, "redis://localhost:6379/0", c.RedisURI)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "wonderland", c.Namespace)
	assert.Equal(t, []string{"http://localhost:3000"}, c.AllowedOrigins)
	assert.False(t, c.IsProduction())
	assert.False(t, c.HasCloudinary())
}

func TestResolvePriorityOrder(t *testing.T) {
	injected := StaticSource{
		Label: "injected",
		Values: map[string]string{
			"MONGODB_URI": "mongodb://host-injected:27017/app",
			"PORT":        "9090",
		},
	}
	env := StaticSource{
		Label: "env",
		Values: map[string]string{
			"MONGODB_URI":   "mongodb://from-env:27017/app",
			"APP_NAMESPACE": "tribute",
		},
	}

	c := Resolve(injected, env, Defaults())

	// Higher-priority source wins per key; unset keys fall through the chain.
	assert.Equal(t, "mongodb://host-injected:27017/app", c.MongoURI)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "tribute", c.Namespace)
	assert.Equal(t, "redis://localhost:6379/0", c.RedisURI)
}

func TestValidateMissingMinimumSubset(t *testing.T) {
	c := Resolve(StaticSource{Label: "empty", Values: map[string]string{}})

	err := c.Validate()
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Missing, "MONGODB_URI")
	assert.Contains(t, cfgErr.Missing, "APP_NAMESPACE")
}

func TestValidateWithDefaults(t *testing.T) {
	c := Resolve(Defaults())
	assert.NoError(t, c.Validate())
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"MONGODB_URI":"mongodb://file:27017/app","ENV":"production"}`), 0o600))

	fs, err := NewFileSource(path)
	require.NoError(t, err)

	c := Resolve(fs, Defaults())
	assert.Equal(t, "mongodb://file:27017/app", c.MongoURI)
	assert.True(t, c.IsProduction())
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t,
		[]string{"https://wonderland.example.com", "http://localhost:3000"},
		parseOrigins(" https://wonderland.example.com , http://localhost:3000 ,"))
}

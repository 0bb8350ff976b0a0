package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	key, value := split("PORT=8080")
	assert.Equal(t, "PORT", key)
	assert.Equal(t, "8080", value)

	// Values may themselves contain '='
	key, value = split("DSN=host=localhost user=portfolio")
	assert.Equal(t, "DSN", key)
	assert.Equal(t, "host=localhost user=portfolio", value)

	key, value = split("FLAG")
	assert.Equal(t, "FLAG", key)
	assert.Equal(t, "", value)
}

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(cfg, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(cfg, "MISSING", "8080"))
	assert.Equal(t, "8080", GetString(cfg, "EMPTY", "8080"))
	assert.Equal(t, "8080", GetString(nil, "PORT", "8080"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"TTL": "60", "BAD": "sixty"}

	assert.Equal(t, 60, GetInt(cfg, "TTL", 10))
	assert.Equal(t, 10, GetInt(cfg, "MISSING", 10))
	assert.Equal(t, 10, GetInt(cfg, "BAD", 10))
	assert.Equal(t, 10, GetInt(nil, "TTL", 10))
}

func TestGetSeconds(t *testing.T) {
	cfg := map[string]string{"TIMEOUT_SECONDS": "30", "BAD": "soon"}

	assert.Equal(t, 30*time.Second, GetSeconds(cfg, "TIMEOUT_SECONDS", 15*time.Second))
	assert.Equal(t, 15*time.Second, GetSeconds(cfg, "MISSING", 15*time.Second))
	assert.Equal(t, 15*time.Second, GetSeconds(cfg, "BAD", 15*time.Second))
}

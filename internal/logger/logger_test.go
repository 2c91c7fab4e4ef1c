package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("production", "debug").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("production", "").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("development", "loud").GetLevel())
	assert.Equal(t, "severity", zerolog.LevelFieldName)
}

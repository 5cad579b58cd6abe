package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "shakapacker", "debug")
	require.NoError(t, err)

	logger.Debug("launching webpack", "dir", "/app")

	assert.Contains(t, buf.String(), "shakapacker")
	assert.Contains(t, buf.String(), "launching webpack")
	assert.Contains(t, buf.String(), "/app")
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "shakapacker", "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "shakapacker", "loud")
	assert.Error(t, err)
}

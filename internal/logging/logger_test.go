package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(level)
		require.NoError(t, err)
		require.NotNil(t, logger)
		_ = logger.Sync() // zap.Sync on stderr can error on some platforms; not asserted here
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("not-a-level")
	assert.Error(t, err)
}

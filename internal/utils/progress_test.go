package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressBar(t *testing.T) {
	t.Run("determinate progress bar with known total", func(t *testing.T) {
		bar := NewProgressBar(100, DescExtracting)

		require.NotNil(t, bar)
		assert.Equal(t, int64(100), bar.GetMax64())
	})

	t.Run("indeterminate progress bar with unknown total", func(t *testing.T) {
		bar := NewProgressBar(-1, DescExtracting)

		require.NotNil(t, bar)
	})

	t.Run("zero total", func(t *testing.T) {
		bar := NewProgressBar(0, DescExtracting)

		require.NotNil(t, bar)
	})
}

func TestProgressBarDescriptions(t *testing.T) {
	assert.Equal(t, "Extracting", DescExtracting)
}

// FILE: utility_test.go
package locust

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input string
		want  int64
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"Warning", LevelWarning},
		{"warn", LevelWarning},
		{"error", LevelError},
		{"CRITICAL", LevelCritical},
		{"  info  ", LevelInfo},
	}

	for _, tc := range testCases {
		level, err := ParseLevel(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, level, "input %q", tc.input)
	}

	_, err := ParseLevel("trace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trace")
}

func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("something broke: %d", 7)
	assert.Equal(t, "locust: something broke: 7", err.Error())

	// Prefix is not doubled
	err = fmtErrorf("locust: already prefixed")
	assert.Equal(t, "locust: already prefixed", err.Error())
}

func TestCombineErrors(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, first, combineErrors(first, nil))
	assert.Equal(t, second, combineErrors(nil, second))

	combined := combineErrors(first, second)
	require.Error(t, combined)
	assert.Contains(t, combined.Error(), "first")
	assert.Contains(t, combined.Error(), "second")
	assert.ErrorIs(t, combined, second)
}

func TestMinLevel(t *testing.T) {
	assert.Equal(t, LevelInfo, minLevel(LevelInfo, LevelCritical))
	assert.Equal(t, LevelDebug, minLevel(LevelInfo, LevelDebug))
	assert.Equal(t, LevelError, minLevel(LevelError, LevelError))
}

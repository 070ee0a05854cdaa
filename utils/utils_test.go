package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"seconds", 59, "00:00:59"},
		{"minutes", 61, "00:01:01"},
		{"one hour", 3600, "01:00:00"},
		{"more than a day", 90000, "25:00:00"},
		{"fraction truncated", 3661.9, "01:01:01"},
		{"hundreds of hours", 3600*150 + 62, "150:01:02"},
		{"negative", -61, "-00:01:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString("b", []string{"a", "b"}))
	assert.False(t, ContainsString("c", []string{"a", "b"}))
	assert.False(t, ContainsString("a", nil))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Monday", Title("monday"))
	assert.Equal(t, "", Title(""))
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 5\n"), 0o644))

	content, err := GetConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "page_size: 5\n", string(content))

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterpreterReport(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"Python 3.11.6\n", "3.11.6"},
		{"Python 3.12.0", "3.12.0"},
		{"  Python 3.10.4  ", "3.10.4"},
	}
	for _, tt := range tests {
		got, err := ParseInterpreterReport(tt.output)
		require.NoError(t, err, "output %q", tt.output)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseInterpreterReportErrors(t *testing.T) {
	for _, output := range []string{
		"",
		"pyenv: python3: command not found",
		"Python",
	} {
		_, err := ParseInterpreterReport(output)
		require.Error(t, err, "output %q", output)
	}
}

func TestMinorSeries(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"3.11.6", "3.11"},
		{"3.11", "3.11"},
		{"3", "3"},
		{"3.12.0", "3.12"},
	}
	for _, tt := range tests {
		got, err := MinorSeries(tt.version)
		require.NoError(t, err, "version %q", tt.version)
		assert.Equal(t, tt.want, got)
	}

	_, err := MinorSeries("not-a-version")
	require.Error(t, err)
}

func TestMatchesPin(t *testing.T) {
	tests := []struct {
		detected string
		pin      string
		want     bool
	}{
		{"3.11.6", "3.11.6", true},
		{"3.11.2", "3.11.6", true},
		{"3.10.12", "3.11.6", false},
		{"3.12.1", "3.11.6", false},
		{"", "3.11.6", false},
	}
	for _, tt := range tests {
		got, err := MatchesPin(tt.detected, tt.pin)
		require.NoError(t, err, "detected %q", tt.detected)
		assert.Equal(t, tt.want, got, "detected %q pin %q", tt.detected, tt.pin)
	}
}

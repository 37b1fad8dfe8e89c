package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultContinue(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected bool
		str      string
	}{
		{"success continues", ContinueSuccess, true, "success"},
		{"skip continues", ContinueSkip, true, "skip"},
		{"stop halts", Stop, false, "stop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.Continue())
			assert.Equal(t, tt.str, tt.result.String())
		})
	}
}

func TestResultZeroValueIsSkip(t *testing.T) {
	var r Result
	assert.Equal(t, ContinueSkip, r)
	assert.True(t, r.Continue())
}

func TestResultFromBool(t *testing.T) {
	assert.Equal(t, ContinueSuccess, ResultFromBool(true))
	assert.Equal(t, Stop, ResultFromBool(false))
}

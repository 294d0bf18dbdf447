package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPIN(t *testing.T) {
	hash := HashPIN("4821")
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "4821", hash)

	assert.NoError(t, CheckPIN(hash, "4821"))
	assert.Error(t, CheckPIN(hash, "4822"))
}

func TestGeneratePIN(t *testing.T) {
	for i := 0; i < 50; i++ {
		pin := GeneratePIN()
		assert.Len(t, pin, 4)
		assert.GreaterOrEqual(t, pin, "1000")
		assert.LessOrEqual(t, pin, "9999")
	}
}

func TestGenerateUsername(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"Maya Lopez", "mayal"},
		{"maya", "maya"},
		{"  Harper   Quinn-Reyes ", "harperq"},
		{"Rosie O'Hara", "rosieo"},
		{"123", "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, GenerateUsername(tc.name), tc.name)
	}
}

func TestAlternateUsername(t *testing.T) {
	un := AlternateUsername("Maya Lopez")
	assert.True(t, len(un) >= len("mayalop"), un)
	assert.Contains(t, un, "mayalop")
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogConsistency(t *testing.T) {
	require.NotEmpty(t, CookieTypes)

	seen := make(map[string]bool)
	for _, code := range CookieTypes {
		assert.False(t, seen[code], "duplicate cookie code %q", code)
		seen[code] = true

		label, ok := Labels[code]
		assert.True(t, ok, "missing label for %q", code)
		assert.NotEmpty(t, label)

		price, ok := Prices[code]
		assert.True(t, ok, "missing price for %q", code)
		assert.Greater(t, price, 0)
	}

	assert.Len(t, Labels, len(CookieTypes))
	assert.Len(t, Prices, len(CookieTypes))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("TMint"))
	assert.True(t, Valid("C4C"))
	assert.False(t, Valid("thin mints"))
	assert.False(t, Valid(""))
}

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveViewStyleFallbackChain(t *testing.T) {
	// Visitor preference wins
	assert.Equal(t, ViewList, ResolveViewStyle("list", "card"))

	// Unknown preference falls through to the restaurant default
	assert.Equal(t, ViewCard, ResolveViewStyle("mosaic", "card"))
	assert.Equal(t, ViewCard, ResolveViewStyle("", "card"))

	// Nothing configured: hard-coded grid
	assert.Equal(t, ViewGrid, ResolveViewStyle("", ""))
	assert.Equal(t, ViewGrid, ResolveViewStyle("mosaic", "mosaic"))
}

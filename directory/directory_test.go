package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	d := Static()

	e, ok := d.Lookup("sin")
	require.True(t, ok)
	assert.Equal(t, "Singapore", e.City)

	e, ok = d.Lookup(" BKK ")
	require.True(t, ok)
	assert.Equal(t, "Bangkok", e.City)

	_, ok = d.Lookup("ZZZ")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	d := Static()

	hits := d.Search("bangkok")
	require.Len(t, hits, 2) // BKK and DMK both serve Bangkok
	assert.Equal(t, "BKK", hits[0].Code)

	hits = d.Search("Indonesia")
	assert.NotEmpty(t, hits)

	assert.Nil(t, d.Search("b"))
	assert.Nil(t, d.Search(""))
	assert.Empty(t, d.Search("atlantis"))
}

func TestAllKeepsTableOrder(t *testing.T) {
	d := Static()
	all := d.All()

	require.NotEmpty(t, all)
	assert.Equal(t, "DPS", all[0].Code)
}

package parish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_FourteenParishes(t *testing.T) {
	require.Len(t, All, 14)

	seenIDs := make(map[int]bool)
	seenNames := make(map[string]bool)
	seenPrefixes := make(map[string]bool)

	for i, p := range All {
		assert.Equal(t, i+1, p.ID, "IDs must be 1-14 in order")
		assert.NotEmpty(t, p.Name)
		assert.Len(t, p.Prefix, 3)

		assert.False(t, seenIDs[p.ID], "duplicate ID %d", p.ID)
		assert.False(t, seenNames[p.Name], "duplicate name %s", p.Name)
		assert.False(t, seenPrefixes[p.Prefix], "duplicate prefix %s", p.Prefix)
		seenIDs[p.ID] = true
		seenNames[p.Name] = true
		seenPrefixes[p.Prefix] = true
	}
}

func TestByName(t *testing.T) {
	p, ok := ByName("Kingston")
	require.True(t, ok)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "KIN", p.Prefix)

	_, ok = ByName("kingston")
	assert.False(t, ok, "lookup is exact-match")

	_, ok = ByName("Nowhere")
	assert.False(t, ok)
}

func TestByPrefix(t *testing.T) {
	p, ok := ByPrefix("STC")
	require.True(t, ok)
	assert.Equal(t, "St. Catherine", p.Name)
	assert.Equal(t, 14, p.ID)

	_, ok = ByPrefix("XXX")
	assert.False(t, ok)
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "KIN001", FormatCode("KIN", 1))
	assert.Equal(t, "KIN007", FormatCode("KIN", 7))
	assert.Equal(t, "STC042", FormatCode("STC", 42))
	assert.Equal(t, "MAN120", FormatCode("MAN", 120))
}

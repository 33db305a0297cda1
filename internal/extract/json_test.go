package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstJSONArray_PureJSON(t *testing.T) {
	in := `[{"name":"Alpha School","parish":"Kingston"}]`
	out, ok := FirstJSONArray(in)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestFirstJSONArray_EmbeddedInProse(t *testing.T) {
	in := `Here are the stations I found:

[{"name":"Alpha School"},{"name":"Beta Hall"}]

Let me know if you need more detail.`
	out, ok := FirstJSONArray(in)
	require.True(t, ok)
	assert.Equal(t, `[{"name":"Alpha School"},{"name":"Beta Hall"}]`, out)
}

func TestFirstJSONArray_MarkdownFence(t *testing.T) {
	in := "```json\n[{\"name\":\"Alpha School\"}]\n```"
	out, ok := FirstJSONArray(in)
	require.True(t, ok)
	assert.Equal(t, `[{"name":"Alpha School"}]`, out)
}

func TestFirstJSONArray_BareFence(t *testing.T) {
	in := "```\n[1, 2, 3]\n```"
	out, ok := FirstJSONArray(in)
	require.True(t, ok)
	assert.Equal(t, `[1, 2, 3]`, out)
}

func TestFirstJSONArray_NoArray(t *testing.T) {
	_, ok := FirstJSONArray("I could not find any polling stations in this document.")
	assert.False(t, ok)
}

func TestFirstJSONArray_UnbalancedBrackets(t *testing.T) {
	_, ok := FirstJSONArray(`[{"name":"Alpha School"`)
	assert.False(t, ok)
}

func TestFirstJSONArray_BracketsInsideStrings(t *testing.T) {
	in := `[{"name":"Hall [Annex]","address":"Lot ] 5"}] trailing ]`
	out, ok := FirstJSONArray(in)
	require.True(t, ok)
	assert.Equal(t, `[{"name":"Hall [Annex]","address":"Lot ] 5"}]`, out)
}

func TestFirstJSONArray_EscapedQuoteInString(t *testing.T) {
	in := `noise [ {"name":"St. \"Mary\" Hall"} ] more noise`
	out, ok := FirstJSONArray(in)
	require.True(t, ok)
	assert.Equal(t, `[ {"name":"St. \"Mary\" Hall"} ]`, out)
}

func TestFirstJSONArray_NestedArrays(t *testing.T) {
	in := `prose [ [1,2], [3,4] ] after`
	out, ok := FirstJSONArray(in)
	require.True(t, ok)
	assert.Equal(t, `[ [1,2], [3,4] ]`, out)
}

func TestFirstJSONArray_Empty(t *testing.T) {
	out, ok := FirstJSONArray("result: []")
	require.True(t, ok)
	assert.Equal(t, "[]", out)
}

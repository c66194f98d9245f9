package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPress(t *testing.T) {
	c, store := newControls(t)

	ok, err := c.Press('w', false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 6, c.Params.Winding)

	_, err = c.Press('P', true)
	require.NoError(t, err)
	assert.Equal(t, 200, c.Params.Points)

	_, err = c.Press('E', true)
	require.NoError(t, err)
	assert.True(t, c.Params.FlattenEnds)

	ok, err = c.Press('Q', false)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.Press('C', false)
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultName}, store.Names())

	_, err = c.Press('x', false)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Params.Winding)
}

func TestRepeats(t *testing.T) {
	for _, k := range "RFWSIKVBPLNMrw" {
		assert.True(t, Repeats(k), string(k))
	}
	for _, k := range "CXEDUcxQ" {
		assert.False(t, Repeats(k), string(k))
	}
}

func TestHelp(t *testing.T) {
	h := Help()
	assert.Contains(t, h, "R / F  radius")
	assert.Contains(t, h, "U      toggle live_update")
	assert.Contains(t, h, "C      create")
}

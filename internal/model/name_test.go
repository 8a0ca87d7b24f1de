package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	n, err := NewName("Laura")
	require.NoError(t, err)
	assert.Equal(t, "Laura", n.Value())

	// Whitespace-only is still non-empty; only "" is rejected.
	_, err = NewName(" ")
	require.NoError(t, err)

	_, err = NewName("")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestNameOptional(t *testing.T) {
	absent, err := NewNameOptional(nil)
	require.NoError(t, err)
	assert.False(t, absent.Present())

	raw := "laura@bookform.test"
	present, err := NewNameOptional(&raw)
	require.NoError(t, err)
	assert.True(t, present.Present())
	assert.Equal(t, raw, present.Value())

	empty := ""
	_, err = NewNameOptional(&empty)
	require.Error(t, err)
}

func TestParseBool(t *testing.T) {
	for raw, want := range map[string]bool{"true": true, "1": true, "false": false, "0": false} {
		b, err := ParseBool(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, b.Value())
	}

	_, err := ParseBool("yes")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

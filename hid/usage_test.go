package hid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	assert.Equal(t, "A", KeyA.String())
	assert.Equal(t, "Z", KeyZ.String())
	assert.Equal(t, "N1", Key1.String())
	assert.Equal(t, "N0", Key0.String())
	assert.Equal(t, "BSPC", Backspace.String())
	assert.Equal(t, "LSHFT", LeftShift.String())
	assert.Equal(t, "0xA5", Usage(0xA5).String())
}

func TestParse(t *testing.T) {
	for _, u := range []Usage{KeyA, KeyQ, Key5, Key0, Space, Period, RightAlt, F12, PageDown} {
		got, err := Parse(u.String())
		require.NoError(t, err, u.String())
		assert.Equal(t, u, got)
	}

	got, err := Parse(" bspc ")
	require.NoError(t, err)
	assert.Equal(t, Backspace, got)

	got, err = Parse("semicolon")
	require.NoError(t, err)
	assert.Equal(t, Semicolon, got)

	_, err = Parse("hyper")
	assert.ErrorContains(t, err, "hyper")
}

func TestIsModifier(t *testing.T) {
	assert.True(t, LeftCtrl.IsModifier())
	assert.True(t, RightGUI.IsModifier())
	assert.True(t, LeftShift.IsModifier())
	assert.False(t, Space.IsModifier())
	assert.False(t, KeyA.IsModifier())
}

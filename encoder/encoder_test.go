package encoder

import (
	"errors"
	"testing"

	"github.com/goCycleKeys/hid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_LettersAreLinearFromA(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		in, err := Encode(r)
		require.NoError(t, err)
		assert.Equal(t, hid.KeyA+hid.Usage(r-'a'), in.Base)
		assert.False(t, in.HasModifier())
	}
	in, _ := Encode('z')
	assert.Equal(t, hid.KeyZ, in.Base)
}

func TestEncode_DigitsZeroIsLast(t *testing.T) {
	one, _ := Encode('1')
	nine, _ := Encode('9')
	zero, _ := Encode('0')
	assert.Equal(t, Tap(hid.Key1), one)
	assert.Equal(t, Tap(hid.Key9), nine)
	assert.Equal(t, Tap(hid.Key0), zero)
}

func TestEncode_LayoutConstants(t *testing.T) {
	tests := []struct {
		char rune
		want Instruction
	}{
		{'.', Tap(hid.Period)},
		{',', Tap(hid.Comma)},
		{'!', Modified(hid.LeftShift, hid.Key1)},
		{'?', Modified(hid.LeftShift, hid.Minus)},
		{':', Modified(hid.LeftShift, hid.Semicolon)},
		{'+', Modified(hid.LeftShift, hid.Slash)},
		{'@', Modified(hid.RightAlt, hid.Key2)},
		{'\'', Tap(hid.Backslash)},
		{'å', Tap(hid.LeftBracket)},
		{'ä', Tap(hid.Apostrophe)},
		{'ö', Tap(hid.Semicolon)},
	}
	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			got, err := Encode(tt.char)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_Unmappable(t *testing.T) {
	for _, r := range []rune{'_', 'A', '#', '€'} {
		_, err := Encode(r)
		assert.True(t, errors.Is(err, ErrUnmappable), "char %q", r)
	}
}

func TestEncodeString_SkipsAndContinues(t *testing.T) {
	out, skipped := EncodeString(":raised_hands:")

	require.Len(t, skipped, 1)
	assert.Equal(t, '_', skipped[0].Char)
	assert.Equal(t, 7, skipped[0].Offset)
	assert.Len(t, out, 13)
	assert.Equal(t, Modified(hid.LeftShift, hid.Semicolon), out[0])
	assert.Equal(t, Modified(hid.LeftShift, hid.Semicolon), out[12])
}

func TestEncodeString_MultiByte(t *testing.T) {
	out, skipped := EncodeString("gå")
	assert.Empty(t, skipped)
	assert.Equal(t, []Instruction{Tap(hid.KeyG), Tap(hid.LeftBracket)}, out)

	// a + combining ring above composes to å
	out, skipped = EncodeString("ga\u030a")
	assert.Empty(t, skipped)
	assert.Equal(t, []Instruction{Tap(hid.KeyG), Tap(hid.LeftBracket)}, out)
}

func TestEncodeString_MalformedBytes(t *testing.T) {
	out, skipped := EncodeString("a\xffb")
	require.Len(t, skipped, 1)
	assert.Equal(t, 1, skipped[0].Offset)
	assert.Equal(t, []Instruction{Tap(hid.KeyA), Tap(hid.KeyB)}, out)
}

func TestTypedLen(t *testing.T) {
	assert.Equal(t, 2, TypedLen("is"))
	assert.Equal(t, 2, TypedLen("gå"))
	assert.Equal(t, 4, TypedLen("i'll"))
	assert.Equal(t, 13, TypedLen(":raised_hands:"))
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"thequickbrownfoxjumpsoverthelazydog",
		"don't",
		"varför",
		"joakim@joakimekstrom.se",
		":+1:",
		"what?!",
		"3,14",
	} {
		out, skipped := EncodeString(s)
		require.Empty(t, skipped, s)

		r := NewRenderer()
		for _, in := range out {
			if in.HasModifier() {
				r.Apply(in.Modifier, true)
			}
			r.Apply(in.Base, true)
			r.Apply(in.Base, false)
			if in.HasModifier() {
				r.Apply(in.Modifier, false)
			}
		}
		assert.Equal(t, s, r.String())
		assert.Zero(t, r.Unknown)
	}
}

func TestRenderer_Backspace(t *testing.T) {
	r := NewRenderer()
	for _, u := range []hid.Usage{hid.KeyI, hid.KeyS, hid.Space, hid.Backspace, hid.Backspace, hid.Backspace, hid.Backspace} {
		r.Apply(u, true)
		r.Apply(u, false)
	}
	assert.Equal(t, "", r.String())
}

func TestRenderer_ShiftedLetter(t *testing.T) {
	r := NewRenderer()
	r.Apply(hid.RightShift, true)
	r.Apply(hid.KeyQ, true)
	r.Apply(hid.RightShift, false)
	r.Apply(hid.KeyQ, true)
	assert.Equal(t, "Qq", r.String())
}

// Package encoder turns text into the keystrokes that type it on the
// built-in Swedish layout.
package encoder

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/goCycleKeys/hid"
	"golang.org/x/text/unicode/norm"
)

// ErrUnmappable is returned for characters the layout table cannot produce.
var ErrUnmappable = errors.New("unmappable character")

// Instruction is one keystroke to emit: a tap of Base, bracketed by a press
// and release of Modifier when Modifier is not hid.None.
type Instruction struct {
	Modifier hid.Usage
	Base     hid.Usage
}

// Tap returns an unmodified instruction.
func Tap(base hid.Usage) Instruction {
	return Instruction{Base: base}
}

// Modified returns an instruction that holds mod around base.
func Modified(mod, base hid.Usage) Instruction {
	return Instruction{Modifier: mod, Base: base}
}

// HasModifier reports whether the instruction needs a modifier bracket.
func (in Instruction) HasModifier() bool {
	return in.Modifier != hid.None
}

func (in Instruction) String() string {
	if in.HasModifier() {
		return in.Modifier.String() + "(" + in.Base.String() + ")"
	}
	return in.Base.String()
}

// Unmappable records a character that was skipped while encoding a string.
type Unmappable struct {
	Offset int
	Char   rune
}

func (u Unmappable) Error() string {
	return fmt.Sprintf("%v %q at byte %d", ErrUnmappable, u.Char, u.Offset)
}

func (u Unmappable) Unwrap() error {
	return ErrUnmappable
}

// Encode returns the instruction for a single character.
func Encode(r rune) (Instruction, error) {
	switch {
	case r >= 'a' && r <= 'z':
		return Tap(hid.KeyA + hid.Usage(r-'a')), nil
	case r >= '1' && r <= '9':
		return Tap(hid.Key1 + hid.Usage(r-'1')), nil
	case r == '0':
		return Tap(hid.Key0), nil
	}
	if in, ok := layout[r]; ok {
		return in, nil
	}
	return Instruction{}, Unmappable{Char: r}
}

// EncodeString encodes s in order. Characters that cannot be mapped are
// skipped and reported in the second return value; the rest of the string
// is still encoded.
func EncodeString(s string) ([]Instruction, []Unmappable) {
	s = norm.NFC.String(s)
	out := make([]Instruction, 0, len(s))
	var skipped []Unmappable
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		in, err := Encode(r)
		if err != nil {
			skipped = append(skipped, Unmappable{Offset: i, Char: r})
		} else {
			out = append(out, in)
		}
		i += size
	}
	return out, skipped
}

// TypedLen returns how many characters typing s actually produces. Skipped
// characters are not counted, so this is the number of backspaces that
// removes the output again.
func TypedLen(s string) int {
	out, _ := EncodeString(s)
	return len(out)
}

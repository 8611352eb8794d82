package encoder

import "github.com/goCycleKeys/hid"

// layout holds every character outside a-z and 0-9 that the Swedish layout
// can produce. The base keys are the physical positions on that layout, not
// the US legends.
var layout = map[rune]Instruction{
	' ': Tap(hid.Space),
	'.': Tap(hid.Period),
	',': Tap(hid.Comma),

	'!': Modified(hid.LeftShift, hid.Key1),
	'?': Modified(hid.LeftShift, hid.Minus),
	':': Modified(hid.LeftShift, hid.Semicolon),
	'+': Modified(hid.LeftShift, hid.Slash),
	'@': Modified(hid.RightAlt, hid.Key2),

	// Apostrophe sits unshifted on the backslash position.
	'\'': Tap(hid.Backslash),

	'å': Tap(hid.LeftBracket),
	'ä': Tap(hid.Apostrophe),
	'ö': Tap(hid.Semicolon),
}

// reverse maps an instruction back to the character it types.
var reverse map[Instruction]rune

func init() {
	reverse = make(map[Instruction]rune, len(layout)+36)
	for r, in := range layout {
		reverse[in] = r
	}
	for r := 'a'; r <= 'z'; r++ {
		in, _ := Encode(r)
		reverse[in] = r
	}
	for r := '0'; r <= '9'; r++ {
		in, _ := Encode(r)
		reverse[in] = r
	}
}

// Decode returns the character an instruction types, if the layout knows it.
func Decode(in Instruction) (rune, bool) {
	if in.Modifier == hid.RightShift {
		in.Modifier = hid.LeftShift
	}
	r, ok := reverse[in]
	return r, ok
}

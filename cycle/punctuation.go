package cycle

import (
	"github.com/goCycleKeys/encoder"
	"github.com/goCycleKeys/hid"
)

// PunctKind says how a collapsed punctuation key is retyped.
type PunctKind int

const (
	NotPunct PunctKind = iota
	// Plain retypes the base key as is.
	Plain
	// Shifted retypes the base key inside a shift bracket.
	Shifted
	// AltBase retypes the base key inside an AltGr bracket.
	AltBase
	// Attached retypes the base key with no separator after it.
	Attached
)

// Punct is the classification of one incoming key.
type Punct struct {
	Kind PunctKind
	Base hid.Usage
}

// Instruction returns what to emit for p.
func (p Punct) Instruction() encoder.Instruction {
	switch p.Kind {
	case Shifted:
		return encoder.Modified(hid.LeftShift, p.Base)
	case AltBase:
		return encoder.Modified(hid.RightAlt, p.Base)
	}
	return encoder.Tap(p.Base)
}

// Separator reports whether a separator follows the retyped key.
func (p Punct) Separator() bool {
	return p.Kind != Attached
}

// punctuation classifies unmodified key presses.
var punctuation = map[hid.Usage]Punct{
	hid.Period:    {Plain, hid.Period},
	hid.Comma:     {Plain, hid.Comma},
	hid.Semicolon: {Plain, hid.Semicolon},
	hid.Key1:      {Shifted, hid.Key1},      // !
	hid.Minus:     {Shifted, hid.Minus},     // ?
	hid.Slash:     {Shifted, hid.Slash},     // +
	hid.Backslash: {Attached, hid.Backslash}, // '
}

// shiftedPunctuation classifies presses made while shift is held.
var shiftedPunctuation = map[hid.Usage]Punct{
	hid.Semicolon: {Shifted, hid.Semicolon}, // :
}

// Classify returns how u is collapsed, given whether shift is held.
func Classify(u hid.Usage, shift bool) Punct {
	if shift {
		if p, ok := shiftedPunctuation[u]; ok {
			return p
		}
	}
	if p, ok := punctuation[u]; ok {
		return p
	}
	return Punct{}
}

// Package hid holds the USB HID keyboard usage IDs the engine works in.
package hid

import (
	"fmt"
	"strings"
)

// Usage is a HID keyboard/keypad page usage ID.
type Usage uint16

// Keyboard usages (HID Usage Tables, page 0x07)
const (
	None Usage = 0x00

	KeyA Usage = 0x04
	KeyB Usage = 0x05
	KeyC Usage = 0x06
	KeyD Usage = 0x07
	KeyE Usage = 0x08
	KeyF Usage = 0x09
	KeyG Usage = 0x0A
	KeyH Usage = 0x0B
	KeyI Usage = 0x0C
	KeyJ Usage = 0x0D
	KeyK Usage = 0x0E
	KeyL Usage = 0x0F
	KeyM Usage = 0x10
	KeyN Usage = 0x11
	KeyO Usage = 0x12
	KeyP Usage = 0x13
	KeyQ Usage = 0x14
	KeyR Usage = 0x15
	KeyS Usage = 0x16
	KeyT Usage = 0x17
	KeyU Usage = 0x18
	KeyV Usage = 0x19
	KeyW Usage = 0x1A
	KeyX Usage = 0x1B
	KeyY Usage = 0x1C
	KeyZ Usage = 0x1D

	Key1 Usage = 0x1E
	Key2 Usage = 0x1F
	Key3 Usage = 0x20
	Key4 Usage = 0x21
	Key5 Usage = 0x22
	Key6 Usage = 0x23
	Key7 Usage = 0x24
	Key8 Usage = 0x25
	Key9 Usage = 0x26
	Key0 Usage = 0x27

	Enter        Usage = 0x28
	Escape       Usage = 0x29
	Backspace    Usage = 0x2A
	Tab          Usage = 0x2B
	Space        Usage = 0x2C
	Minus        Usage = 0x2D
	Equal        Usage = 0x2E
	LeftBracket  Usage = 0x2F
	RightBracket Usage = 0x30
	Backslash    Usage = 0x31
	NonUSHash    Usage = 0x32
	Semicolon    Usage = 0x33
	Apostrophe   Usage = 0x34
	Grave        Usage = 0x35
	Comma        Usage = 0x36
	Period       Usage = 0x37
	Slash        Usage = 0x38
	CapsLock     Usage = 0x39

	F1  Usage = 0x3A
	F2  Usage = 0x3B
	F3  Usage = 0x3C
	F4  Usage = 0x3D
	F5  Usage = 0x3E
	F6  Usage = 0x3F
	F7  Usage = 0x40
	F8  Usage = 0x41
	F9  Usage = 0x42
	F10 Usage = 0x43
	F11 Usage = 0x44
	F12 Usage = 0x45

	Insert   Usage = 0x49
	Home     Usage = 0x4A
	PageUp   Usage = 0x4B
	Delete   Usage = 0x4C
	End      Usage = 0x4D
	PageDown Usage = 0x4E
	Right    Usage = 0x4F
	Left     Usage = 0x50
	Down     Usage = 0x51
	Up       Usage = 0x52

	NonUSBackslash Usage = 0x64

	LeftCtrl   Usage = 0xE0
	LeftShift  Usage = 0xE1
	LeftAlt    Usage = 0xE2
	LeftGUI    Usage = 0xE3
	RightCtrl  Usage = 0xE4
	RightShift Usage = 0xE5
	RightAlt   Usage = 0xE6
	RightGUI   Usage = 0xE7
)

var names = map[Usage]string{
	Enter: "ENTER", Escape: "ESC", Backspace: "BSPC", Tab: "TAB", Space: "SPACE",
	Minus: "MINUS", Equal: "EQUAL", LeftBracket: "LBKT", RightBracket: "RBKT",
	Backslash: "BSLH", NonUSHash: "NUHS", Semicolon: "SEMI", Apostrophe: "SQT",
	Grave: "GRAVE", Comma: "COMMA", Period: "DOT", Slash: "FSLH", CapsLock: "CAPS",
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	Insert: "INS", Home: "HOME", PageUp: "PG_UP", Delete: "DEL", End: "END", PageDown: "PG_DN",
	Right: "RIGHT", Left: "LEFT", Down: "DOWN", Up: "UP",
	NonUSBackslash: "NUBS",
	LeftCtrl: "LCTRL", LeftShift: "LSHFT", LeftAlt: "LALT", LeftGUI: "LGUI",
	RightCtrl: "RCTRL", RightShift: "RSHFT", RightAlt: "RALT", RightGUI: "RGUI",
}

var byName map[string]Usage

func init() {
	byName = make(map[string]Usage, len(names)+36)
	for u, n := range names {
		byName[n] = u
	}
	for u := KeyA; u <= KeyZ; u++ {
		byName[u.String()] = u
	}
	for u := Key1; u <= Key0; u++ {
		byName[u.String()] = u
	}
	// ZMK aliases
	byName["BACKSPACE"] = Backspace
	byName["SPC"] = Space
	byName["RET"] = Enter
	byName["LSHIFT"] = LeftShift
	byName["RSHIFT"] = RightShift
	byName["PERIOD"] = Period
	byName["SEMICOLON"] = Semicolon
}

// String returns the ZMK-style key name, e.g. "A", "N1", "BSPC".
func (u Usage) String() string {
	switch {
	case u >= KeyA && u <= KeyZ:
		return string(rune('A' + (u - KeyA)))
	case u >= Key1 && u <= Key9:
		return fmt.Sprintf("N%d", u-Key1+1)
	case u == Key0:
		return "N0"
	}
	if n, ok := names[u]; ok {
		return n
	}
	return fmt.Sprintf("0x%02X", uint16(u))
}

// IsModifier reports whether u is one of the eight modifier usages.
func (u Usage) IsModifier() bool {
	return u >= LeftCtrl && u <= RightGUI
}

// Parse resolves a key name as produced by String. Case is ignored.
func Parse(name string) (Usage, error) {
	if u, ok := byName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return u, nil
	}
	return None, fmt.Errorf("unknown key name %q", name)
}

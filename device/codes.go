package device

import "github.com/goCycleKeys/hid"

// Event type and key code constants from linux/input-event-codes.h
const (
	EvKey = 0x01

	KeyValueUp     = 0
	KeyValueDown   = 1
	KeyValueRepeat = 2
)

// linuxCodes maps HID usages to Linux input key codes.
var linuxCodes = map[hid.Usage]uint16{
	hid.Escape: 1,
	hid.Key1:   2, hid.Key2: 3, hid.Key3: 4, hid.Key4: 5, hid.Key5: 6,
	hid.Key6: 7, hid.Key7: 8, hid.Key8: 9, hid.Key9: 10, hid.Key0: 11,
	hid.Minus:     12,
	hid.Equal:     13,
	hid.Backspace: 14,
	hid.Tab:       15,
	hid.KeyQ:      16, hid.KeyW: 17, hid.KeyE: 18, hid.KeyR: 19, hid.KeyT: 20,
	hid.KeyY: 21, hid.KeyU: 22, hid.KeyI: 23, hid.KeyO: 24, hid.KeyP: 25,
	hid.LeftBracket:  26,
	hid.RightBracket: 27,
	hid.Enter:        28,
	hid.LeftCtrl:     29,
	hid.KeyA:         30, hid.KeyS: 31, hid.KeyD: 32, hid.KeyF: 33, hid.KeyG: 34,
	hid.KeyH: 35, hid.KeyJ: 36, hid.KeyK: 37, hid.KeyL: 38,
	hid.Semicolon:  39,
	hid.Apostrophe: 40,
	hid.Grave:      41,
	hid.LeftShift:  42,
	hid.Backslash:  43,
	hid.KeyZ:       44, hid.KeyX: 45, hid.KeyC: 46, hid.KeyV: 47, hid.KeyB: 48,
	hid.KeyN: 49, hid.KeyM: 50,
	hid.Comma:      51,
	hid.Period:     52,
	hid.Slash:      53,
	hid.RightShift: 54,
	hid.LeftAlt:    56,
	hid.Space:      57,
	hid.CapsLock:   58,
	hid.F1:         59, hid.F2: 60, hid.F3: 61, hid.F4: 62, hid.F5: 63,
	hid.F6: 64, hid.F7: 65, hid.F8: 66, hid.F9: 67, hid.F10: 68,
	hid.NonUSBackslash: 86,
	hid.F11:            87,
	hid.F12:            88,
	hid.RightCtrl:      97,
	hid.RightAlt:       100,
	hid.Home:           102,
	hid.Up:             103,
	hid.PageUp:         104,
	hid.Left:           105,
	hid.Right:          106,
	hid.End:            107,
	hid.Down:           108,
	hid.PageDown:       109,
	hid.Insert:         110,
	hid.Delete:         111,
	hid.LeftGUI:        125,
	hid.RightGUI:       126,
}

var usages map[uint16]hid.Usage

func init() {
	usages = make(map[uint16]hid.Usage, len(linuxCodes))
	for u, c := range linuxCodes {
		usages[c] = u
	}
}

// LinuxCode returns the input key code for a usage.
func LinuxCode(u hid.Usage) (uint16, bool) {
	c, ok := linuxCodes[u]
	return c, ok
}

// UsageOf returns the usage for an input key code.
func UsageOf(code uint16) (hid.Usage, bool) {
	u, ok := usages[code]
	return u, ok
}

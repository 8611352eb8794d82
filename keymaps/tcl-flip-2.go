package keymaps

import "github.com/goCycleKeys/hid"

// GetPhoneKeyMapping returns bindings for the TCL Flip 2 keypad. The keypad
// only has the number block, so words live on pairs of digit keys.
func GetPhoneKeyMapping() KeyMapping {
	type keyAddresses struct {
		Key1 hid.Usage
		Key2 hid.Usage
		Key3 hid.Usage
		Key4 hid.Usage
		Key5 hid.Usage
		Key6 hid.Usage
		Key7 hid.Usage
		Key8 hid.Usage
		Key9 hid.Usage
		Key0 hid.Usage
	}
	ka := keyAddresses{
		// Numberpad
		Key1: hid.Key1,
		Key2: hid.Key2,
		Key3: hid.Key3,
		Key4: hid.Key4,
		Key5: hid.Key5,
		Key6: hid.Key6,
		Key7: hid.Key7,
		Key8: hid.Key8,
		Key9: hid.Key9,
		Key0: hid.Key0,
	}
	return KeyMapping{Bindings: []Binding{
		{Name: "the", Combo: []hid.Usage{ka.Key8, ka.Key4}, List: 0},
		{Name: "be", Combo: []hid.Usage{ka.Key2, ka.Key3}, List: 1},
		{Name: "is", Combo: []hid.Usage{ka.Key4, ka.Key7}, List: 2},
		{Name: "and", Combo: []hid.Usage{ka.Key2, ka.Key6}, List: 5},
		{Name: "to", Combo: []hid.Usage{ka.Key8, ka.Key6}, List: 9},
		{Name: "you", Combo: []hid.Usage{ka.Key9, ka.Key6}, List: 17},
		{Name: "have", Combo: []hid.Usage{ka.Key4, ka.Key2}, List: 19},
		{Name: "do", Combo: []hid.Usage{ka.Key3, ka.Key6}, List: 25},
		{Name: "ok", Combo: []hid.Usage{ka.Key1, ka.Key0}, List: 34},
	}}
}

// RegisterPhoneKeyMapping registers phone keyboard mapping with the provider
func RegisterPhoneKeyMapping(provider *KeyMappingProvider) {
	provider.RegisterMapping(KBD_TYPE_PHONE, GetPhoneKeyMapping())
}

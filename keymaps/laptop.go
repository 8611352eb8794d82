package keymaps

import "github.com/goCycleKeys/hid"

// GetLaptopKeyMapping returns the bindings for full keyboards: two-key
// letter combos for the most frequent words of the default table.
func GetLaptopKeyMapping() KeyMapping {
	combo := func(keys ...hid.Usage) []hid.Usage { return keys }
	return KeyMapping{Bindings: []Binding{
		{Name: "the", Combo: combo(hid.KeyT, hid.KeyH), List: 0},
		{Name: "be", Combo: combo(hid.KeyB, hid.KeyE), List: 1},
		{Name: "is", Combo: combo(hid.KeyI, hid.KeyS), List: 2},
		{Name: "are", Combo: combo(hid.KeyA, hid.KeyR), List: 3},
		{Name: "was", Combo: combo(hid.KeyW, hid.KeyA), List: 4},
		{Name: "and", Combo: combo(hid.KeyA, hid.KeyN), List: 5},
		{Name: "of", Combo: combo(hid.KeyO, hid.KeyF), List: 8},
		{Name: "to", Combo: combo(hid.KeyT, hid.KeyO), List: 9},
		{Name: "you", Combo: combo(hid.KeyY, hid.KeyU), List: 17},
		{Name: "it", Combo: combo(hid.KeyI, hid.KeyT), List: 18},
		{Name: "have", Combo: combo(hid.KeyH, hid.KeyV), List: 19},
		{Name: "that", Combo: combo(hid.KeyT, hid.KeyA), List: 23},
		{Name: "for", Combo: combo(hid.KeyF, hid.KeyR), List: 24},
		{Name: "do", Combo: combo(hid.KeyD, hid.KeyO), List: 25},
	}}
}

// RegisterLaptopKeyMapping registers laptop keyboard mapping with the provider
func RegisterLaptopKeyMapping(provider *KeyMappingProvider) {
	provider.RegisterMapping(KBD_TYPE_LAPTOP, GetLaptopKeyMapping())
}

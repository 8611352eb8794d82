package keymaps

// KeyMappingProvider provides key mappings for different keyboard types
type KeyMappingProvider struct {
	mappings map[int]KeyMapping
}

// NewKeyMappingProvider creates a new, empty mapping provider
func NewKeyMappingProvider() *KeyMappingProvider {
	return &KeyMappingProvider{
		mappings: map[int]KeyMapping{},
	}
}

// GetMapping returns the key mapping for the specified keyboard type
func (p *KeyMappingProvider) GetMapping(keyboardType int) KeyMapping {
	mapping, exists := p.mappings[keyboardType]
	if !exists {
		// Default to laptop mapping if type not found
		return p.mappings[KBD_TYPE_LAPTOP]
	}
	return mapping
}

// RegisterMapping registers a new key mapping for a specific keyboard type
func (p *KeyMappingProvider) RegisterMapping(keyboardType int, mapping KeyMapping) {
	p.mappings[keyboardType] = mapping
}

// CreateDefaultKeyMappingProvider creates and returns a provider with all default mappings
func CreateDefaultKeyMappingProvider() *KeyMappingProvider {
	provider := NewKeyMappingProvider()

	RegisterPhoneKeyMapping(provider)
	RegisterLaptopKeyMapping(provider)
	provider.RegisterMapping(KBD_TYPE_EXTERNAL, GetLaptopKeyMapping())

	return provider
}

// GetKeyboardType determines the keyboard type based on device name
func GetKeyboardType(deviceName string) int {
	switch deviceName {
	case "AT Translated Set 2 keyboard":
		return KBD_TYPE_LAPTOP
	case "mtk-kpd", "matrix-keypad":
		return KBD_TYPE_PHONE
	default:
		return KBD_TYPE_EXTERNAL
	}
}

// KeyboardTypeName returns the config name of a keyboard type.
func KeyboardTypeName(keyboardType int) string {
	switch keyboardType {
	case KBD_TYPE_PHONE:
		return "phone"
	case KBD_TYPE_LAPTOP:
		return "laptop"
	default:
		return "external"
	}
}

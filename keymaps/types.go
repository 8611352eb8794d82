package keymaps

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goCycleKeys/hid"
	"github.com/goCycleKeys/wordlist"
)

// Define keyboard types
const (
	KBD_TYPE_PHONE = iota
	KBD_TYPE_LAPTOP
	KBD_TYPE_EXTERNAL
)

// Binding is one key combo tied to one cycle list. All keys of Combo held
// together trigger it.
type Binding struct {
	Name  string
	Combo []hid.Usage
	List  int
}

func (b Binding) String() string {
	keys := make([]string, len(b.Combo))
	for i, k := range b.Combo {
		keys[i] = k.String()
	}
	return fmt.Sprintf("%s [%s] -> list %d", b.Name, strings.Join(keys, "+"), b.List)
}

// KeyMapping defines the bindings of one keyboard. A binding's position in
// Bindings is its identity for the cycle state.
type KeyMapping struct {
	Bindings []Binding
}

// comboKey is an order-independent key for a set of usages.
func comboKey(combo []hid.Usage) string {
	sorted := append([]hid.Usage(nil), combo...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, u := range sorted {
		parts[i] = fmt.Sprint(uint16(u))
	}
	return strings.Join(parts, ",")
}

// Find returns the binding whose combo is exactly the given set of keys.
func (m KeyMapping) Find(keys []hid.Usage) (int, bool) {
	want := comboKey(keys)
	for i, b := range m.Bindings {
		if comboKey(b.Combo) == want {
			return i, true
		}
	}
	return -1, false
}

// IsComboKey reports whether u takes part in any binding.
func (m KeyMapping) IsComboKey(u hid.Usage) bool {
	for _, b := range m.Bindings {
		for _, k := range b.Combo {
			if k == u {
				return true
			}
		}
	}
	return false
}

// CouldComplete reports whether the held keys are a subset of some combo,
// i.e. holding more keys may still complete a binding.
func (m KeyMapping) CouldComplete(held []hid.Usage) bool {
	for _, b := range m.Bindings {
		if len(held) > len(b.Combo) {
			continue
		}
		if containsAll(b.Combo, held) {
			return true
		}
	}
	return false
}

func containsAll(combo, keys []hid.Usage) bool {
	for _, k := range keys {
		found := false
		for _, c := range combo {
			if c == k {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Validate checks every binding against the list table.
func (m KeyMapping) Validate(table wordlist.Table) error {
	seen := make(map[string]string, len(m.Bindings))
	for _, b := range m.Bindings {
		if len(b.Combo) == 0 {
			return fmt.Errorf("binding %q has no keys", b.Name)
		}
		if _, ok := table.Lookup(b.List); !ok {
			return fmt.Errorf("binding %q: %w: %d (%d lists)", b.Name, wordlist.ErrListOutOfRange, b.List, table.Len())
		}
		k := comboKey(b.Combo)
		if other, dup := seen[k]; dup {
			return fmt.Errorf("bindings %q and %q use the same combo", other, b.Name)
		}
		seen[k] = b.Name
	}
	return nil
}

// FromChords builds a mapping from imported chords.
func FromChords(chords []wordlist.Chord, table wordlist.Table) KeyMapping {
	m := KeyMapping{}
	for _, c := range chords {
		name := fmt.Sprintf("chord_%d", c.List)
		if list, ok := table.Lookup(c.List); ok {
			name = list[0]
		}
		m.Bindings = append(m.Bindings, Binding{Name: name, Combo: c.Combo, List: c.List})
	}
	return m
}

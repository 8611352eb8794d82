package wordlist

import (
	"fmt"
	"strings"

	"github.com/goCycleKeys/encoder"
	"github.com/goCycleKeys/hid"
	"github.com/tidwall/gjson"
)

// Chord pairs a trigger combo with the list it cycles through.
type Chord struct {
	Combo []hid.Usage
	List  int
}

// ImportChords converts a chord file into cycle lists and the combos that
// select them. The document looks like
//
//	{"chords": [{"combo": ["t", "h"], "output": ["the", "then"]}, ...]}
//
// Entries that are not objects, have no usable combo keys, or produce no
// output are skipped. Output strings are cleaned the way the chord
// generators do: leading backspace dropped, trimmed, lowercased.
func ImportChords(data []byte) (Lists, []Chord, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, fmt.Errorf("chord file is not valid JSON")
	}
	chords := gjson.GetBytes(data, "chords")
	if !chords.IsArray() {
		return nil, nil, fmt.Errorf("chord file has no chords array")
	}

	var lists Lists
	var out []Chord
	chords.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		words := outputWords(item.Get("output"))
		if len(words) == 0 {
			return true
		}
		combo := comboKeys(item.Get("combo"))
		if len(combo) == 0 {
			return true
		}
		out = append(out, Chord{Combo: combo, List: len(lists)})
		lists = append(lists, words)
		return true
	})
	if err := lists.Validate(); err != nil {
		return nil, nil, err
	}
	return lists, out, nil
}

func outputWords(v gjson.Result) []string {
	var raw []string
	if v.IsArray() {
		for _, w := range v.Array() {
			raw = append(raw, w.String())
		}
	} else if v.Type == gjson.String {
		raw = append(raw, v.String())
	}
	var words []string
	for _, w := range raw {
		w = strings.ToLower(strings.TrimSpace(strings.TrimLeft(w, "\b")))
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

func comboKeys(v gjson.Result) []hid.Usage {
	var keys []hid.Usage
	for _, k := range v.Array() {
		name := k.String()
		if r := []rune(name); len(r) == 1 {
			in, err := encoder.Encode(r[0])
			if err != nil || in.HasModifier() {
				continue
			}
			keys = append(keys, in.Base)
			continue
		}
		if u, err := hid.Parse(name); err == nil {
			keys = append(keys, u)
		}
	}
	return keys
}

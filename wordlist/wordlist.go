// Package wordlist holds the cycle lists: an immutable table mapping a list
// index to its ordered candidate strings.
package wordlist

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyList   = errors.New("cycle list is empty")
	ErrEmptyString = errors.New("cycle list contains an empty string")

	ErrListOutOfRange = errors.New("list index out of range")
)

//go:embed lists.yaml
var defaultLists []byte

// Table is read-only once built.
type Table interface {
	Lookup(index int) ([]string, bool)
	Len() int
}

// Lists is a Table backed by a slice; the position is the list index.
type Lists [][]string

// Lookup returns the list at index, or false when index is out of range.
func (l Lists) Lookup(index int) ([]string, bool) {
	if index < 0 || index >= len(l) {
		return nil, false
	}
	return l[index], true
}

func (l Lists) Len() int {
	return len(l)
}

// Validate checks that every list has at least one non-empty string.
func (l Lists) Validate() error {
	for i, list := range l {
		if len(list) == 0 {
			return fmt.Errorf("list %d: %w", i, ErrEmptyList)
		}
		for j, s := range list {
			if s == "" {
				return fmt.Errorf("list %d entry %d: %w", i, j, ErrEmptyString)
			}
		}
	}
	return nil
}

type document struct {
	Lists Lists `yaml:"lists"`
}

// Parse decodes a YAML document of the form
//
//	lists:
//	  - ["be", "been", "being"]
func Parse(data []byte) (Lists, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse cycle lists: %w", err)
	}
	if err := doc.Lists.Validate(); err != nil {
		return nil, err
	}
	return doc.Lists, nil
}

// Marshal encodes lists in the same format Parse reads.
func Marshal(l Lists) ([]byte, error) {
	return yaml.Marshal(document{Lists: l})
}

// LoadFile reads a cycle list file.
func LoadFile(path string) (Lists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lists, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lists, nil
}

// Default returns the built-in table.
func Default() Lists {
	lists, err := Parse(defaultLists)
	if err != nil {
		panic(fmt.Sprintf("built-in cycle lists are invalid: %v", err))
	}
	return lists
}

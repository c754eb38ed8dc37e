// Package keytext derives short, stable join keys for menu items from their
// display names.
package keytext

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"vineyard/internal/model"
)

// Set holds the keys already allocated in a catalogue build pass.
type Set map[string]struct{}

// NewSet creates a set containing the given keys.
func NewSet(keys ...string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add inserts a key into the set.
func (s Set) Add(key string) {
	s[key] = struct{}{}
}

// Contains reports whether the key is already allocated.
func (s Set) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Generate returns the key for name that is not yet in existing.
//
// The base key is the lowercased first word, followed by the first
// character of the second word when there is one ("Chicken Alfredo" ->
// "chickena"). Collisions are resolved by appending 1, 2, 3... to the base.
// Generate does not add the result to existing; the caller must do so
// before generating the next key.
func Generate(name string, existing Set) (string, error) {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	if len(words) == 0 {
		return "", &model.InvalidInputError{Field: "name", Reason: "must not be blank"}
	}

	base := words[0]
	if len(words) > 1 {
		r, _ := utf8.DecodeRuneInString(words[1])
		base += string(r)
	}

	key := base
	for counter := 1; existing.Contains(key); counter++ {
		key = base + strconv.Itoa(counter)
	}

	return key, nil
}

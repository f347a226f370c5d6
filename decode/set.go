package decode

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// SetValue is an insertion-ordered set. Elements are compared by their
// canonical JSON encoding, so structurally equal objects and arrays collapse.
type SetValue struct {
	items []any
	index map[string]struct{}
}

// NewSet builds a set from items, dropping duplicates.
func NewSet(items ...any) *SetValue {
	s := &SetValue{index: make(map[string]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *SetValue) Add(v any) bool {
	k := setKey(v)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Contains reports whether v is in the set.
func (s *SetValue) Contains(v any) bool {
	_, ok := s.index[setKey(v)]
	return ok
}

// Len returns the number of elements.
func (s *SetValue) Len() int { return len(s.items) }

// Items returns the elements in first-seen order.
func (s *SetValue) Items() []any {
	return append([]any(nil), s.items...)
}

// Equal reports whether s and o hold the same elements, ignoring order.
func (s *SetValue) Equal(o *SetValue) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.index) != len(o.index) {
		return false
	}
	for k := range s.index {
		if _, ok := o.index[k]; !ok {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a JSON array.
func (s *SetValue) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

func setKey(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%T:%v", v, v)
	}
	return string(b)
}

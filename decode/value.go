package decode

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	json "github.com/goccy/go-json"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNull is JSON null.
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindNumber is a JSON number, held as int64 when integral, else float64.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindObject is a JSON object.
	KindObject
	// KindArray is a JSON array.
	KindArray
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON value. The zero Value is null.
type Value struct {
	kind    Kind
	scalar  any
	members []Member
	items   []Value
}

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// Scalar returns the Go value of a null, bool, number or string.
// It returns nil for objects and arrays.
func (v Value) Scalar() any { return v.scalar }

// Members returns the members of an object, sorted by key.
func (v Value) Members() []Member { return v.members }

// Items returns the elements of an array.
func (v Value) Items() []Value { return v.items }

// Parse decodes data into a Value. An empty or whitespace-only body yields
// a null Value and no error.
func Parse(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("decode: parse: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return Value{}, fmt.Errorf("decode: parse: unexpected data after top-level value")
	}
	return fromRaw(raw)
}

// fromRaw converts the generic tree produced by the JSON collaborator.
func fromRaw(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Value{}, nil
	case bool:
		return Value{kind: KindBool, scalar: x}, nil
	case string:
		return Value{kind: KindString, scalar: x}, nil
	case json.Number:
		n, err := number(x)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindNumber, scalar: n}, nil
	case float64:
		return Value{kind: KindNumber, scalar: x}, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			child, err := fromRaw(x[k])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: k, Value: child})
		}
		return Value{kind: KindObject, members: members}, nil
	case []any:
		items := make([]Value, 0, len(x))
		for _, e := range x {
			child, err := fromRaw(e)
			if err != nil {
				return Value{}, err
			}
			items = append(items, child)
		}
		return Value{kind: KindArray, items: items}, nil
	default:
		return Value{}, fmt.Errorf("decode: unsupported JSON value %T", raw)
	}
}

func number(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("decode: parse number %q: %w", n.String(), err)
	}
	return f, nil
}

package decode

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Object is an ordered record with access by field name.
// Duplicate keys keep the last value at the position of the first.
type Object struct {
	fields []Field
	index  map[string]int
}

// NewObject builds an Object from fields.
func NewObject(fields ...Field) *Object {
	o := &Object{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		o.Set(f.Key, f.Value)
	}
	return o
}

// Set assigns value to key.
func (o *Object) Set(key string, value any) {
	if i, ok := o.index[key]; ok {
		o.fields[i].Value = value
		return
	}
	o.index[key] = len(o.fields)
	o.fields = append(o.fields, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.fields[i].Value, true
}

// Len returns the number of fields.
func (o *Object) Len() int { return len(o.fields) }

// Keys returns the field names in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.fields))
	for i, f := range o.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the fields in order.
func (o *Object) Fields() []Field {
	return append([]Field(nil), o.fields...)
}

// Map returns the fields as a map[string]any (one level, values untouched).
func (o *Object) Map() map[string]any {
	m := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		m[f.Key] = f.Value
	}
	return m
}

// MarshalJSON encodes the object with fields in order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

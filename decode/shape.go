package decode

// Field is one projected object member handed to an ObjectShape.
type Field struct {
	Key   string
	Value any
}

// ObjectShape builds the container for a JSON object from its already
// projected members (sorted by key).
type ObjectShape interface {
	Object(fields []Field) any
}

// ArrayShape builds the container for a JSON array from its already
// projected elements (in document order).
type ArrayShape interface {
	Array(items []any) any
}

// ObjectFunc adapts a function to ObjectShape.
type ObjectFunc func(fields []Field) any

// Object calls f(fields).
func (f ObjectFunc) Object(fields []Field) any { return f(fields) }

// ArrayFunc adapts a function to ArrayShape.
type ArrayFunc func(items []any) any

// Array calls f(items).
func (f ArrayFunc) Array(items []any) any { return f(items) }

// Built-in shapes.
var (
	// Map projects objects to map[string]any. It is the default object shape.
	Map ObjectShape = ObjectFunc(toMap)
	// Record projects objects to *Object, which keeps key order and offers
	// field access by name.
	Record ObjectShape = ObjectFunc(toRecord)
	// Slice projects arrays to []any. It is the default array shape.
	Slice ArrayShape = ArrayFunc(toSlice)
	// Set projects arrays to *SetValue, dropping duplicate elements.
	Set ArrayShape = ArrayFunc(toSet)
)

func toMap(fields []Field) any {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	return m
}

func toRecord(fields []Field) any {
	return NewObject(fields...)
}

func toSlice(items []any) any {
	if items == nil {
		return []any{}
	}
	return items
}

func toSet(items []any) any {
	return NewSet(items...)
}

package decode

// Project converts v into Go values, applying obj to every object and arr to
// every array, innermost first. Scalars are returned unchanged. Nil shapes
// fall back to Map and Slice.
func Project(v Value, obj ObjectShape, arr ArrayShape) any {
	if obj == nil {
		obj = Map
	}
	if arr == nil {
		arr = Slice
	}
	return project(v, obj, arr)
}

func project(v Value, obj ObjectShape, arr ArrayShape) any {
	switch v.kind {
	case KindObject:
		fields := make([]Field, len(v.members))
		for i, m := range v.members {
			fields[i] = Field{Key: m.Key, Value: project(m.Value, obj, arr)}
		}
		return obj.Object(fields)
	case KindArray:
		items := make([]any, len(v.items))
		for i, e := range v.items {
			items[i] = project(e, obj, arr)
		}
		return arr.Array(items)
	default:
		return v.scalar
	}
}

// Decode parses data and projects it in one step.
func Decode(data []byte, obj ObjectShape, arr ArrayShape) (any, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Project(v, obj, arr), nil
}

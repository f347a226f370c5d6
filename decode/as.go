package decode

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// As maps a projected value onto T using json struct tags. It understands
// the default shapes (map[string]any and []any) as well as *Object and
// *SetValue, which are flattened first.
func As[T any](v any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &out,
		WeaklyTypedInput: false,
		Squash:           true,
	})
	if err != nil {
		return out, fmt.Errorf("decode: as: %w", err)
	}
	if err := dec.Decode(flatten(v)); err != nil {
		return out, fmt.Errorf("decode: as %T: %w", out, err)
	}
	return out, nil
}

// flatten rewrites *Object and *SetValue into maps and slices, recursively.
func flatten(v any) any {
	switch x := v.(type) {
	case *Object:
		m := make(map[string]any, x.Len())
		for _, f := range x.fields {
			m[f.Key] = flatten(f.Value)
		}
		return m
	case *SetValue:
		items := make([]any, len(x.items))
		for i, e := range x.items {
			items[i] = flatten(e)
		}
		return items
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = flatten(e)
		}
		return m
	case []any:
		items := make([]any, len(x))
		for i, e := range x {
			items[i] = flatten(e)
		}
		return items
	default:
		return v
	}
}

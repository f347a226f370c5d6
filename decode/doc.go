// Package decode parses JSON response bodies into a neutral tree and projects
// that tree into caller-selected container shapes.
//
// Parsing and projection are separate steps. Parse produces a Value, a tagged
// tree of objects, arrays and scalars. Project walks the tree bottom-up and
// hands every object to an ObjectShape and every array to an ArrayShape:
//
//	v, err := decode.Parse(body)
//	out := decode.Project(v, decode.Record, decode.Set)
//	obj := out.(*decode.Object)
//	ids, _ := obj.Get("set") // *decode.SetValue{1, 2, 3}
//
// The default shapes (Map, Slice) produce map[string]any and []any, which
// As can further map onto a typed struct using json tags.
package decode

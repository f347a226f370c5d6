package logger

import "time"

// Standard field keys used by the client.
const (
	FieldComponent = "component"
	FieldMethod    = "method"
	FieldURL       = "url"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLocation  = "location"
	FieldHop       = "hop"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map[string]any from alternating key-value pairs.
// A trailing key without a value is ignored.
//
//	log.Debug("sent", logger.Fields("method", "GET", "status", 200))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(err error) map[string]any {
	return map[string]any{FieldError: err.Error()}
}

// DurationFields creates fields for a timed operation.
func DurationFields(d time.Duration) map[string]any {
	return map[string]any{FieldDuration: d.Milliseconds()}
}

package truncation

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/bytedance/sonic"
)

// maxDepth bounds the walk so that self-referencing values terminate.
const maxDepth = 64

// Sanitize returns a deep copy of payload made of JSON-safe values only:
// map[string]any, []any, strings, bools, numbers and nil.
//
// Slices and arrays become []any and maps become map[string]any. Structs
// and values with their own JSON encoding are round-tripped through the
// encoder. Leaves that cannot be encoded are replaced with a short
// diagnostic string:
//
//	"[binary data, 12 bytes]"
//	"[invalid utf-8 string, 3 bytes]"
//	"[non-finite float]"
//	"[unserializable chan int]"
func Sanitize(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = sanitize(v, 0)
	}
	return out
}

func sanitize(v any, depth int) any {
	if depth > maxDepth {
		return "[max depth exceeded]"
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return sanitizeString(val)
	case []byte:
		return fmt.Sprintf("[binary data, %d bytes]", len(val))
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
		return val
	case float64:
		return sanitizeFloat(val)
	case float32:
		return sanitizeFloat(float64(val))
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = sanitize(item, depth+1)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = sanitize(item, depth+1)
		}
		return out
	case json.Marshaler, encoding.TextMarshaler:
		return roundTrip(v, depth)
	case fmt.Stringer:
		if isScalarKind(reflect.TypeOf(v).Kind()) {
			return sanitizeString(val.String())
		}
	}

	return sanitizeValue(reflect.ValueOf(v), depth)
}

func sanitizeValue(rv reflect.Value, depth int) any {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return sanitize(rv.Elem().Interface(), depth+1)
	case reflect.String:
		return sanitizeString(rv.String())
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return sanitizeFloat(rv.Float())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return fmt.Sprintf("[binary data, %d bytes]", rv.Len())
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = sanitize(rv.Index(i).Interface(), depth+1)
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[mapKey(iter.Key())] = sanitize(iter.Value().Interface(), depth+1)
		}
		return out
	case reflect.Struct:
		return roundTrip(rv.Interface(), depth)
	}
	return unserializable(rv.Interface())
}

// roundTrip encodes v and decodes it back into generic values.
func roundTrip(v any, depth int) any {
	raw, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return unserializable(v)
	}
	var decoded any
	if err := sonic.ConfigStd.Unmarshal(raw, &decoded); err != nil {
		return unserializable(v)
	}
	return sanitize(decoded, depth+1)
}

func sanitizeString(s string) any {
	if !utf8.ValidString(s) {
		return fmt.Sprintf("[invalid utf-8 string, %d bytes]", len(s))
	}
	return s
}

func sanitizeFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "[non-finite float]"
	}
	return f
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		if text, err := tm.MarshalText(); err == nil {
			return string(text)
		}
	}
	return fmt.Sprint(k.Interface())
}

func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
		return true
	}
	return false
}

func unserializable(v any) string {
	return fmt.Sprintf("[unserializable %T]", v)
}

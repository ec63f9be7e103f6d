package tracer

import (
	"sort"
)

// Attributes is an insertion-ordered map with unique keys and an optional
// cap on the number of keys. Values are scalars, fmt.Stringer enums, or
// nested map[string]any / []any trees.
//
// The zero value and a nil *Attributes are empty and read-only safe.
type Attributes struct {
	keys   []string
	values map[string]any
	limit  int
}

// NewAttributes returns an empty set holding at most limit keys.
// A limit of zero or less means no cap.
func NewAttributes(limit int) *Attributes {
	return &Attributes{limit: limit}
}

// Set stores value under key. Overwriting an existing key always succeeds
// and keeps its position; a new key beyond the cap is refused and Set
// reports false.
func (a *Attributes) Set(key string, value any) bool {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[key]; ok {
		a.values[key] = value
		return true
	}
	if a.limit > 0 && len(a.keys) >= a.limit {
		return false
	}
	a.keys = append(a.keys, key)
	a.values[key] = value
	return true
}

// Merge sets every entry of m in key order and returns how many new keys
// were refused by the cap.
func (a *Attributes) Merge(m map[string]any) int {
	refused := 0
	for _, key := range sortedKeys(m) {
		if !a.Set(key, m[key]) {
			refused++
		}
	}
	return refused
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.values[key]
	return v, ok
}

// Len returns the number of keys.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Range calls fn for every entry in insertion order until fn returns false.
func (a *Attributes) Range(fn func(key string, value any) bool) {
	if a == nil {
		return
	}
	for _, key := range a.keys {
		if !fn(key, a.values[key]) {
			return
		}
	}
}

// Map returns a copy of the entries as a plain map.
func (a *Attributes) Map() map[string]any {
	out := make(map[string]any, a.Len())
	a.Range(func(key string, value any) bool {
		out[key] = value
		return true
	})
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

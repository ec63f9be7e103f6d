package truncation

import (
	"unicode/utf8"
)

const (
	attributesKey = "attributes"
	contextKey    = "context"
	previousKey   = "previous"
)

type stringStrategy struct {
	thresholds []int
}

// TrimStrings cuts every string longer than the threshold, in bytes, backing
// off to the previous rune boundary so the result stays valid UTF-8.
func TrimStrings(thresholds ...int) Strategy {
	return &stringStrategy{thresholds: thresholds}
}

func (s *stringStrategy) Name() string { return "strings" }

func (s *stringStrategy) Thresholds(map[string]any) []int { return s.thresholds }

func (s *stringStrategy) Apply(payload map[string]any, threshold int) map[string]any {
	walk(payload, func(v any) any {
		if str, ok := v.(string); ok {
			return cutString(str, threshold)
		}
		return v
	})
	return payload
}

func cutString(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

type attributeStrategy struct {
	thresholds []int
	keep       map[string]bool
}

// TrimAttributes slices every list-valued attribute longer than the
// threshold to its last threshold elements. It looks at each "attributes"
// entry in the tree, whether a map of key to value or an OTLP list of
// {key, value: {arrayValue: {values}}}. Keys listed in keep are left alone.
func TrimAttributes(keep []string, thresholds ...int) Strategy {
	return &attributeStrategy{thresholds: thresholds, keep: keySet(keep)}
}

func (s *attributeStrategy) Name() string { return "attributes" }

func (s *attributeStrategy) Thresholds(map[string]any) []int { return s.thresholds }

func (s *attributeStrategy) Apply(payload map[string]any, threshold int) map[string]any {
	var visit func(v any)
	visit = func(v any) {
		switch node := v.(type) {
		case map[string]any:
			for key, child := range node {
				if key == attributesKey {
					node[key] = s.trimAttributes(child, threshold)
				}
				visit(node[key])
			}
		case []any:
			for _, child := range node {
				visit(child)
			}
		}
	}
	visit(payload)
	return payload
}

func (s *attributeStrategy) trimAttributes(v any, threshold int) any {
	switch attrs := v.(type) {
	case map[string]any:
		for key, value := range attrs {
			if list, ok := value.([]any); ok && !s.keep[key] {
				attrs[key] = lastN(list, threshold)
			}
		}
	case []any:
		for _, item := range attrs {
			kv, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if key, _ := kv["key"].(string); s.keep[key] {
				continue
			}
			value, _ := kv["value"].(map[string]any)
			array, _ := value["arrayValue"].(map[string]any)
			if values, ok := array["values"].([]any); ok {
				array["values"] = lastN(values, threshold)
			}
		}
	}
	return v
}

type contextStrategy struct {
	thresholds []int
	keep       map[string]bool
}

// TrimContextItems slices every list inside the top-level "context" subtree
// to its last threshold elements, skipping keys listed in keep.
func TrimContextItems(keep []string, thresholds ...int) Strategy {
	return &contextStrategy{thresholds: thresholds, keep: keySet(keep)}
}

func (s *contextStrategy) Name() string { return "context" }

func (s *contextStrategy) Thresholds(map[string]any) []int { return s.thresholds }

func (s *contextStrategy) Apply(payload map[string]any, threshold int) map[string]any {
	var visit func(v any) any
	visit = func(v any) any {
		switch node := v.(type) {
		case map[string]any:
			for key, child := range node {
				if s.keep[key] {
					continue
				}
				node[key] = visit(child)
			}
			return node
		case []any:
			node = lastN(node, threshold)
			for i, child := range node {
				node[i] = visit(child)
			}
			return node
		}
		return v
	}

	if ctx, ok := payload[contextKey]; ok {
		payload[contextKey] = visit(ctx)
	}
	return payload
}

type previousStrategy struct{}

// TrimPreviousExceptions drops entries of the top-level "previous" list,
// which is ordered most recent first, one at a time from the oldest end.
// Its thresholds are the list lengths still to try.
func TrimPreviousExceptions() Strategy {
	return previousStrategy{}
}

func (previousStrategy) Name() string { return "previous" }

func (previousStrategy) Thresholds(payload map[string]any) []int {
	previous, _ := payload[previousKey].([]any)
	thresholds := make([]int, 0, len(previous))
	for n := len(previous) - 1; n >= 0; n-- {
		thresholds = append(thresholds, n)
	}
	return thresholds
}

func (previousStrategy) Apply(payload map[string]any, threshold int) map[string]any {
	if previous, ok := payload[previousKey].([]any); ok && len(previous) > threshold {
		payload[previousKey] = previous[:threshold]
	}
	return payload
}

// walk replaces every leaf of the tree with fn(leaf).
func walk(v any, fn func(any) any) any {
	switch node := v.(type) {
	case map[string]any:
		for key, child := range node {
			node[key] = walk(child, fn)
		}
		return node
	case []any:
		for i, child := range node {
			node[i] = walk(child, fn)
		}
		return node
	}
	return fn(v)
}

func lastN(list []any, n int) []any {
	if n < 0 {
		n = 0
	}
	if len(list) <= n {
		return list
	}
	return list[len(list)-n:]
}

func keySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

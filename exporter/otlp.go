package exporter

import (
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/aalemi-dev/telemetry-lab/tracer"
)

const scopeName = "github.com/aalemi-dev/telemetry-lab"

func resourceAttributes(cfg Config) []any {
	attrs := []any{
		keyValue("service.name", cfg.ServiceName),
		keyValue("telemetry.sdk.name", SDKName),
		keyValue("telemetry.sdk.language", "go"),
		keyValue("telemetry.sdk.version", SDKVersion),
	}
	if cfg.ServiceVersion != "" {
		attrs = append(attrs, keyValue("service.version", cfg.ServiceVersion))
	}
	if cfg.Environment != "" {
		attrs = append(attrs, keyValue("deployment.environment", cfg.Environment))
	}
	return attrs
}

// tracePayload renders a trace as an OTLP/JSON ExportTraceServiceRequest.
func (e *ExporterClient) tracePayload(trace tracer.Trace) map[string]any {
	spans := make([]any, 0, len(trace.Spans))
	for _, span := range trace.Spans {
		spans = append(spans, spanPayload(span))
	}

	return map[string]any{
		"resourceSpans": []any{
			map[string]any{
				"resource": map[string]any{"attributes": e.resource},
				"scopeSpans": []any{
					map[string]any{
						"scope": map[string]any{"name": scopeName, "version": SDKVersion},
						"spans": spans,
					},
				},
			},
		},
	}
}

func spanPayload(span *tracer.Span) map[string]any {
	events := make([]any, 0, len(span.Events))
	for _, ev := range span.Events {
		events = append(events, map[string]any{
			"timeUnixNano":           unixNano(ev.Time),
			"name":                   ev.Name,
			"attributes":             attributesPayload(ev.Attributes),
			"droppedAttributesCount": ev.DroppedAttributesCount,
		})
	}

	status := map[string]any{"code": int(span.Status.Code)}
	if span.Status.Message != "" {
		status["message"] = span.Status.Message
	}

	out := map[string]any{
		"traceId":                span.TraceID,
		"spanId":                 span.SpanID,
		"name":                   span.Name,
		"startTimeUnixNano":      unixNano(span.Start),
		"endTimeUnixNano":        unixNano(span.End),
		"attributes":             attributesPayload(span.Attributes),
		"droppedAttributesCount": span.DroppedAttributesCount,
		"events":                 events,
		"droppedEventsCount":     span.DroppedEventsCount,
		"status":                 status,
	}
	if span.ParentSpanID != "" {
		out["parentSpanId"] = span.ParentSpanID
	}
	return out
}

func attributesPayload(attrs *tracer.Attributes) []any {
	out := make([]any, 0, attrs.Len())
	attrs.Range(func(key string, value any) bool {
		out = append(out, keyValue(key, value))
		return true
	})
	return out
}

func keyValue(key string, value any) map[string]any {
	return map[string]any{"key": key, "value": anyValue(value)}
}

// anyValue encodes v as an OTLP AnyValue.
func anyValue(v any) map[string]any {
	switch val := v.(type) {
	case nil:
		return map[string]any{}
	case string:
		return map[string]any{"stringValue": val}
	case bool:
		return map[string]any{"boolValue": val}
	case int:
		return map[string]any{"intValue": int64(val)}
	case int8, int16, int32, int64:
		return map[string]any{"intValue": reflect.ValueOf(val).Int()}
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(val).Uint()
		if u > math.MaxInt64 {
			return map[string]any{"stringValue": strconv.FormatUint(u, 10)}
		}
		return map[string]any{"intValue": int64(u)}
	case float32:
		return map[string]any{"doubleValue": float64(val)}
	case float64:
		return map[string]any{"doubleValue": val}
	case time.Time:
		return map[string]any{"stringValue": val.Format(time.RFC3339Nano)}
	case error:
		return map[string]any{"stringValue": val.Error()}
	case fmt.Stringer:
		return map[string]any{"stringValue": val.String()}
	case []byte:
		return map[string]any{"bytesValue": base64.StdEncoding.EncodeToString(val)}
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		values := make([]any, 0, len(keys))
		for _, k := range keys {
			values = append(values, keyValue(k, val[k]))
		}
		return map[string]any{"kvlistValue": map[string]any{"values": values}}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]any, rv.Len())
		for i := range values {
			values[i] = anyValue(rv.Index(i).Interface())
		}
		return map[string]any{"arrayValue": map[string]any{"values": values}}
	case reflect.Map:
		entries := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
		return anyValue(entries)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return map[string]any{"intValue": rv.Int()}
	case reflect.String:
		return map[string]any{"stringValue": rv.String()}
	case reflect.Pointer:
		if rv.IsNil() {
			return map[string]any{}
		}
		return anyValue(rv.Elem().Interface())
	}
	return map[string]any{"stringValue": fmt.Sprint(v)}
}

// unixNano renders t as OTLP/JSON does for fixed64 fields: a decimal string.
func unixNano(t time.Time) string {
	if t.IsZero() {
		return "0"
	}
	return strconv.FormatInt(t.UnixNano(), 10)
}

// Package exporter renders finished traces and error reports as payloads
// and delivers them through a sender.
//
// Traces use the OTLP/JSON layout of an ExportTraceServiceRequest:
//
//	{"resourceSpans": [{
//	    "resource": {"attributes": [...]},
//	    "scopeSpans": [{"scope": {...}, "spans": [{
//	        "traceId": "...", "spanId": "...", "parentSpanId": "...",
//	        "name": "...", "startTimeUnixNano": "...", "endTimeUnixNano": "...",
//	        "attributes": [{"key": "...", "value": {"stringValue": "..."}}],
//	        "droppedAttributesCount": 0, "events": [...],
//	        "droppedEventsCount": 0, "status": {"code": 2, "message": "..."}
//	    }]}]
//	}]}
//
// Attribute values become stringValue, boolValue, intValue, doubleValue,
// arrayValue or kvlistValue. Values implementing fmt.Stringer or error are
// sent as strings.
//
// Every payload is fitted to the truncation budget before it is encoded.
package exporter

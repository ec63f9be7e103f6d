// Package truncation shrinks nested payloads until their JSON encoding fits
// a byte budget.
//
// Trim first runs Sanitize, which deep-copies the payload into plain
// map[string]any / []any trees and replaces leaves that cannot be encoded
// with a diagnostic string. It then applies the strategies in order. Each
// strategy is tried at each of its thresholds, most permissive first, and
// trimming stops as soon as the payload fits:
//
//	strings     cut strings to 1024, 512, 256 bytes
//	attributes  keep the last 100, 50, 25, 10 items of list attributes
//	context     the same rule inside the "context" subtree
//	previous    drop cause-chain entries from the oldest end
//
// Keys in Config.AlwaysKeepKeys are never sliced by the collection
// strategies. A payload that cannot be brought under the budget is returned
// in its most trimmed form; Trim never fails.
//
// Sizes are measured with the same encoder the exporter uses, sonic in
// encoding/json compatible mode.
package truncation

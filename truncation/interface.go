package truncation

// Strategy shrinks one category of payload data.
//
// Thresholds returns the thresholds to try, most permissive first; it may
// derive them from the payload. Apply shortens every location the strategy
// owns to threshold and returns the payload, which it may modify in place.
// A strategy never makes a retained value larger.
type Strategy interface {
	Name() string
	Thresholds(payload map[string]any) []int
	Apply(payload map[string]any, threshold int) map[string]any
}

// Trimmer fits payloads into a byte budget. It is implemented by *TrimmerClient.
type Trimmer interface {
	// Trim returns payload trimmed to at most maxBytes when the strategies
	// can get there, and the most trimmed version otherwise.
	Trim(payload map[string]any, maxBytes int) map[string]any

	// Fit trims payload to Config.MaxBytes. None of the default strategies
	// shortens span or event lists, so a trace with many small spans can
	// stay above the budget.
	Fit(payload map[string]any) map[string]any
}

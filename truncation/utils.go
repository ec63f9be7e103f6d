package truncation

import (
	"math"

	"github.com/bytedance/sonic"

	"github.com/aalemi-dev/telemetry-lab/observability"
)

// Size returns the length of payload encoded as JSON, or math.MaxInt when it
// cannot be encoded.
func Size(payload any) int {
	raw, err := sonic.ConfigStd.Marshal(payload)
	if err != nil {
		return math.MaxInt
	}
	return len(raw)
}

// Trim makes payload JSON safe, then runs each strategy over its thresholds
// until the encoded size is at most maxBytes. The input is never modified.
//
// Trim never fails: when no strategy gets the payload under the budget the
// most trimmed version is returned and the caller decides whether to send it.
func (t *TrimmerClient) Trim(payload map[string]any, maxBytes int) map[string]any {
	current := Sanitize(payload)
	original := Size(current)

	size := original
	for _, strategy := range t.strategies {
		if size <= maxBytes {
			break
		}
		for _, threshold := range strategy.Thresholds(current) {
			current = strategy.Apply(current, threshold)
			if size = Size(current); size <= maxBytes {
				break
			}
		}
	}

	fits := size <= maxBytes
	if !fits {
		t.logger.Debug("payload still over budget after trimming", nil, map[string]interface{}{
			"size":      size,
			"max_bytes": maxBytes,
		})
	}
	if t.observer != nil {
		t.observer.ObserveOperation(observability.OperationContext{
			Component: "truncation",
			Operation: "trim",
			Size:      int64(size),
			Metadata: map[string]interface{}{
				"original": original,
				"dropped":  original - size,
				"fits":     fits,
			},
		})
	}
	return current
}

// Fit trims payload to Config.MaxBytes.
func (t *TrimmerClient) Fit(payload map[string]any) map[string]any {
	return t.Trim(payload, t.cfg.MaxBytes)
}

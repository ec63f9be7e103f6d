package sender

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/klauspost/compress/gzip"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
)

// Send posts body to the endpoint joined with path. Transient failures
// (connection errors, 429 and 5xx) are retried; the final status is mapped
// to one of the package's errors.
func (s *HTTPSender) Send(ctx context.Context, path string, body []byte) error {
	start := time.Now()
	status, sent, err := s.send(ctx, path, body)
	if err != nil {
		s.logger.WarnWithContext(ctx, "failed to send payload", err, map[string]interface{}{
			"path":   path,
			"status": status,
			"bytes":  sent,
		})
	}

	if s.observer != nil {
		s.observer.ObserveOperation(observability.OperationContext{
			Component: "sender",
			Operation: "send",
			Resource:  path,
			Duration:  time.Since(start),
			Error:     err,
			Size:      int64(sent),
			Metadata: map[string]interface{}{
				"status": status,
				"gzip":   s.cfg.Gzip,
			},
		})
	}
	return err
}

func (s *HTTPSender) send(ctx context.Context, path string, body []byte) (int, int, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, 0, fmt.Errorf("sender: rate limiter: %w", err)
	}

	payload := body
	if s.cfg.Gzip {
		compressed, err := compress(body)
		if err != nil {
			return 0, 0, err
		}
		payload = compressed
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+path, payload)
	if err != nil {
		return 0, len(payload), fmt.Errorf("sender: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())
	if s.cfg.Gzip {
		req.Header.Set("Content-Encoding", "gzip")
	}
	if s.cfg.APIKey != "" {
		req.Header.Set(s.cfg.APIKeyHeader, s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, len(payload), fmt.Errorf("sender: post %s: %w", path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, len(payload), statusError(resp.StatusCode)
}

func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusRequestEntityTooLarge:
		return ErrPayloadTooLarge
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, code)
	}
}

func compress(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(body); err != nil {
		return nil, fmt.Errorf("sender: gzip: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("sender: gzip: %w", err)
	}
	return buf.Bytes(), nil
}

// leveledLogger routes retryablehttp's logs to a logger.Logger.
type leveledLogger struct {
	log logger.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, nil, fields(keysAndValues))
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, nil, fields(keysAndValues))
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, nil, fields(keysAndValues))
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn(msg, nil, fields(keysAndValues))
}

func fields(keysAndValues []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return out
}

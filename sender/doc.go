// Package sender delivers encoded payloads to a collector over HTTP.
//
// HTTPSender is built on go-retryablehttp: connection errors, 429 and 5xx
// responses are retried with exponential backoff between RetryWaitMin and
// RetryWaitMax. Every payload gets a fresh Idempotency-Key that is reused by
// its retries so the collector can deduplicate. Bodies are optionally gzip
// compressed and requests can be throttled with RateLimit.
//
// Final statuses map to sentinel errors:
//
//	413      ErrPayloadTooLarge
//	401, 403 ErrUnauthorized
//	429      ErrRateLimited
//	other    ErrUnexpectedStatus
//
// Callers classify failures with errors.Is.
package sender

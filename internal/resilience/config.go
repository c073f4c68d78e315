package resilience

import (
	"time"
)

// FromConfig builds a Policy from configuration values. Zero backoff
// values keep the defaults; a negative retry count is treated as zero.
func FromConfig(maxRetries, initialBackoffMs, maxBackoffMs int) Policy {
	p := DefaultPolicy()
	p.MaxRetries = max(maxRetries, 0)
	if initialBackoffMs > 0 {
		p.InitialBackoff = time.Duration(initialBackoffMs) * time.Millisecond
	}
	if maxBackoffMs > 0 {
		p.MaxBackoff = time.Duration(maxBackoffMs) * time.Millisecond
	}
	return p
}

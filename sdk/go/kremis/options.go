package kremis

import "time"

// Option configures a Client at creation time.
type Option func(*clientConfig)

type clientConfig struct {
	baseURL       string
	timeout       time.Duration
	maxConcurrent int
}

// WithBaseURL sets the Core server address.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) { c.baseURL = url }
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.timeout = d }
}

// WithMaxConcurrent caps in-flight calls in concurrent mode.
func WithMaxConcurrent(n int) Option {
	return func(c *clientConfig) { c.maxConcurrent = n }
}

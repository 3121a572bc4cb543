// Package constants provides shared constants used throughout the mirrorsync
// codebase. This includes timeouts, retry limits, and pagination values that
// should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the Notion API
	DefaultHTTPTimeout = 30 * time.Second

	// SyncTimeout is the default timeout for a full sync pass
	SyncTimeout = 30 * time.Minute
)

// Retry constants govern the transport retry policy
const (
	// MaxAttempts is the total number of attempts for a remote call,
	// including the initial one
	MaxAttempts = 5

	// RetryBackoff is the initial backoff duration between attempts
	RetryBackoff = 2 * time.Second

	// MaxRetryBackoff is the cap on the backoff duration between attempts
	MaxRetryBackoff = 30 * time.Second

	// BackoffMultiplier doubles the backoff after each failed attempt
	BackoffMultiplier = 2.0
)

// Pagination constants
const (
	// DefaultPageSize is the number of pages requested per database query
	DefaultPageSize = 100
)

// Notion API constants
const (
	// NotionBaseURL is the base URL of the Notion REST API
	NotionBaseURL = "https://api.notion.com"

	// NotionVersion is the Notion-Version header value sent on every request
	NotionVersion = "2022-06-28"
)

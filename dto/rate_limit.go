package dto

import "time"

// RateLimitExceeded is the 429 payload returned when an admission gate
// rejects a request.
type RateLimitExceeded struct {
	StatusCode   int        `json:"statusCode"`
	Message      string     `json:"message"`
	Error        string     `json:"error"`
	BlockedUntil *time.Time `json:"blockedUntil,omitempty"`
	Limit        int        `json:"limit,omitempty"`
	Window       string     `json:"window,omitempty"`
}

type RateLimitStats struct {
	TotalIPs      int `json:"totalIPs"`
	BlockedIPs    int `json:"blockedIPs"`
	MaxRequests   int `json:"maxRequests"`
	WindowMinutes int `json:"windowMinutes"`
}

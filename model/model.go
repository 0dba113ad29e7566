// Package model contains core data types for the project.
package model

// Bot is one roster row: a messaging-platform account to report on.
type Bot struct {
	Name        string `json:"name"`         // Display name, used as screen name and event category.
	AccessToken string `json:"access_token"` // Messaging API channel access token.
	TrackingID  string `json:"tracking_id"`  // Analytics property id.
}

// Hit is a single analytics event produced by the collector.
type Hit struct {
	Action string `json:"ea"` // Event action, e.g. "followers-blocks".
	Label  string `json:"el"` // Date the value belongs to.
	Value  int64  `json:"ev"` // Event value.
}

// Payload is one analytics hit ready for query-string encoding.
// Values are strings, numbers or string slices.
type Payload map[string]any

// Package model defines the protocol 1052 record types and their
// tolerant document reconstruction rules.
package model

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Protocol version tag written on every persisted memory and experience
// document. Not validated on load.
const Protocol = "1052-v1.0"

// Document kind tags.
const (
	TypeMemory     = "memory"
	TypeExperience = "experience"
)

// ValidTalkStyles are the recognized preference talk styles.
var ValidTalkStyles = map[string]bool{
	"concise": true,
	"natural": true,
	"strict":  true,
}

// ValidLevels are the allowed experience severity levels.
var ValidLevels = map[string]bool{
	"normal":    true,
	"important": true,
	"critical":  true,
}

// NewID returns a fresh globally unique record identifier.
func NewID() string {
	return ulid.Make().String()
}

// Timestamp returns the current time as an ISO-8601 string.
func Timestamp() string {
	return time.Now().Format(time.RFC3339)
}

// Today returns the current local calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format("2006-01-02")
}

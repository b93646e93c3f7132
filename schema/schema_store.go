package schema

import "time"

// StoreStatus reports the state of the habit store for the status command.
type StoreStatus struct {
	Backend          string    `json:"backend"`
	Connected        bool      `json:"connected"`
	TotalHabits      int       `json:"total_habits"`
	TotalCompletions int       `json:"total_completions"`
	OldestRecord     time.Time `json:"oldest_record,omitzero"`
	NewestRecord     time.Time `json:"newest_record,omitzero"`
}

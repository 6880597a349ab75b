package history

import "time"

// Entry is a single history record.
type Entry struct {
	Seq      uint64    `json:"seq"`
	Time     time.Time `json:"ts"`
	PrevHash string    `json:"prev_hash"`
	Session  string    `json:"session"`            // one ID per shell session
	Line     string    `json:"line"`               // raw input line as typed
	Commands []string  `json:"commands,omitempty"` // command name of each stage
	Error    string    `json:"error,omitempty"`    // error message if the line failed
	Duration float64   `json:"duration_ms"`        // execution time in milliseconds
	Cwd      string    `json:"cwd"`                // session working directory
	Hash     string    `json:"hash"`               // SHA-256 of this entry (with hash field empty)
}

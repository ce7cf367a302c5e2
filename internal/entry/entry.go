package entry

import "fmt"

// LogEntry is one dated accomplishment record.
type LogEntry struct {
	// ID is assigned by the store on insert and increases monotonically.
	ID      int64  `json:"id"`
	Message string `json:"message"`
	LogDate Date   `json:"log_date"`
}

// String renders the entry in the braglog line format: "YYYY-MM-DD: message".
func (e LogEntry) String() string {
	return fmt.Sprintf("%s: %s", e.LogDate, e.Message)
}

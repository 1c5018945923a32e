package models

// BatchJob is one airdrop batch submitted to the worker queue as a single
// unit of work. Recipients keep their submission order; duplicates are
// preserved, one transaction per occurrence.
type BatchJob struct {
	EventID    string   `json:"event_id"`
	Recipients []string `json:"recipients"`
}

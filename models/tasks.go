package models

// PurgePayload is the body of a booking purge task.
type PurgePayload struct {
	RetentionDays int `json:"retentionDays"`
}

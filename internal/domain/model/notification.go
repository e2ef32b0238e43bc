package model

// NotificationField represents a titled section within a notification payload.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification is a transport-agnostic run summary for downstream notifiers.
type Notification struct {
	Title       string
	Description string
	Fields      []NotificationField
	// Failure marks summaries of runs where at least one slug failed.
	Failure bool
}

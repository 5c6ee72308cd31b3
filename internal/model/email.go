package model

// EmailMessage is the unit of work published to the notification queue.
// It is never persisted; delivery is at-most-once per recipient.
type EmailMessage struct {
	To             string `json:"to"`
	Subject        string `json:"subject"`
	HTMLBody       string `json:"html_body"`
	AttachmentPath string `json:"attachment_path,omitempty"`
}

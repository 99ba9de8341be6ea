package domain

// ReportStatus represents the lifecycle state of an incident report.
type ReportStatus string

const (
	StatusPending ReportStatus = "Pending"
	StatusSolved  ReportStatus = "Solved"
)

// Report is an incident report submitted by a student, parent or teacher.
// Status starts at Pending and only ever moves to Solved; no operation sets
// any other value after creation, so solving twice is a no-op update.
type Report struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Codename    *string      `json:"codename"`
	Grade       string       `json:"grade"`
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Status      ReportStatus `json:"status"`
	Date        string       `json:"date"`
}

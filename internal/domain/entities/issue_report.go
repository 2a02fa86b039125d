package entities

import "time"

type IssueStatus string

const (
	IssueStatusOpen     IssueStatus = "open"
	IssueStatusResolved IssueStatus = "resolved"
)

// IssueReport is advisory feedback sent by end users; it plays no part in pricing.
type IssueReport struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Email       string      `json:"email"`
	Date        time.Time   `json:"date"`
	Status      IssueStatus `json:"status"`
}

package domain

import "time"

type IssueStatus string

const (
	IssueStatusPending    IssueStatus = "Pending"
	IssueStatusInProgress IssueStatus = "In Progress"
	IssueStatusResolved   IssueStatus = "Resolved"
)

type Issue struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Username    string      `json:"username"`
	Category    string      `json:"category"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Priority    string      `json:"priority"` // Low, Medium, High
	Status      IssueStatus `json:"status"`
	Upvotes     int32       `json:"upvotes"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

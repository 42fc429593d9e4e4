package domain

import "time"

// StudentSummary is the dashboard head-count view.
// New: registered within the last 7 days and not blocked.
// Active: not blocked and owns at least one issue/order/feedback created
// within the last 30 days.
type StudentSummary struct {
	Total   int32 `json:"total"`
	Active  int32 `json:"active"`
	New     int32 `json:"new"`
	Blocked int32 `json:"blocked"`
}

// CategoryCount is one histogram bucket. Buckets are ordered by
// descending count; ties keep first-appearance order.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int32  `json:"count"`
}

type ActivityMetrics struct {
	AvgIssuesPerStudent float64 `json:"avg_issues_per_student"`
	AvgOrdersPerStudent float64 `json:"avg_orders_per_student"`
	AvgFeedbackRating   float64 `json:"avg_feedback_rating"`
	ResolutionRate      float64 `json:"resolution_rate"` // percent, 0 when no issues
}

type MonthlyReport struct {
	From             time.Time       `json:"from"`
	To               time.Time       `json:"to"`
	NewRegistrations int32           `json:"new_registrations"`
	NewIssues        int32           `json:"new_issues"`
	FoodOrders       int32           `json:"food_orders"`
	FeedbackReceived int32           `json:"feedback_received"`
	IssueBreakdown   []CategoryCount `json:"issue_breakdown"`
	AvgRating        float64         `json:"avg_rating"`
}

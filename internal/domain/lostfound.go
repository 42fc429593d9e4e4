package domain

import "time"

type LostFoundType string

const (
	LostFoundTypeLost  LostFoundType = "lost"
	LostFoundTypeFound LostFoundType = "found"
)

type LostFoundStatus string

const (
	LostFoundStatusActive   LostFoundStatus = "Active"
	LostFoundStatusResolved LostFoundStatus = "Resolved"
)

type LostFoundItem struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Username    string          `json:"username"`
	Type        LostFoundType   `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Contact     string          `json:"contact"`
	Status      LostFoundStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

package domain

import "time"

type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Category  string    `json:"category"`
	Rating    int32     `json:"rating"` // 1-5
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

package store

import "time"

// Session is the server-held state binding a request to an authenticated
// user. The token travels in a cookie; everything else stays in memory.
type Session struct {
	Token     string    `json:"token"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

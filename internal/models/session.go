package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state bound to a logged in client.
type Session struct {
	SessionID uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse represents the current session of the caller
// swagger:model SessionResponse
type SessionResponse struct {
	// Session identifier
	// example: 1c3b0a4e-8f5e-4bb0-9d8e-0f3a2a6b7c11
	SessionID string `json:"session_id"`

	// Logged in username
	// example: testuser
	Username string `json:"username"`
}

package models

import "time"

type SessionEventType string

const (
	SessionEventRegistered SessionEventType = "registered"
	SessionEventLoggedIn   SessionEventType = "logged_in"
	SessionEventRefreshed  SessionEventType = "refreshed"
	SessionEventLoggedOut  SessionEventType = "logged_out"
	SessionEventExpired    SessionEventType = "expired"
)

// SessionEvent describes a change of the local session. It never carries
// token material.
type SessionEvent struct {
	ID         string           `json:"id"`
	Type       SessionEventType `json:"type"`
	UserID     string           `json:"userId,omitempty"`
	Email      string           `json:"email,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

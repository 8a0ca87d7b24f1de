// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published after a new user row is created. It
// carries enough for downstream consumers to log or notify without
// querying the primary database.
type UserRegisteredEvent struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// LoanDeletedEvent is published after a loan has been removed.
type LoanDeletedEvent struct {
	LoanID    string `json:"loan_id"`
	UserID    string `json:"user_id"`
	Book      string `json:"book"`
	DeletedBy string `json:"deleted_by"`
}

package domain

import "time"

// ActivityAction captures what a log entry records.
type ActivityAction string

const (
	ActivityTicketCreated ActivityAction = "ticket_created"
	ActivityStatusChanged ActivityAction = "status_changed"
	ActivityAssigned      ActivityAction = "assigned"
)

// ActivityLog is an immutable audit trail entry for a ticket.
type ActivityLog struct {
	ID        string
	TicketID  string
	UserID    string
	Action    ActivityAction
	Metadata  map[string]any
	CreatedAt time.Time
}

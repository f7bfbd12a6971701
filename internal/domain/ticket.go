package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketType enumerates the kind of request a ticket represents. The type
// only selects descriptive hints on the client; it has no workflow effect.
type TicketType string

const (
	TicketTypeQuestion    TicketType = "question"
	TicketTypeBug         TicketType = "bug"
	TicketTypeDevelopment TicketType = "development"
)

// Field length limits enforced before any write.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
)

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
	Type        TicketType
	DueDate     *time.Time
	Attachment  *string
	CreatedBy   string
	AssignedTo  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined user info, populated by list/get queries.
	Creator  *UserInfo
	Assignee *UserInfo
}

// ValidStatus reports whether the value belongs to the closed status set.
func ValidStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// ValidPriority reports whether the value belongs to the closed priority set.
func ValidPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// ValidType reports whether the value belongs to the closed type set.
func ValidType(t TicketType) bool {
	switch t {
	case TicketTypeQuestion, TicketTypeBug, TicketTypeDevelopment:
		return true
	}
	return false
}

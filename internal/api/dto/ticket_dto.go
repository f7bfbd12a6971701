package dto

import (
	"time"

	"github.com/diretrix/helpdesk/internal/domain"
	"github.com/diretrix/helpdesk/internal/presentation"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Type        domain.TicketType     `json:"type"`
	Priority    domain.TicketPriority `json:"priority,omitempty"`
	DueDate     *string               `json:"due_date,omitempty"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// UpdateAssigneeRequest payload. A null assigned_to clears the assignee.
type UpdateAssigneeRequest struct {
	AssignedTo *string `json:"assigned_to"`
}

// UserInfoResponse is the joined creator/assignee display subset.
type UserInfoResponse struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// TicketResponse carries the record plus the display metadata the views
// need, so every client renders labels and the overdue flag identically.
type TicketResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Status       domain.TicketStatus   `json:"status"`
	StatusInfo   presentation.Config   `json:"status_info"`
	Priority     domain.TicketPriority `json:"priority"`
	Type         domain.TicketType     `json:"type"`
	TypeInfo     presentation.Config   `json:"type_info"`
	DueDate      string                `json:"due_date,omitempty"`
	Overdue      bool                  `json:"overdue"`
	Attachment   *string               `json:"attachment,omitempty"`
	CreatedBy    string                `json:"created_by"`
	AssignedTo   *string               `json:"assigned_to,omitempty"`
	Creator      *UserInfoResponse     `json:"created_by_user,omitempty"`
	Assignee     *UserInfoResponse     `json:"assigned_to_user,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	CreatedLabel string                `json:"created_at_label"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ActivityResponse is one audit trail entry.
type ActivityResponse struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	Action    domain.ActivityAction `json:"action"`
	Metadata  map[string]any        `json:"metadata,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// NewTicketResponse derives the response for one ticket at the given
// instant. The overdue flag depends on now, so callers pass it per request.
func NewTicketResponse(ticket *domain.Ticket, now time.Time) TicketResponse {
	statusInfo, _ := presentation.StatusConfig(ticket.Status)
	resp := TicketResponse{
		ID:           ticket.ID,
		Title:        ticket.Title,
		Description:  ticket.Description,
		Status:       ticket.Status,
		StatusInfo:   statusInfo,
		Priority:     ticket.Priority,
		Type:         ticket.Type,
		TypeInfo:     presentation.TypeConfig(ticket.Type),
		DueDate:      presentation.FormatDueDate(ticket.DueDate),
		Overdue:      presentation.IsOverdue(ticket, now),
		Attachment:   ticket.Attachment,
		CreatedBy:    ticket.CreatedBy,
		AssignedTo:   ticket.AssignedTo,
		CreatedAt:    ticket.CreatedAt,
		CreatedLabel: presentation.FormatDate(ticket.CreatedAt, false),
		UpdatedAt:    ticket.UpdatedAt,
	}
	if ticket.Creator != nil {
		resp.Creator = &UserInfoResponse{Name: ticket.Creator.Name, Email: ticket.Creator.Email, Role: ticket.Creator.Role}
	}
	if ticket.Assignee != nil {
		resp.Assignee = &UserInfoResponse{Name: ticket.Assignee.Name, Email: ticket.Assignee.Email, Role: ticket.Assignee.Role}
	}
	return resp
}

// NewActivityResponses converts audit entries.
func NewActivityResponses(entries []domain.ActivityLog) []ActivityResponse {
	resp := make([]ActivityResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, ActivityResponse{
			ID:        entry.ID,
			UserID:    entry.UserID,
			Action:    entry.Action,
			Metadata:  entry.Metadata,
			CreatedAt: entry.CreatedAt,
		})
	}
	return resp
}

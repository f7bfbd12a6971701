package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/diretrix/helpdesk/internal/domain"
	"github.com/diretrix/helpdesk/internal/events"
	"github.com/diretrix/helpdesk/internal/presentation"
	"github.com/diretrix/helpdesk/internal/repository"
	"github.com/diretrix/helpdesk/internal/storage"
	apperrors "github.com/diretrix/helpdesk/pkg/util"
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets     repository.TicketRepository
	users       repository.UserRepository
	activity    repository.ActivityRepository
	attachments storage.AttachmentStore
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// TicketDependencies bundles collaborators for ticket service.
type TicketDependencies struct {
	TicketRepo      repository.TicketRepository
	UserRepo        repository.UserRepository
	ActivityRepo    repository.ActivityRepository
	AttachmentStore storage.AttachmentStore
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
}

// TicketCreateInput describes the creator-supplied subset of a ticket.
type TicketCreateInput struct {
	Title       string
	Description string
	Type        domain.TicketType
	Priority    domain.TicketPriority
	DueDate     *time.Time
}

// TicketListQuery describes list filters. Type and Status accept "all" or
// empty to disable the criterion; Search matches title, description and
// creator name case-insensitively.
type TicketListQuery struct {
	Search string
	Type   string
	Status string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:     deps.TicketRepo,
		users:       deps.UserRepo,
		activity:    deps.ActivityRepo,
		attachments: deps.AttachmentStore,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
	}
}

// CreateTicket validates the payload and creates a ticket for the user.
// The ticket row and its ticket_created activity entry are written in one
// transaction; status is always open and priority defaults to medium.
func (s *TicketService) CreateTicket(ctx context.Context, user *domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	details := map[string]any{}
	if title == "" {
		details["title"] = "required"
	} else if len([]rune(title)) > domain.MaxTitleLength {
		details["title"] = "too long"
	}
	if description == "" {
		details["description"] = "required"
	} else if len([]rune(description)) > domain.MaxDescriptionLength {
		details["description"] = "too long"
	}
	if !domain.ValidType(input.Type) {
		details["type"] = "must be question, bug or development"
	}
	if input.Priority != "" && !domain.ValidPriority(input.Priority) {
		details["priority"] = "must be low, medium, high or urgent"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid ticket payload", details)
	}

	ticket := &domain.Ticket{
		Title:       title,
		Description: description,
		Status:      domain.TicketStatusOpen,
		Priority:    input.Priority,
		Type:        input.Type,
		DueDate:     input.DueDate,
		CreatedBy:   user.ID,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}

	if err := s.tickets.CreateWithActivity(ctx, ticket); err != nil {
		return nil, err
	}
	creator := user.Info()
	ticket.Creator = &creator

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  user.ID,
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			Type:     ticket.Type,
			Priority: ticket.Priority,
			DueDate:  ticket.DueDate,
		},
	})
	return ticket, nil
}

// ListTickets returns the visible ticket set for the caller, newest first.
// Clients only see their own tickets; admins see everything. Type and
// status are pushed down to SQL, the free-text search runs through the
// presentation filter so it also covers creator display names.
func (s *TicketService) ListTickets(ctx context.Context, user *domain.User, query TicketListQuery) ([]domain.Ticket, error) {
	filter := repository.TicketFilter{}
	if user.Role != domain.UserRoleAdmin {
		createdBy := user.ID
		filter.CreatedBy = &createdBy
	}
	if query.Status != "" && query.Status != presentation.FilterAll {
		status := domain.TicketStatus(query.Status)
		if !domain.ValidStatus(status) {
			return nil, apperrors.NewValidationError("invalid status filter", nil)
		}
		filter.Status = &status
	}
	if query.Type != "" && query.Type != presentation.FilterAll {
		ticketType := domain.TicketType(query.Type)
		if !domain.ValidType(ticketType) {
			return nil, apperrors.NewValidationError("invalid type filter", nil)
		}
		filter.Type = &ticketType
	}

	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if query.Search != "" {
		tickets = presentation.Filter(tickets, query.Search, presentation.FilterAll, presentation.FilterAll)
	}
	return tickets, nil
}

// GetTicket fetches a single ticket enforcing ownership for clients.
func (s *TicketService) GetTicket(ctx context.Context, user *domain.User, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.UserRoleAdmin && ticket.CreatedBy != user.ID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return ticket, nil
}

// UpdateStatus transitions a ticket to any of the three status values.
// Transitions are unconstrained in direction; only membership in the enum
// is checked. The status_changed activity entry is best-effort: a logging
// failure after the update succeeded is warned about and swallowed.
func (s *TicketService) UpdateStatus(ctx context.Context, actor *domain.User, ticketID string, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, apperrors.NewValidationError("invalid status", nil)
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	oldStatus := ticket.Status
	if err := s.tickets.UpdateStatus(ctx, ticketID, newStatus); err != nil {
		return nil, err
	}

	s.logActivity(ctx, &domain.ActivityLog{
		TicketID: ticketID,
		UserID:   actor.ID,
		Action:   domain.ActivityStatusChanged,
		Metadata: map[string]any{"new_status": newStatus},
	})
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticketID,
		ActorID:  actor.ID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return s.tickets.GetByID(ctx, ticketID)
}

// AssignTicket sets or clears the assignee. Same best-effort activity
// logging policy as UpdateStatus.
func (s *TicketService) AssignTicket(ctx context.Context, actor *domain.User, ticketID string, assignedTo *string) (*domain.Ticket, error) {
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		return nil, err
	}
	if assignedTo != nil {
		if _, err := s.users.GetByID(ctx, *assignedTo); err != nil {
			return nil, apperrors.NewValidationError("assignee does not exist", nil)
		}
	}
	if err := s.tickets.UpdateAssignee(ctx, ticketID, assignedTo); err != nil {
		return nil, err
	}

	if assignedTo != nil {
		s.logActivity(ctx, &domain.ActivityLog{
			TicketID: ticketID,
			UserID:   actor.ID,
			Action:   domain.ActivityAssigned,
			Metadata: map[string]any{"assigned_to": *assignedTo},
		})
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticketID,
		ActorID:  actor.ID,
		Payload:  events.TicketAssignedPayload{AssignedTo: assignedTo},
	})
	return s.tickets.GetByID(ctx, ticketID)
}

// ListActivity returns the audit trail for a ticket the caller may see.
func (s *TicketService) ListActivity(ctx context.Context, user *domain.User, ticketID string) ([]domain.ActivityLog, error) {
	if _, err := s.GetTicket(ctx, user, ticketID); err != nil {
		return nil, err
	}
	return s.activity.ListByTicket(ctx, ticketID)
}

// UploadAttachment stores the blob under the ticket's path and records the
// storage key on the ticket. Only the creator or an admin may attach.
func (s *TicketService) UploadAttachment(ctx context.Context, user *domain.User, ticketID, contentType string, data []byte) (string, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return "", err
	}
	if user.Role != domain.UserRoleAdmin && ticket.CreatedBy != user.ID {
		return "", apperrors.NewForbidden("access denied")
	}
	key, err := s.attachments.Put(ctx, ticketID, contentType, data)
	if err != nil {
		return "", err
	}
	if err := s.tickets.SetAttachment(ctx, ticketID, &key); err != nil {
		return "", err
	}
	return key, nil
}

// DownloadAttachment fetches the ticket's blob.
func (s *TicketService) DownloadAttachment(ctx context.Context, user *domain.User, ticketID string) ([]byte, string, error) {
	ticket, err := s.GetTicket(ctx, user, ticketID)
	if err != nil {
		return nil, "", err
	}
	if ticket.Attachment == nil {
		return nil, "", apperrors.NewNotFound("attachment", nil)
	}
	data, contentType, err := s.attachments.Get(ctx, *ticket.Attachment)
	if err != nil {
		if err == storage.ErrAttachmentNotFound {
			return nil, "", apperrors.NewNotFound("attachment", nil)
		}
		return nil, "", err
	}
	return data, contentType, nil
}

func (s *TicketService) logActivity(ctx context.Context, entry *domain.ActivityLog) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Create(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("activity log write failed",
			zap.String("ticket_id", entry.TicketID),
			zap.String("action", string(entry.Action)),
			zap.Error(err))
	}
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

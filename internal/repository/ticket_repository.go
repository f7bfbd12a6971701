package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diretrix/helpdesk/internal/domain"
)

// TicketFilter captures listing criteria pushed down to SQL. Free-text
// search over the creator's display name stays in the presentation layer;
// here search covers title and description only, like the backing store's
// query interface did.
type TicketFilter struct {
	Status     *domain.TicketStatus
	Type       *domain.TicketType
	CreatedBy  *string
	AssignedTo *string
	SearchTerm *string
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	// CreateWithActivity inserts the ticket and its ticket_created activity
	// entry in one transaction, mirroring the original atomic procedure.
	CreateWithActivity(ctx context.Context, ticket *domain.Ticket) error
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error
	UpdateAssignee(ctx context.Context, id string, assignedTo *string) error
	SetAttachment(ctx context.Context, id string, key *string) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `
        t.id, t.title, t.description, t.status, t.priority, t.type,
        t.due_date, t.attachment, t.created_by, t.assigned_to, t.created_at, t.updated_at,
        cu.name, cu.email, cu.role,
        au.name, au.email, au.role`

const ticketJoins = `
        FROM tickets t
        JOIN users cu ON cu.id = t.created_by
        LEFT JOIN users au ON au.id = t.assigned_to`

func (r *ticketRepository) CreateWithActivity(ctx context.Context, ticket *domain.Ticket) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertTicket = `
        INSERT INTO tickets (title, description, status, priority, type, due_date, attachment, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, insertTicket,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.Type,
		ticket.DueDate,
		ticket.Attachment,
		ticket.CreatedBy,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt); err != nil {
		return err
	}

	meta, err := json.Marshal(map[string]any{"title": ticket.Title, "type": ticket.Type})
	if err != nil {
		return err
	}
	const insertActivity = `
        INSERT INTO activity_logs (ticket_id, user_id, action, metadata)
        VALUES ($1,$2,$3,$4)`
	if _, err := tx.Exec(ctx, insertActivity, ticket.ID, ticket.CreatedBy, domain.ActivityTicketCreated, meta); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	const query = `UPDATE tickets SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) UpdateAssignee(ctx context.Context, id string, assignedTo *string) error {
	const query = `UPDATE tickets SET assigned_to=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, assignedTo, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) SetAttachment(ctx context.Context, id string, key *string) error {
	const query = `UPDATE tickets SET attachment=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, key, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ticketJoins + ` WHERE t.id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	ticket, err := scanTicket(row)
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("t.status=$%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("t.type=$%d", len(args)))
	}
	if filter.CreatedBy != nil {
		args = append(args, *filter.CreatedBy)
		clauses = append(clauses, fmt.Sprintf("t.created_by=$%d", len(args)))
	}
	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		clauses = append(clauses, fmt.Sprintf("t.assigned_to=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(t.title) LIKE %s OR LOWER(t.description) LIKE %s)", placeholder, placeholder))
	}

	query := fmt.Sprintf(`SELECT %s %s WHERE %s ORDER BY t.created_at DESC`,
		ticketColumns, ticketJoins, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var (
		ticket        domain.Ticket
		creatorName   string
		creatorEmail  string
		creatorRole   domain.UserRole
		assigneeName  *string
		assigneeEmail *string
		assigneeRole  *domain.UserRole
	)
	if err := row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Status,
		&ticket.Priority,
		&ticket.Type,
		&ticket.DueDate,
		&ticket.Attachment,
		&ticket.CreatedBy,
		&ticket.AssignedTo,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&creatorName,
		&creatorEmail,
		&creatorRole,
		&assigneeName,
		&assigneeEmail,
		&assigneeRole,
	); err != nil {
		return nil, err
	}
	ticket.Creator = &domain.UserInfo{Name: creatorName, Email: creatorEmail, Role: creatorRole}
	if assigneeName != nil && assigneeEmail != nil && assigneeRole != nil {
		ticket.Assignee = &domain.UserInfo{Name: *assigneeName, Email: *assigneeEmail, Role: *assigneeRole}
	}
	return &ticket, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diretrix/helpdesk/internal/domain"
)

// ActivityRepository stores the append-only audit trail.
type ActivityRepository interface {
	Create(ctx context.Context, entry *domain.ActivityLog) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.ActivityLog, error)
}

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository builds repository.
func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) Create(ctx context.Context, entry *domain.ActivityLog) error {
	meta, err := json.Marshal(entry.Metadata)
	if err != nil {
		return err
	}
	const query = `
        INSERT INTO activity_logs (ticket_id, user_id, action, metadata)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.TicketID,
		entry.UserID,
		entry.Action,
		meta,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *activityRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.ActivityLog, error) {
	const query = `
        SELECT id, ticket_id, user_id, action, metadata, created_at
        FROM activity_logs WHERE ticket_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ActivityLog
	for rows.Next() {
		var (
			entry domain.ActivityLog
			meta  []byte
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.TicketID,
			&entry.UserID,
			&entry.Action,
			&meta,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &entry.Metadata); err != nil {
				return nil, err
			}
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

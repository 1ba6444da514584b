package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dashboard-metrics-service/internal/activity/core/domain"
	"dashboard-metrics-service/internal/activity/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ActivityRepository struct {
	db DB
}

func NewActivityRepository(db DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

var _ ports.ActivityRepositoryPort = (*ActivityRepository)(nil)

const insertActivitySQL = `
INSERT INTO activity_events (
    id,
    event_type,
    message,
    agent_id,
    task_id,
    created_at
) VALUES (
    $1, $2, $3, $4, $5, $6
)
ON CONFLICT (id) DO NOTHING;
`

const listActivitySQL = `
SELECT id, event_type, message, agent_id, task_id, created_at
FROM activity_events
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2`

const listTaskCommentsSQL = `
SELECT
    e.id,
    e.created_at,
    e.message,
    e.agent_id,
    a.name,
    a.role,
    t.id,
    t.title,
    b.id,
    b.name
FROM activity_events e
JOIN tasks t ON t.id = e.task_id
JOIN boards b ON b.id = t.board_id
LEFT JOIN agents a ON a.id = e.agent_id
WHERE e.event_type = $1`

func (r *ActivityRepository) InsertEvent(ctx context.Context, e *domain.ActivityEvent) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertActivitySQL,
		e.ID,
		e.EventType,
		nullString(e.Message),
		nullUUID(e.AgentID),
		nullUUID(e.TaskID),
		e.CreatedAt,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 -> id already present (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func (r *ActivityRepository) ListEvents(ctx context.Context, f ports.ListFilter) ([]domain.ActivityEvent, error) {
	rows, err := r.db.QueryContext(ctx, listActivitySQL, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ActivityEvent, 0, f.Limit)
	for rows.Next() {
		var (
			e       domain.ActivityEvent
			message sql.NullString
			agentID uuid.NullUUID
			taskID  uuid.NullUUID
		)

		if err := rows.Scan(&e.ID, &e.EventType, &message, &agentID, &taskID, &e.CreatedAt); err != nil {
			return nil, err
		}

		e.Message = stringPtr(message)
		e.AgentID = uuidPtr(agentID)
		e.TaskID = uuidPtr(taskID)
		e.CreatedAt = e.CreatedAt.UTC()

		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ActivityRepository) ListTaskComments(ctx context.Context, f ports.TaskCommentFilter) ([]domain.TaskCommentFeedItem, error) {
	query := listTaskCommentsSQL
	args := []any{domain.EventTypeTaskComment}
	argIndex := 2

	if len(f.BoardIDs) > 0 {
		ids := make([]string, len(f.BoardIDs))
		for i, id := range f.BoardIDs {
			ids[i] = id.String()
		}
		query += fmt.Sprintf(" AND b.id = ANY($%d::uuid[])", argIndex)
		args = append(args, pq.Array(ids))
		argIndex++
	}

	query += fmt.Sprintf("\nORDER BY e.created_at DESC, e.id\nLIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.TaskCommentFeedItem, 0, f.Limit)
	for rows.Next() {
		var (
			item      domain.TaskCommentFeedItem
			message   sql.NullString
			agentID   uuid.NullUUID
			agentName sql.NullString
			agentRole sql.NullString
		)

		if err := rows.Scan(
			&item.ID,
			&item.CreatedAt,
			&message,
			&agentID,
			&agentName,
			&agentRole,
			&item.TaskID,
			&item.TaskTitle,
			&item.BoardID,
			&item.BoardName,
		); err != nil {
			return nil, err
		}

		item.Message = stringPtr(message)
		item.AgentID = uuidPtr(agentID)
		item.AgentName = stringPtr(agentName)
		item.AgentRole = stringPtr(agentRole)
		item.CreatedAt = item.CreatedAt.UTC()

		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func uuidPtr(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	v := id.UUID
	return &v
}

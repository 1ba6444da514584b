package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventTypeTaskComment marks activity rows that are comments on a task.
const EventTypeTaskComment = "task.comment"

type ActivityEvent struct {
	ID        uuid.UUID
	EventType string
	Message   *string
	AgentID   *uuid.UUID
	TaskID    *uuid.UUID
	CreatedAt time.Time
}

// TaskCommentFeedItem is a task comment joined with its task, board and author.
type TaskCommentFeedItem struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Message   *string
	AgentID   *uuid.UUID
	AgentName *string
	AgentRole *string
	TaskID    uuid.UUID
	TaskTitle string
	BoardID   uuid.UUID
	BoardName string
}

package fiber

import (
	"time"

	"dashboard-metrics-service/internal/activity/core/domain"

	"github.com/google/uuid"
)

// CreateActivityRequest represents an activity event payload
// @Description Activity event creation DTO
type CreateActivityRequest struct {
	ID        string  `json:"id"`
	EventType string  `json:"event_type" example:"task.run.failed"`
	Message   *string `json:"message"`
	AgentID   string  `json:"agent_id"`
	TaskID    string  `json:"task_id"`
	CreatedAt int64   `json:"created_at"` // unix seconds, optional
}

type CreateActivityResponse struct {
	Status string                `json:"status"`
	Event  ActivityEventResponse `json:"event"`
}

type BulkCreateActivityRequest struct {
	Events []CreateActivityRequest `json:"events"`
}

type BulkCreateActivityResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ActivityEventResponse struct {
	ID        uuid.UUID  `json:"id"`
	EventType string     `json:"event_type"`
	Message   *string    `json:"message"`
	AgentID   *uuid.UUID `json:"agent_id"`
	TaskID    *uuid.UUID `json:"task_id"`
	CreatedAt time.Time  `json:"created_at"`
}

type TaskCommentFeedItemResponse struct {
	ID        uuid.UUID  `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Message   *string    `json:"message"`
	AgentID   *uuid.UUID `json:"agent_id"`
	AgentName *string    `json:"agent_name"`
	AgentRole *string    `json:"agent_role"`
	TaskID    uuid.UUID  `json:"task_id"`
	TaskTitle string     `json:"task_title"`
	BoardID   uuid.UUID  `json:"board_id"`
	BoardName string     `json:"board_name"`
}

type ActivityPageResponse struct {
	Items  []ActivityEventResponse `json:"items"`
	Limit  int                     `json:"limit"`
	Offset int                     `json:"offset"`
}

type TaskCommentPageResponse struct {
	Items  []TaskCommentFeedItemResponse `json:"items"`
	Limit  int                           `json:"limit"`
	Offset int                           `json:"offset"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_activity"`
	Message string `json:"message,omitempty" example:"invalid activity event"`
}

func toEventResponse(e domain.ActivityEvent) ActivityEventResponse {
	return ActivityEventResponse{
		ID:        e.ID,
		EventType: e.EventType,
		Message:   e.Message,
		AgentID:   e.AgentID,
		TaskID:    e.TaskID,
		CreatedAt: e.CreatedAt,
	}
}

func toCommentResponse(it domain.TaskCommentFeedItem) TaskCommentFeedItemResponse {
	return TaskCommentFeedItemResponse{
		ID:        it.ID,
		CreatedAt: it.CreatedAt,
		Message:   it.Message,
		AgentID:   it.AgentID,
		AgentName: it.AgentName,
		AgentRole: it.AgentRole,
		TaskID:    it.TaskID,
		TaskTitle: it.TaskTitle,
		BoardID:   it.BoardID,
		BoardName: it.BoardName,
	}
}

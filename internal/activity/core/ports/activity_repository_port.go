package ports

import (
	"context"

	"dashboard-metrics-service/internal/activity/core/domain"

	"github.com/google/uuid"
)

type ListFilter struct {
	Limit  int
	Offset int
}

type TaskCommentFilter struct {
	BoardIDs []uuid.UUID // empty -> all boards
	Limit    int
	Offset   int
}

type ActivityRepositoryPort interface {
	// InsertEvent:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> id already stored (idempotent retry)
	//   created = false, err != nil -> DB error
	InsertEvent(ctx context.Context, e *domain.ActivityEvent) (created bool, err error)

	// ListEvents returns events newest first.
	ListEvents(ctx context.Context, f ListFilter) ([]domain.ActivityEvent, error)

	ListTaskComments(ctx context.Context, f TaskCommentFilter) ([]domain.TaskCommentFeedItem, error)
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"dashboard-metrics-service/internal/activity/core/domain"
	"dashboard-metrics-service/internal/activity/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidActivity = errors.New("invalid activity event")
	ErrInvalidID       = errors.New("invalid uuid")
	ErrFutureTime      = errors.New("created_at cannot be in the future")
)

type RecordActivityUseCase struct {
	repo ports.ActivityRepositoryPort
	now  func() time.Time
}

func NewRecordActivityUseCase(repo ports.ActivityRepositoryPort, now func() time.Time) *RecordActivityUseCase {
	if now == nil {
		now = time.Now
	}
	return &RecordActivityUseCase{repo: repo, now: now}
}

type RecordActivityInput struct {
	ID        string // optional; retries with the same id are no-ops
	EventType string
	Message   *string
	AgentID   string
	TaskID    string
	CreatedAt int64 // unix seconds, 0 -> now
}

type RecordActivityResult struct {
	Event   *domain.ActivityEvent
	Created bool
}

func (uc *RecordActivityUseCase) Execute(ctx context.Context, in RecordActivityInput) (RecordActivityResult, error) {
	e, err := uc.buildEvent(in)
	if err != nil {
		return RecordActivityResult{}, err
	}

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return RecordActivityResult{}, err
	}

	return RecordActivityResult{Event: e, Created: created}, nil
}

type BulkRecordActivityInput struct {
	Events []RecordActivityInput
}

type BulkRecordActivityResult struct {
	Created    int
	Duplicates int
}

// BulkRecord validates every event before the first insert.
func (uc *RecordActivityUseCase) BulkRecord(ctx context.Context, in BulkRecordActivityInput) (BulkRecordActivityResult, error) {
	var res BulkRecordActivityResult

	events := make([]*domain.ActivityEvent, 0, len(in.Events))
	for _, ev := range in.Events {
		e, err := uc.buildEvent(ev)
		if err != nil {
			return res, err
		}
		events = append(events, e)
	}

	for _, e := range events {
		ok, err := uc.repo.InsertEvent(ctx, e)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *RecordActivityUseCase) buildEvent(in RecordActivityInput) (*domain.ActivityEvent, error) {
	eventType := strings.TrimSpace(in.EventType)
	if eventType == "" {
		return nil, ErrInvalidActivity
	}

	now := uc.now().UTC()
	createdAt := now
	if in.CreatedAt != 0 {
		createdAt = time.Unix(in.CreatedAt, 0).UTC()
		if createdAt.After(now) {
			return nil, ErrFutureTime
		}
	}

	id := uuid.New()
	if in.ID != "" {
		parsed, err := uuid.Parse(in.ID)
		if err != nil {
			return nil, ErrInvalidID
		}
		id = parsed
	}

	agentID, err := parseOptionalUUID(in.AgentID)
	if err != nil {
		return nil, err
	}
	taskID, err := parseOptionalUUID(in.TaskID)
	if err != nil {
		return nil, err
	}

	if eventType == domain.EventTypeTaskComment && taskID == nil {
		return nil, ErrInvalidActivity
	}

	return &domain.ActivityEvent{
		ID:        id,
		EventType: eventType,
		Message:   in.Message,
		AgentID:   agentID,
		TaskID:    taskID,
		CreatedAt: createdAt,
	}, nil
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, ErrInvalidID
	}
	return &id, nil
}

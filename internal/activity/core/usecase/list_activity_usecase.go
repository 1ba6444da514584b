package usecase

import (
	"context"
	"errors"

	"dashboard-metrics-service/internal/activity/core/domain"
	"dashboard-metrics-service/internal/activity/core/ports"

	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

var ErrInvalidPagination = errors.New("invalid pagination")

type ListActivityUseCase struct {
	repo ports.ActivityRepositoryPort
}

func NewListActivityUseCase(repo ports.ActivityRepositoryPort) *ListActivityUseCase {
	return &ListActivityUseCase{repo: repo}
}

type ListActivityInput struct {
	Limit  int // 0 -> DefaultPageLimit
	Offset int
}

type ListTaskCommentsInput struct {
	BoardIDs []string
	Limit    int
	Offset   int
}

// Page echoes the effective pagination next to the items.
type Page[T any] struct {
	Items  []T
	Limit  int
	Offset int
}

func (uc *ListActivityUseCase) List(ctx context.Context, in ListActivityInput) (*Page[domain.ActivityEvent], error) {
	limit, err := normalizePage(in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}

	items, err := uc.repo.ListEvents(ctx, ports.ListFilter{Limit: limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}

	return &Page[domain.ActivityEvent]{Items: items, Limit: limit, Offset: in.Offset}, nil
}

func (uc *ListActivityUseCase) ListTaskComments(ctx context.Context, in ListTaskCommentsInput) (*Page[domain.TaskCommentFeedItem], error) {
	limit, err := normalizePage(in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}

	boardIDs := make([]uuid.UUID, 0, len(in.BoardIDs))
	for _, raw := range in.BoardIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrInvalidID
		}
		boardIDs = append(boardIDs, id)
	}

	items, err := uc.repo.ListTaskComments(ctx, ports.TaskCommentFilter{
		BoardIDs: boardIDs,
		Limit:    limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &Page[domain.TaskCommentFeedItem]{Items: items, Limit: limit, Offset: in.Offset}, nil
}

func normalizePage(limit, offset int) (int, error) {
	if limit < 0 || offset < 0 {
		return 0, ErrInvalidPagination
	}
	if limit == 0 {
		return DefaultPageLimit, nil
	}
	if limit > MaxPageLimit {
		return MaxPageLimit, nil
	}
	return limit, nil
}

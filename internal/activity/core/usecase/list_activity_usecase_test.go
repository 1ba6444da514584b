package usecase_test

import (
	"context"
	"errors"
	"testing"

	"dashboard-metrics-service/internal/activity/core/domain"
	"dashboard-metrics-service/internal/activity/core/ports"
	"dashboard-metrics-service/internal/activity/core/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActivity_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		offset    int
		wantLimit int
	}{
		{"default", 0, 0, usecase.DefaultPageLimit},
		{"explicit", 20, 40, 20},
		{"capped", 1000, 0, usecase.MaxPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeActivityRepo{}
			uc := usecase.NewListActivityUseCase(repo)

			page, err := uc.List(context.Background(), usecase.ListActivityInput{Limit: tt.limit, Offset: tt.offset})
			require.NoError(t, err)

			assert.Equal(t, tt.wantLimit, page.Limit)
			assert.Equal(t, tt.offset, page.Offset)
			assert.Equal(t, ports.ListFilter{Limit: tt.wantLimit, Offset: tt.offset}, repo.lastList)
		})
	}
}

func TestListActivity_InvalidPagination(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := usecase.NewListActivityUseCase(repo)

	_, err := uc.List(context.Background(), usecase.ListActivityInput{Offset: -1})
	assert.ErrorIs(t, err, usecase.ErrInvalidPagination)

	_, err = uc.ListTaskComments(context.Background(), usecase.ListTaskCommentsInput{Limit: -5})
	assert.ErrorIs(t, err, usecase.ErrInvalidPagination)

	assert.False(t, repo.listCalled)
	assert.False(t, repo.commentsCalled)
}

func TestListActivity_ReturnsItems(t *testing.T) {
	id := uuid.New()
	repo := &fakeActivityRepo{
		ListFn: func(ctx context.Context, f ports.ListFilter) ([]domain.ActivityEvent, error) {
			return []domain.ActivityEvent{{ID: id, EventType: "task.created"}}, nil
		},
	}
	uc := usecase.NewListActivityUseCase(repo)

	page, err := uc.List(context.Background(), usecase.ListActivityInput{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, id, page.Items[0].ID)
}

func TestListTaskComments_ParsesBoardIDs(t *testing.T) {
	board := uuid.New()
	repo := &fakeActivityRepo{}
	uc := usecase.NewListActivityUseCase(repo)

	_, err := uc.ListTaskComments(context.Background(), usecase.ListTaskCommentsInput{
		BoardIDs: []string{board.String()},
		Limit:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{board}, repo.lastComments.BoardIDs)
	assert.Equal(t, 10, repo.lastComments.Limit)
}

func TestListTaskComments_InvalidBoardID(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := usecase.NewListActivityUseCase(repo)

	_, err := uc.ListTaskComments(context.Background(), usecase.ListTaskCommentsInput{BoardIDs: []string{"board-1"}})
	assert.ErrorIs(t, err, usecase.ErrInvalidID)
	assert.False(t, repo.commentsCalled)
}

func TestListTaskComments_RepositoryError(t *testing.T) {
	repo := &fakeActivityRepo{
		CommentsFn: func(ctx context.Context, f ports.TaskCommentFilter) ([]domain.TaskCommentFeedItem, error) {
			return nil, errors.New("db failure")
		},
	}
	uc := usecase.NewListActivityUseCase(repo)

	page, err := uc.ListTaskComments(context.Background(), usecase.ListTaskCommentsInput{})
	assert.EqualError(t, err, "db failure")
	assert.Nil(t, page)
}

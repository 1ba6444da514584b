package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"dashboard-metrics-service/internal/activity/core/domain"
	"dashboard-metrics-service/internal/activity/core/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecordActivityUseCase interface {
	Execute(ctx context.Context, in usecase.RecordActivityInput) (usecase.RecordActivityResult, error)
	BulkRecord(ctx context.Context, in usecase.BulkRecordActivityInput) (usecase.BulkRecordActivityResult, error)
}

type ListActivityUseCase interface {
	List(ctx context.Context, in usecase.ListActivityInput) (*usecase.Page[domain.ActivityEvent], error)
	ListTaskComments(ctx context.Context, in usecase.ListTaskCommentsInput) (*usecase.Page[domain.TaskCommentFeedItem], error)
}

type ActivityHandler struct {
	recordUC RecordActivityUseCase
	listUC   ListActivityUseCase
	logger   *zap.Logger
}

func NewActivityHandler(recordUC RecordActivityUseCase, listUC ListActivityUseCase, logger *zap.Logger) *ActivityHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityHandler{recordUC: recordUC, listUC: listUC, logger: logger}
}

// CreateActivity godoc
// @Summary Record an activity event
// @Description Stores a single activity event; retries with the same id are reported as duplicates
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body CreateActivityRequest true "Activity payload"
// @Success 201 {object} CreateActivityResponse
// @Success 200 {object} CreateActivityResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/activity [post]
func (h *ActivityHandler) CreateActivity(c *fiber.Ctx) error {
	var req CreateActivityRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	res, err := h.recordUC.Execute(c.UserContext(), toRecordInput(req))
	if err != nil {
		return h.writeError(c, err)
	}

	status, code := "created", http.StatusCreated
	if !res.Created {
		status, code = "duplicate", http.StatusOK
	}

	return c.Status(code).JSON(CreateActivityResponse{
		Status: status,
		Event:  toEventResponse(*res.Event),
	})
}

// BulkCreateActivity godoc
// @Summary Bulk record activity events
// @Description Validates every event, then stores them one by one
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body BulkCreateActivityRequest true "Bulk activity payload"
// @Success 201 {object} BulkCreateActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/activity/bulk [post]
func (h *ActivityHandler) BulkCreateActivity(c *fiber.Ctx) error {
	var req BulkCreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	if len(req.Events) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "events_list_required"})
	}

	inputs := make([]usecase.RecordActivityInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = toRecordInput(e)
	}

	result, err := h.recordUC.BulkRecord(c.UserContext(), usecase.BulkRecordActivityInput{Events: inputs})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkCreateActivityResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

// ListActivity godoc
// @Summary List activity events
// @Description Newest first
// @Tags Activity
// @Produce json
// @Param limit query int false "Page size (max 200)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} ActivityPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/activity [get]
func (h *ActivityHandler) ListActivity(c *fiber.Ctx) error {
	limit, offset, ok := parsePage(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_pagination",
			Message: "limit and offset must be integers",
		})
	}

	page, err := h.listUC.List(c.UserContext(), usecase.ListActivityInput{Limit: limit, Offset: offset})
	if err != nil {
		return h.writeError(c, err)
	}

	resp := ActivityPageResponse{
		Items:  make([]ActivityEventResponse, 0, len(page.Items)),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, e := range page.Items {
		resp.Items = append(resp.Items, toEventResponse(e))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ListTaskComments godoc
// @Summary Task comment feed
// @Description Task comments enriched with task, board and agent fields, newest first
// @Tags Activity
// @Produce json
// @Param board_id query []string false "Board id filter (repeatable)" collectionFormat(multi)
// @Param limit query int false "Page size (max 200)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} TaskCommentPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/activity/task-comments [get]
func (h *ActivityHandler) ListTaskComments(c *fiber.Ctx) error {
	limit, offset, ok := parsePage(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_pagination",
			Message: "limit and offset must be integers",
		})
	}

	var boardIDs []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("board_id") {
		boardIDs = append(boardIDs, string(raw))
	}

	page, err := h.listUC.ListTaskComments(c.UserContext(), usecase.ListTaskCommentsInput{
		BoardIDs: boardIDs,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	resp := TaskCommentPageResponse{
		Items:  make([]TaskCommentFeedItemResponse, 0, len(page.Items)),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, it := range page.Items {
		resp.Items = append(resp.Items, toCommentResponse(it))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func (h *ActivityHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidActivity),
		errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_activity",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidPagination):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_pagination",
			Message: err.Error(),
		})
	default:
		h.logger.Error("activity request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toRecordInput(r CreateActivityRequest) usecase.RecordActivityInput {
	return usecase.RecordActivityInput{
		ID:        r.ID,
		EventType: r.EventType,
		Message:   r.Message,
		AgentID:   r.AgentID,
		TaskID:    r.TaskID,
		CreatedAt: r.CreatedAt,
	}
}

func parsePage(c *fiber.Ctx) (limit, offset int, ok bool) {
	var err error
	if s := c.Query("limit", ""); s != "" {
		if limit, err = strconv.Atoi(s); err != nil {
			return 0, 0, false
		}
	}
	if s := c.Query("offset", ""); s != "" {
		if offset, err = strconv.Atoi(s); err != nil {
			return 0, 0, false
		}
	}
	return limit, offset, true
}

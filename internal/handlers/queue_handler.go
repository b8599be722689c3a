package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/httpresp"
	"github.com/queueworks/queue-booking-api/internal/middleware"
	usecase "github.com/queueworks/queue-booking-api/internal/usecase/booking"
)

// QueueHandler is the admin side of the walk-in queue: inspect a branch/date
// partition and move it along.
type QueueHandler struct {
	repo       domain.Repository
	assignUC   *usecase.AssignQueue
	callNextUC *usecase.CallNext
	skipUC     *usecase.Skip
	completeUC *usecase.CompleteCurrent
}

func NewQueueHandler(
	repo domain.Repository,
	assignUC *usecase.AssignQueue,
	callNextUC *usecase.CallNext,
	skipUC *usecase.Skip,
	completeUC *usecase.CompleteCurrent,
) *QueueHandler {
	return &QueueHandler{
		repo:       repo,
		assignUC:   assignUC,
		callNextUC: callNextUC,
		skipUC:     skipUC,
		completeUC: completeUC,
	}
}

func (h *QueueHandler) partition(c *gin.Context) (branchID, date string, ok bool) {
	branchID = c.Query("branch_id")
	if branchID == "" {
		httperr.BadRequest(c, "branch_id_required", "branch_id query parameter is required")
		return "", "", false
	}

	date = c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return branchID, date, true
}

func (h *QueueHandler) Get(c *gin.Context) {
	branchID, date, ok := h.partition(c)
	if !ok {
		return
	}

	partition, err := h.repo.ListQueue(c.Request.Context(), branchID, date)
	if err != nil {
		httperr.Internal(c, "queue_load_failed", "could not load the queue")
		return
	}

	httpresp.List(c, partition)
}

func (h *QueueHandler) Assign(c *gin.Context) {
	actorID := c.GetString(middleware.ContextUserID)

	b, err := h.assignUC.Execute(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *QueueHandler) CallNext(c *gin.Context) {
	branchID, date, ok := h.partition(c)
	if !ok {
		return
	}

	actorID := c.GetString(middleware.ContextUserID)

	res, err := h.callNextUC.Execute(c.Request.Context(), actorID, branchID, date)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"completed": res.Completed,
		"started":   res.Started,
	})
}

func (h *QueueHandler) Skip(c *gin.Context) {
	branchID, date, ok := h.partition(c)
	if !ok {
		return
	}

	actorID := c.GetString(middleware.ContextUserID)

	res, err := h.skipUC.Execute(c.Request.Context(), actorID, branchID, date)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"started": res.Started,
	})
}

func (h *QueueHandler) Complete(c *gin.Context) {
	branchID, date, ok := h.partition(c)
	if !ok {
		return
	}

	actorID := c.GetString(middleware.ContextUserID)

	b, err := h.completeUC.Execute(c.Request.Context(), actorID, branchID, date)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/queueworks/queue-booking-api/internal/realtime"
)

type EventsHandler struct {
	hub *realtime.Hub
}

func NewEventsHandler(hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Subscribe streams booking change events over SSE until the client goes
// away. An optional branch_id narrows the stream to one branch.
func (h *EventsHandler) Subscribe(c *gin.Context) {
	client := &realtime.Client{
		ID:       uuid.NewString(),
		Send:     make(chan []byte, 16),
		BranchID: c.Query("branch_id"),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ctx := c.Request.Context()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return false
			}
			c.SSEvent("booking_change", string(msg))
			return true
		case <-ctx.Done():
			return false
		}
	})
}

package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/queueworks/queue-booking-api/internal/models"
)

// Event is the change notification payload. Subscribers re-fetch the
// affected listing; the payload only says what moved.
type Event struct {
	Table    string `json:"table"`
	Action   string `json:"action"`
	ID       string `json:"id"`
	BranchID string `json:"branch_id,omitempty"`
	Date     string `json:"date,omitempty"`
}

type Client struct {
	ID       string
	Send     chan []byte
	BranchID string // "" subscribes to every branch
}

type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		log:     log,
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	delete(h.clients, client.ID)
	close(client.Send)
}

// PublishBookingChange fans a booking mutation out to matching subscribers.
// Slow clients lose the message instead of blocking the writer.
func (h *Hub) PublishBookingChange(action string, b *models.Booking) {
	h.publish(Event{
		Table:    "bookings",
		Action:   action,
		ID:       b.ID,
		BranchID: b.BranchID,
		Date:     b.BookingDate,
	})
}

func (h *Hub) publish(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.log.Warn("event marshal failed", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if client.BranchID != "" && client.BranchID != ev.BranchID {
			continue
		}
		select {
		case client.Send <- payload:
		default:
			h.log.Debug("dropping event for slow client", zap.String("client", client.ID))
		}
	}
}

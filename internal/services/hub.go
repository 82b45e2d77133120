package services

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event names broadcast after successful writes.
const (
	EventChildCreated    = "child.created"
	EventChildUpdated    = "child.updated"
	EventDonorCreated    = "donor.created"
	EventDonationCreated = "donation.created"
	EventExpenseCreated  = "expense.created"
	EventActivityCreated = "activity.created"
	EventActivityUpdated = "activity.updated"
)

type DashboardEvent struct {
	Type string    `json:"type"`
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
}

// DashboardHub fans change notifications out to websocket subscribers.
// A nil hub accepts broadcasts and drops them.
type DashboardHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	ch      chan DashboardEvent
}

func NewDashboardHub() *DashboardHub {
	return &DashboardHub{
		clients: map[*websocket.Conn]struct{}{},
		ch:      make(chan DashboardEvent, 64),
	}
}

func (h *DashboardHub) Run(ctx context.Context) {
	for {
		select {
		case evt := <-h.ch:
			h.deliver(evt)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

func (h *DashboardHub) deliver(evt DashboardEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(evt); err != nil {
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}

func (h *DashboardHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

// Broadcast queues evt without blocking; events are dropped when the queue is full.
func (h *DashboardHub) Broadcast(evt DashboardEvent) {
	if h == nil {
		return
	}
	if evt.At.IsZero() {
		evt.At = time.Now().UTC()
	}
	select {
	case h.ch <- evt:
	default:
	}
}

func (h *DashboardHub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *DashboardHub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *DashboardHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

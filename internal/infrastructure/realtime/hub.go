package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Events pushed to advisor screens.
const (
	EventCatalogChanged = "catalog.changed"
	EventQuoteUpdated   = "quote.updated"
	EventSelection      = "session.selection"
	EventError          = "session.error"
)

// Envelope is the JSON frame exchanged over the socket.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// CatalogChangedPayload tells clients which collection changed.
type CatalogChangedPayload struct {
	Path string `json:"path"`
}

// changeCounter is satisfied by the Prometheus metrics.
type changeCounter interface {
	CatalogChanged(path catalog.Path)
}

// ErrClientBackedUp is returned when a client's outbound queue is full. The
// client is disconnected.
var ErrClientBackedUp = errors.New("realtime: client send queue full")

const (
	defaultWriteWait = 10 * time.Second
	sendQueueSize    = 32
)

// Hub tracks advisor sockets and fans catalog changes out to them. Writes go
// through a per-client queue drained by its own goroutine, so neither senders
// nor catalog writers ever wait on a socket.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]*client
	metrics   changeCounter
	writeWait time.Duration
}

type client struct {
	id              string
	conn            *websocket.Conn
	send            chan Envelope
	changes         chan catalog.Path
	done            chan struct{}
	closeOnce       sync.Once
	onCatalogChange func(catalog.Path)
}

func NewHub(metrics changeCounter) *Hub {
	return &Hub{clients: make(map[string]*client), metrics: metrics, writeWait: defaultWriteWait}
}

// Register adds a connection. onCatalogChange runs on the client's own
// goroutine after the change event has been queued, typically to reprice the
// session. Changes that arrive while a run is pending are coalesced into it.
func (h *Hub) Register(id string, conn *websocket.Conn, onCatalogChange func(catalog.Path)) {
	c := &client{
		id:              id,
		conn:            conn,
		send:            make(chan Envelope, sendQueueSize),
		changes:         make(chan catalog.Path, 1),
		done:            make(chan struct{}),
		onCatalogChange: onCatalogChange,
	}

	h.mu.Lock()
	old, replaced := h.clients[id]
	h.clients[id] = c
	h.mu.Unlock()
	if replaced {
		old.close()
	}

	go h.writeLoop(c)
	if onCatalogChange != nil {
		go c.hookLoop()
	}
}

func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	delete(h.clients, id)
	h.mu.Unlock()
	if ok {
		c.close()
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Send queues one event for a connected client. Unknown ids are a no-op.
func (h *Hub) Send(id, event string, payload any) error {
	h.mu.RLock()
	c, ok := h.clients[id]
	h.mu.RUnlock()
	if !ok {
		log.Debug().Str("client_id", id).Str("event", event).Msg("[realtime][hub] client not connected, event dropped")
		return nil
	}
	return h.enqueue(c, event, payload)
}

func (h *Hub) enqueue(c *client, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	select {
	case <-c.done:
		return nil
	default:
	}
	select {
	case c.send <- Envelope{Event: event, Data: data}:
		return nil
	default:
		log.Warn().Str("client_id", c.id).Str("event", event).Msg("[realtime][hub] send queue full, disconnecting client")
		h.remove(c)
		return ErrClientBackedUp
	}
}

func (h *Hub) writeLoop(c *client) {
	for {
		select {
		case <-c.done:
			return
		case env := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeWait))
			if err := c.conn.WriteJSON(env); err != nil {
				log.Warn().Err(err).Str("client_id", c.id).Str("event", env.Event).Msg("[realtime][hub] write failed, disconnecting client")
				h.remove(c)
				return
			}
		}
	}
}

func (c *client) hookLoop() {
	for {
		select {
		case <-c.done:
			return
		case path := <-c.changes:
			c.onCatalogChange(path)
		}
	}
}

// remove drops c if it is still the registered client for its id.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if cur, ok := h.clients[c.id]; ok && cur == c {
		delete(h.clients, c.id)
	}
	h.mu.Unlock()
	c.close()
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// CatalogChanged queues a change event for every client and schedules their
// hooks. It never blocks on a socket.
func (h *Hub) CatalogChanged(path catalog.Path) {
	if h.metrics != nil {
		h.metrics.CatalogChanged(path)
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := h.enqueue(c, EventCatalogChanged, CatalogChangedPayload{Path: path.String()}); err != nil {
			continue
		}
		if c.onCatalogChange == nil {
			continue
		}
		select {
		case c.changes <- path:
		default:
		}
	}
}

// Watch subscribes the hub to paths on store. The value each subscription
// delivers on registration is skipped; only later changes reach clients.
// The returned stop function removes every subscription.
func (h *Hub) Watch(ctx context.Context, store interfaces.ICatalogStore, paths []catalog.Path) (func(), error) {
	subs := make([]interfaces.Subscription, 0, len(paths))
	stop := func() {
		for _, s := range subs {
			if err := store.Unsubscribe(s); err != nil {
				log.Warn().Err(err).Str("path", s.Path.String()).Msg("[realtime][hub] unsubscribe failed")
			}
		}
	}

	for _, p := range paths {
		path := p
		primed := &atomic.Bool{}
		sub, err := store.Subscribe(ctx, path, func(json.RawMessage) {
			if !primed.Swap(true) {
				return
			}
			h.CatalogChanged(path)
		})
		if err != nil {
			stop()
			return nil, err
		}
		subs = append(subs, sub)
	}
	return stop, nil
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	response "cotizador_taller/internal/adapter/http/dto/response"
	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/infrastructure/realtime"
	"cotizador_taller/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// EventSessionCommand is the only inbound event; its data is a usecase.SessionCommand.
const EventSessionCommand = "session.command"

const repriceTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WSHandler runs live quoting sessions. Every accepted command and every
// catalog change reprices the session and pushes the new quote.
type WSHandler struct {
	hub    *realtime.Hub
	quotes usecase.IQuoteUseCase
}

func NewWSHandler(hub *realtime.Hub, quotes usecase.IQuoteUseCase) *WSHandler {
	return &WSHandler{hub: hub, quotes: quotes}
}

// liveSession is one connected advisor. mu serializes repricing so a quote
// computed from an older snapshot is never pushed after a newer one.
type liveSession struct {
	id      string
	session *usecase.QuoteSession
	mu      sync.Mutex
}

type sessionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *WSHandler) QuoteSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	id := uuid.NewString()
	live := &liveSession{id: id, session: usecase.NewQuoteSession(h.quotes)}
	h.hub.Register(id, conn, func(path catalog.Path) {
		ctx, cancel := context.WithTimeout(context.Background(), repriceTimeout)
		defer cancel()
		h.pushQuote(ctx, live)
	})
	defer h.hub.Unregister(id)
	log.Debug().Str("client_id", id).Msg("[quote][ws] session opened")

	h.push(id, realtime.EventSelection, live.session.Selection())
	h.pushQuote(c.Request.Context(), live)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Debug().Str("client_id", id).Msg("[quote][ws] session closed")
			return
		}
		var msg realtime.Envelope
		if err := json.Unmarshal(data, &msg); err != nil || msg.Event != EventSessionCommand {
			h.push(id, realtime.EventError, sessionError{Code: "INVALID_MESSAGE", Message: "Invalid message"})
			continue
		}
		var cmd usecase.SessionCommand
		if err := json.Unmarshal(msg.Data, &cmd); err != nil {
			h.push(id, realtime.EventError, sessionError{Code: "INVALID_MESSAGE", Message: "Invalid message"})
			continue
		}

		sel, err := live.session.Apply(cmd)
		if err != nil {
			h.push(id, realtime.EventError, mapSessionError(err))
			continue
		}
		h.push(id, realtime.EventSelection, sel)
		h.pushQuote(c.Request.Context(), live)
	}
}

func (h *WSHandler) pushQuote(ctx context.Context, live *liveSession) {
	live.mu.Lock()
	defer live.mu.Unlock()
	view, err := live.session.Quote(ctx)
	if err != nil {
		h.push(live.id, realtime.EventError, mapSessionError(err))
		return
	}
	h.push(live.id, realtime.EventQuoteUpdated, response.FromQuote(view))
}

func (h *WSHandler) push(id, event string, payload any) {
	if err := h.hub.Send(id, event, payload); err != nil {
		log.Warn().Err(err).Str("client_id", id).Str("event", event).Msg("[quote][ws] write failed")
	}
}

func mapSessionError(err error) sessionError {
	switch {
	case errors.Is(err, usecase.ErrUnknownSessionCommand):
		return sessionError{Code: "UNKNOWN_COMMAND", Message: "Unknown command"}
	case errors.Is(err, usecase.ErrInvalidServiceType):
		return sessionError{Code: "INVALID_SERVICE_TYPE", Message: "Invalid service type"}
	default:
		return sessionError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}
	}
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hrdash/hrdash-gateway-go/internal/handler/http/response"
	"github.com/hrdash/hrdash-gateway-go/internal/pkg/sse"
	"github.com/hrdash/hrdash-gateway-go/internal/session"
)

type SessionHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	hub      *sse.Hub
	sessions *session.Registry
}

func NewSessionHandler(hub *sse.Hub, sessions *session.Registry) SessionHandler {
	return &sessionHandlerImpl{hub: hub, sessions: sessions}
}

// Stream serves the session timer over SSE: an immediate snapshot, then one
// tick per second while the session is open. Closing the connection runs the
// hub cleanup, so a torn-down view leaks nothing.
func (h *sessionHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		response.Unauthorized(w, "employee_id not found in claims")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cleanup := h.hub.Subscribe(employeeID)
	defer cleanup()

	writeTick := func(tick session.Tick) {
		data, err := json.Marshal(tick)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", session.TickEvent, data)
		flusher.Flush()
	}

	writeTick(h.sessions.Snapshot(employeeID))

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-ch:
			if !open {
				return
			}
			if tick, ok := ev.Data.(session.Tick); ok {
				writeTick(tick)
			}
		}
	}
}

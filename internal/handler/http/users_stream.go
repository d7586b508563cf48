package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/gorilla/websocket"
)

const streamWriteTimeout = 10 * time.Second

// checkOrigin accepts clients that send no Origin (non-browser tools),
// same-host pages and the configured allow-list.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range h.allowedOrigins {
		if strings.EqualFold(strings.TrimSuffix(allowed, "/"), origin) {
			return true
		}
	}
	return false
}

// streamUsers upgrades to a websocket and writes the remote user list as a
// JSON array every time it changes, starting with the current snapshot. The
// subscription ends when the client disconnects.
func (h *Handler) streamUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	upgrader := websocket.Upgrader{CheckOrigin: h.checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sub := h.services.ProfileService.SubscribeUsers(ctx)
	defer sub.Unsubscribe()

	// the client only sends control frames; a read error means it is gone
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Debug().Err(err).Msg("users stream read error")
				}
				return
			}
		}
	}()

	log.Info().Msg("users stream opened")
	for users := range sub.Updates() {
		safe := make([]models.RemoteUser, len(users))
		for i, u := range users {
			safe[i] = u.WithoutSecrets()
		}

		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := conn.WriteJSON(safe); err != nil {
			log.Debug().Err(err).Msg("users stream write failed")
			return
		}
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	log.Info().Msg("users stream closed")
}

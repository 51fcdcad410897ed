package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"voldash/internal/metrics"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 5 * time.Second

// Heartbeat is the payload pushed to websocket clients.
type Heartbeat struct {
	SnapshotID  string `json:"snapshotId"`
	GeneratedAt string `json:"generatedAt"`
	LastUpdated string `json:"lastUpdated"`
}

func (s *Server) heartbeatNow() Heartbeat {
	return Heartbeat{
		SnapshotID:  s.table.ID(),
		GeneratedAt: s.table.GeneratedAt().Format(time.RFC3339Nano),
		LastUpdated: s.now().UTC().Format(time.RFC3339Nano),
	}
}

// handleStream sends a heartbeat on connect and then every interval until
// the client goes away or the request context ends.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	metrics.StreamClients.Inc()
	defer metrics.StreamClients.Dec()

	// Drain client frames so close and ping control messages are processed.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func() bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(s.heartbeatNow()) == nil
	}
	if !send() {
		return
	}

	ticker := time.NewTicker(s.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-r.Context().Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
				time.Now().Add(writeWait))
			return
		case <-gone:
			return
		case <-ticker.C:
			if !send() {
				return
			}
		}
	}
}

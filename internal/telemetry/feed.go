package telemetry

// #region imports
import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// #endregion

// #region feed

// Feed bridges the sink to live dashboard connections over websocket.
// Each client gets its own subscription; a slow or dead client is
// disconnected rather than allowed to stall anything upstream.
type Feed struct {
	sink     *Sink
	upgrader websocket.Upgrader
}

// NewFeed creates a websocket feed over the given sink.
func NewFeed(sink *Sink) *Feed {
	return &Feed{
		sink: sink,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Dashboard origins are enforced at the reverse proxy.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// #endregion feed

// #region serve

const (
	writeWait  = 5 * time.Second
	pingPeriod = 30 * time.Second
)

// ServeHTTP upgrades the connection and streams events until the client
// disconnects. Incoming messages are treated as heartbeats and answered.
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[TELEMETRY] upgrade failed: %v", err)
		return
	}

	events, cancel := f.sink.Subscribe()
	defer cancel()
	defer conn.Close()

	// Reader: disconnect detection. Incoming messages request a heartbeat,
	// written by the single writer loop below.
	done := make(chan struct{})
	beats := make(chan struct{}, 1)
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			select {
			case beats <- struct{}{}:
			default:
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				log.Printf("[TELEMETRY] marshal event: %v", err)
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-beats:
			beat, _ := json.Marshal(map[string]any{
				"type": "heartbeat",
				"at":   time.Now().UTC().Format(time.RFC3339),
			})
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, beat); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// #endregion serve

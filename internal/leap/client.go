package leap

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// DefaultServiceURL is the local WebSocket endpoint the tracking daemon
// listens on.
const DefaultServiceURL = "ws://127.0.0.1:6437/v6.json"

// gestureBuffer sizes the gesture channel. Gestures are sparse; the
// buffer only has to absorb a burst within one frame.
const gestureBuffer = 16

// Client is a Device backed by the tracking service's WebSocket protocol.
// The service pushes one JSON message per frame; the client decodes them
// and fans hands and gestures out onto the Frames and Gestures channels.
type Client struct {
	url       string
	sessionID string

	mu       sync.Mutex
	conn     *websocket.Conn
	running  bool
	frames   chan Frame
	gestures chan GestureEvent
	done     chan struct{}
}

// NewClient creates a client for the tracking service at the given URL.
// An empty URL selects DefaultServiceURL.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultServiceURL
	}
	return &Client{
		url:       url,
		sessionID: uuid.NewString(),
	}
}

// SessionID returns the identifier used to correlate this session's log
// lines.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Connect dials the tracking service and starts the read loop. Gestures
// are enabled and the session is marked focused so the service delivers
// events while other applications hold the foreground.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrDeviceUnavailable, c.url, err)
	}

	for _, msg := range []map[string]any{
		{"enableGestures": true},
		{"focused": true},
	} {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			return fmt.Errorf("%w: configure session: %v", ErrDeviceUnavailable, err)
		}
	}

	c.conn = conn
	c.running = true
	c.frames = make(chan Frame, 1)
	c.gestures = make(chan GestureEvent, gestureBuffer)
	c.done = make(chan struct{})

	log.Printf("leap: session %s connected to %s", c.sessionID, c.url)
	go c.readLoop(conn, c.frames, c.gestures, c.done)

	return nil
}

// Frames returns the frame channel. It is nil before Connect.
func (c *Client) Frames() <-chan Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// Gestures returns the gesture channel. It is nil before Connect.
func (c *Client) Gestures() <-chan GestureEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gestures
}

// Close ends the session. The read loop notices the closed connection,
// closes both delivery channels, and exits.
func (c *Client) Close() error {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return nil
	}
	c.running = false
	conn := c.conn
	c.conn = nil
	done := c.done
	c.mu.Unlock()

	err := conn.Close()
	<-done
	log.Printf("leap: session %s closed", c.sessionID)
	return err
}

// readLoop decodes frame messages until the connection fails or is
// closed. Stale frames are dropped in favour of the newest one so a slow
// consumer never sees an out-of-date cursor position; gestures are never
// dropped silently.
func (c *Client) readLoop(conn *websocket.Conn, frames chan Frame, gestures chan GestureEvent, done chan struct{}) {
	defer func() {
		close(frames)
		close(gestures)
		close(done)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			running := c.running
			c.mu.Unlock()
			if running {
				log.Printf("leap: session %s read error: %v", c.sessionID, err)
			}
			return
		}

		var msg frameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("leap: session %s: skipping undecodable message: %v", c.sessionID, err)
			continue
		}
		if msg.ID == 0 && msg.Timestamp == 0 {
			// Version/handshake message, not a frame.
			continue
		}

		frame := msg.frame()
		select {
		case frames <- frame:
		default:
			// Consumer is behind: replace the stale frame. The second
			// send must not block or Close could wait on us forever.
			select {
			case <-frames:
			default:
			}
			select {
			case frames <- frame:
			default:
			}
		}

		for _, ev := range msg.gestures() {
			select {
			case gestures <- ev:
			default:
				log.Printf("leap: session %s: gesture buffer full, dropping %s", c.sessionID, ev.Kind)
			}
		}
	}
}

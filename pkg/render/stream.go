package render

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"
)

// Stream broadcasts encoded frames to websocket clients connected on /ws.
// Slow clients skip frames; every client sees the latest one.
type Stream struct {
	Logger *log.Logger

	mu      sync.Mutex
	clients map[chan []byte]struct{}
	last    []byte
}

func NewStream(logger *log.Logger) *Stream {
	return &Stream{
		Logger:  logger,
		clients: make(map[chan []byte]struct{}),
	}
}

// Handler serves the websocket endpoint on /ws.
func (s *Stream) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Stream) Present(_ context.Context, f Frame) error {
	data, err := EncodeFrame(f)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = data
	for ch := range s.clients {
		offer(ch, data)
	}

	return nil
}

// offer replaces whatever frame ch is still holding with data.
func offer(ch chan []byte, data []byte) {
	select {
	case <-ch:
	default:
	}
	ch <- data
}

// Clients returns the number of connected clients.
func (s *Stream) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Stream) subscribe() chan []byte {
	ch := make(chan []byte, 1)

	s.mu.Lock()
	s.clients[ch] = struct{}{}
	if s.last != nil {
		ch <- s.last
	}
	s.mu.Unlock()

	return ch
}

func (s *Stream) unsubscribe(ch chan []byte) {
	s.mu.Lock()
	delete(s.clients, ch)
	s.mu.Unlock()
}

func (s *Stream) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

func (s *Stream) serveWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.logf("websocket accept: %v", err)
		return
	}
	defer c.CloseNow()

	s.logf("got connection from: %s", r.RemoteAddr)

	// Clients never send; CloseRead cancels ctx when they disconnect.
	ctx := c.CloseRead(r.Context())

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			s.logf("connection from %s closed", r.RemoteAddr)
			return
		case data := <-ch:
			if err := c.Write(ctx, websocket.MessageBinary, data); err != nil {
				s.logf("write to %s: %v", r.RemoteAddr, err)
				return
			}
		}
	}
}

// Watch connects to a Stream at url and calls fn with every decoded frame
// until the stream delivers a settled frame, fn fails, or ctx is done.
func Watch(ctx context.Context, url string, fn func(Frame) error) error {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("websocket.Dial: %w", err)
	}
	defer c.CloseNow()

	c.SetReadLimit(maxFrameSize)

	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}
		if typ != websocket.MessageBinary {
			return fmt.Errorf("%w: unexpected %v message", ErrBadFrame, typ)
		}

		f, err := DecodeFrame(data)
		if err != nil {
			return err
		}

		if err := fn(f); err != nil {
			return err
		}

		if f.Settled {
			_ = c.Close(websocket.StatusNormalClosure, "")
			return nil
		}
	}
}

// IsClosed reports whether err is a normal websocket closure.
func IsClosed(err error) bool {
	return websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled)
}

package spectator

import (
	"context"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
	"nhooyr.io/websocket/wspb"

	"warped/game"
)

const (
	formatJSON = "json"
	formatPB   = "pb"

	writeTimeout = 5 * time.Second
)

// watchedActions are the stats changes that produce a frame
var watchedActions = []game.Action{
	game.ActionAddLife,
	game.ActionRemoveLife,
	game.ActionAddScore,
	game.ActionImmortalityOn,
	game.ActionImmortalityOff,
	game.ActionShieldOn,
	game.ActionShieldOff,
	game.ActionIncreaseLaserLevel,
	game.ActionGameOver,
}

type subscriber struct {
	ID       string
	Messages chan Frame
	format   string
	c        *websocket.Conn
}

// Server streams session stats to websocket clients. Frames are built on the
// game goroutine and fanned out without blocking it.
type Server struct {
	cfg    game.SpectatorConfig
	logger *log.Logger

	subscribers map[*subscriber]struct{}
	last        *Frame
	mu          sync.RWMutex
	serveMux    http.ServeMux

	// Subscriptions on the watched session's bus
	bus  *game.Bus
	subs []game.Subscription
}

// NewServer creates a spectator server
func NewServer(cfg game.SpectatorConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:         cfg,
		logger:      logger,
		subscribers: make(map[*subscriber]struct{}),
	}
	s.serveMux.HandleFunc("/", s.onConnection)
	return s
}

// Watch follows a new session and drops the previous one. Call it from the
// goroutine that ticks the session.
func (s *Server) Watch(session *game.Session) {
	if s.bus != nil {
		for _, sub := range s.subs {
			s.bus.Unsubscribe(sub)
		}
	}
	id := ksuid.New().String()
	s.bus = session.Bus()
	s.subs = s.bus.SubscribeAll(func(msg game.Message) {
		s.Publish(Frame{Session: id, Event: msg.Action.String(), Snapshot: session.Snapshot()})
	}, watchedActions...)

	s.Publish(Frame{Session: id, Event: "start", Snapshot: session.Snapshot()})
}

// Publish remembers the frame for new clients and queues it for every client.
// Clients whose queue is full are disconnected.
func (s *Server) Publish(frame Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = &frame
	for sub := range s.subscribers {
		select {
		case sub.Messages <- frame:
		default:
			delete(s.subscribers, sub)
			go sub.c.Close(websocket.StatusPolicyViolation, "spectator too slow")
		}
	}
}

// Clients returns the number of connected spectators
func (s *Server) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

// addSubscriber registers sub and queues the latest frame for it first
func (s *Server) addSubscriber(sub *subscriber) {
	s.mu.Lock()
	if s.last != nil {
		sub.Messages <- *s.last
	}
	s.subscribers[sub] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) removeSubscriber(sub *subscriber) {
	s.mu.Lock()
	delete(s.subscribers, sub)
	s.mu.Unlock()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.serveMux.ServeHTTP(w, r)
}

func (s *Server) onConnection(w http.ResponseWriter, r *http.Request) {
	format := formatJSON
	if r.URL.Query().Get("format") == formatPB {
		format = formatPB
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.OriginPatterns,
	})
	if err != nil {
		s.logger.Println(err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "")

	sub := &subscriber{
		ID:       ksuid.New().String(),
		Messages: make(chan Frame, 64),
		format:   format,
		c:        c,
	}
	s.logger.Printf("spectator %s connected (%s)", sub.ID, format)

	err = s.handleConnection(r.Context(), sub)
	if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Cause(err) == context.Canceled {
		s.logger.Printf("spectator %s left", sub.ID)
		return
	}
	s.logger.Printf("spectator %s: %v", sub.ID, err)
}

func (s *Server) handleConnection(ctx context.Context, sub *subscriber) error {
	// Spectators never send, CloseRead handles pings and the close frame
	ctx = sub.c.CloseRead(ctx)

	s.addSubscriber(sub)
	defer s.removeSubscriber(sub)

	for {
		select {
		case frame := <-sub.Messages:
			if err := sub.write(ctx, frame); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (sub *subscriber) write(ctx context.Context, frame Frame) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if sub.format == formatPB {
		msg, err := frame.Proto()
		if err != nil {
			return errors.Wrap(err, "encode frame")
		}
		return wspb.Write(ctx, sub.c, msg)
	}
	return wsjson.Write(ctx, sub.c, frame)
}

// Run serves handler on addr until ctx is done, then shuts down gracefully
func Run(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", addr)
	}
	logger.Printf("spectators on ws://%v", l.Addr())

	s := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.Serve(l)
	}()

	select {
	case err := <-errc:
		if err != http.ErrServerClosed {
			return errors.Wrap(err, "serve")
		}
		return nil
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(shutdown)
}

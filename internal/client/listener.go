package client

import (
	"context"
	"time"

	"taskboard-backend/internal/events"
	"taskboard-backend/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Listener maintains the websocket subscription to the team event stream and
// feeds decoded events into the reconciler. It reconnects with exponential
// backoff; each reconnect invalidates the whole view because events may have
// been missed in between.
type Listener struct {
	url        string
	reconciler *Reconciler
	dialer     *websocket.Dialer
	log        *logger.Logger
}

// NewListener creates a listener for the given websocket URL. The URL carries
// the bearer token as a query parameter.
func NewListener(url string, reconciler *Reconciler) *Listener {
	return &Listener{
		url:        url,
		reconciler: reconciler,
		dialer:     websocket.DefaultDialer,
		log:        logger.ForComponent("client.listener"),
	}
}

// Run connects and consumes events until the context is cancelled
func (l *Listener) Run(ctx context.Context) {
	backoff := initialBackoff
	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := l.dialer.DialContext(ctx, l.url, nil)
		if err != nil {
			l.log.WithError(err).Warn("connect failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}

		backoff = initialBackoff
		l.reconciler.InvalidateAll()
		l.consume(ctx, conn)
	}
}

func (l *Listener) consume(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				l.log.WithError(err).Warn("connection lost")
			}
			return
		}
		env, err := events.Decode(data)
		if err != nil {
			l.log.WithError(err).Warn("dropping undecodable event")
			continue
		}
		l.reconciler.HandleEvent(env)
	}
}

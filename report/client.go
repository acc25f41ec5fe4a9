package report

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	channerics "github.com/niceyeti/channerics/channels"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const (
	writeWait      = 1 * time.Second
	pubResolution  = 250 * time.Millisecond
	pingResolution = 200 * time.Millisecond
	pongWait       = pingResolution * 4
)

var upgrader = websocket.Upgrader{}

// ErrPongDeadlineExceeded signals a client that stopped answering pings.
var ErrPongDeadlineExceeded = errors.New("report: client disconnect, pong deadline exceeded")

// client publishes Report snapshots to one connected viewer over a
// websocket, dropping any snapshot that arrives faster than pubResolution.
// Adapted from the teacher's fastview.client[T].
type client struct {
	snapshots <-chan Report
	ws        *websock
	rootCtx   context.Context
}

// newClient upgrades r to a websocket and returns a publisher reading from
// snapshots until the connection drops or rootCtx is canceled.
func newClient(snapshots <-chan Report, w http.ResponseWriter, r *http.Request) (*client, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, err
	}

	return &client{
		snapshots: snapshots,
		ws:        newWebsock(conn),
		rootCtx:   r.Context(),
	}, nil
}

// Sync runs the read, ping/pong, and publish pumps until one fails or the
// client disconnects.
func (c *client) Sync() error {
	group, ctx := errgroup.WithContext(c.rootCtx)

	group.Go(func() error { return c.readMessages(ctx) })
	group.Go(func() error { return c.pingPong(ctx) })
	group.Go(func() error { return c.publish(ctx) })

	return group.Wait()
}

// readMessages drains client frames so the pong handler fires; boardline's
// view is unidirectional so any payload received is discarded.
func (c *client) readMessages(ctx context.Context) error {
	for {
		err := c.ws.Read(ctx, func(conn *websocket.Conn) (readErr error) {
			_, _, readErr = conn.ReadMessage()
			return
		})
		if err != nil {
			return err
		}
	}
}

func (c *client) pingPong(ctx context.Context) error {
	pong := make(chan struct{})
	defer close(pong)
	c.ws.Conn().SetPongHandler(func(_ string) error {
		pong <- struct{}{}
		return nil
	})

	pinger := channerics.NewTicker(ctx.Done(), pingResolution)
	lastPong := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pinger:
			if time.Since(lastPong) > pongWait {
				return ErrPongDeadlineExceeded
			}
			if err := c.ping(ctx); err != nil {
				return err
			}
		case <-pong:
			lastPong = time.Now()
		}
	}
}

func (c *client) ping(ctx context.Context) error {
	return c.ws.Write(ctx, func(conn *websocket.Conn) (err error) {
		if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
			if isUnexpectedClose(err) {
				err = fmt.Errorf("ping failed: %w", err)
			}
		}
		return
	})
}

func (c *client) publish(ctx context.Context) error {
	lastSync := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-c.snapshots:
			if !ok {
				return nil
			}
			if time.Since(lastSync) < pubResolution {
				break
			}
			lastSync = time.Now()

			err := c.ws.Write(ctx, func(conn *websocket.Conn) (writeErr error) {
				if writeErr = conn.SetWriteDeadline(time.Now().Add(writeWait)); writeErr != nil {
					return fmt.Errorf("failed to set deadline: %w", writeErr)
				}
				if writeErr = conn.WriteJSON(snapshot); writeErr != nil {
					if isUnexpectedClose(writeErr) {
						writeErr = fmt.Errorf("publish failed: %w", writeErr)
					}
				}
				return
			})
			if err != nil {
				return err
			}
		}
	}
}

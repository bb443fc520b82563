package ws

import (
	"context"
	"sync"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"
)

const sendBuffer = 256

// RuntimeClient is one registered realtime connection: an id the registry
// keys on, a bounded outbound buffer, and a write goroutine draining it.
type RuntimeClient struct {
	ctx    context.Context
	cancel context.CancelFunc
	ws     *WebSocket
	id     string
	out    chan []byte
	once   sync.Once
}

func NewClient(parent context.Context, ws *WebSocket, id string) *RuntimeClient {
	ctx, cancel := context.WithCancel(parent)
	c := &RuntimeClient{
		ctx:    ctx,
		cancel: cancel,
		ws:     ws,
		id:     id,
		out:    make(chan []byte, sendBuffer),
	}
	go c.writeLoop()
	return c
}

func (c *RuntimeClient) ID() string { return c.id }

// Send queues one outbound message. It never blocks: a closed client
// returns ErrClientClosed, a full buffer returns ErrSlowClient. Either
// error tells the registry this client can no longer keep up.
func (c *RuntimeClient) Send(ctx context.Context, data []byte) error {
	select {
	case <-c.ctx.Done():
		return domain.ErrClientClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case c.out <- data:
		return nil
	default:
		return domain.ErrSlowClient
	}
}

// Close is idempotent and unblocks both pumps. The out channel is left
// open; writeLoop exits via the cancelled context, so a racing Send can
// never hit a closed channel.
func (c *RuntimeClient) Close() {
	c.once.Do(func() {
		c.cancel()
		c.ws.Close()
	})
}

func (c *RuntimeClient) writeLoop() {
	defer c.Close()
	for {
		select {
		case <-c.ctx.Done():
			return
		case data := <-c.out:
			if err := c.ws.WriteMessage(data); err != nil {
				return
			}
		}
	}
}

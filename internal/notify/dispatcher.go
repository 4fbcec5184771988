package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const sendTimeout = 30 * time.Second

// Dispatcher decouples notification delivery from the request path. Enqueue
// never blocks: when the queue is full the message is dropped with a warning.
type Dispatcher struct {
	queue  chan Message
	sender Sender
	log    *zap.Logger

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sender Sender, log *zap.Logger, buffer int) *Dispatcher {
	if buffer < 1 {
		buffer = 64
	}
	d := &Dispatcher{
		queue:  make(chan Message, buffer),
		sender: sender,
		log:    log,
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.sender.Send(ctx, msg); err != nil {
			d.log.Error("notification send failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err))
		}
		cancel()
	}
}

// Enqueue hands a message to the background worker, fire-and-forget.
func (d *Dispatcher) Enqueue(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.log.Warn("notification queue full, dropping message",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject))
	}
}

// Close stops accepting messages and waits for the worker to drain the queue.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.queue) })
	<-d.done
}

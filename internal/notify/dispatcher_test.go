package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type captureSender struct {
	mu   sync.Mutex
	sent []Message
	err  error

	block chan struct{}
}

func (s *captureSender) Send(_ context.Context, msg Message) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *captureSender) messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.sent...)
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, zap.NewNop(), 8)

	d.Enqueue(Message{To: "a@example.com", Subject: "first"})
	d.Enqueue(Message{To: "b@example.com", Subject: "second"})
	d.Close()

	msgs := sender.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Subject)
	assert.Equal(t, "second", msgs[1].Subject)
}

func TestDispatcherSwallowsSendErrors(t *testing.T) {
	sender := &captureSender{err: errors.New("smtp down")}
	d := NewDispatcher(sender, zap.NewNop(), 8)

	d.Enqueue(Message{To: "a@example.com", Subject: "first"})
	d.Enqueue(Message{To: "b@example.com", Subject: "second"})
	d.Close()

	// Both messages were attempted despite the first failing.
	assert.Len(t, sender.messages(), 2)
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	sender := &captureSender{block: make(chan struct{})}
	d := NewDispatcher(sender, zap.NewNop(), 1)

	// The first message is picked up by the worker and blocks in Send, the
	// second fills the buffer, the third has nowhere to go.
	d.Enqueue(Message{Subject: "in flight"})
	d.Enqueue(Message{Subject: "buffered"})
	d.Enqueue(Message{Subject: "dropped"})

	close(sender.block)
	d.Close()

	msgs := sender.messages()
	assert.LessOrEqual(t, len(msgs), 2)
	for _, m := range msgs {
		assert.NotEqual(t, "dropped", m.Subject)
	}
}

func TestDispatcherCloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&captureSender{}, zap.NewNop(), 1)
	d.Close()
	d.Close()
}

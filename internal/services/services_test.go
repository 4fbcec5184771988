package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jobportal/api/internal/models"
	"github.com/jobportal/api/internal/notify"
	"github.com/jobportal/api/internal/store"
)

// recordingSender captures every message the dispatcher delivers.
type recordingSender struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (r *recordingSender) Send(_ context.Context, msg notify.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingSender) messages() []notify.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Message(nil), r.sent...)
}

type fixture struct {
	store    *store.Store
	sender   *recordingSender
	notifier *notify.Dispatcher
}

func newFixture() *fixture {
	sender := &recordingSender{}
	return &fixture{
		store:    store.New(zap.NewNop()),
		sender:   sender,
		notifier: notify.NewDispatcher(sender, zap.NewNop(), 16),
	}
}

// drain closes the dispatcher and waits for queued messages to be sent.
func (f *fixture) drain() {
	f.notifier.Close()
}

func admin() models.User {
	return models.User{ID: "admin-1", Role: models.RoleAdmin, Email: "admin@jobportal.com"}
}

func employer(id string) models.User {
	return models.User{ID: id, Role: models.RoleEmployer, Email: id + "@example.com"}
}

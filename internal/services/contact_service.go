package services

import (
	"sort"

	"go.uber.org/zap"

	"github.com/jobportal/api/internal/apperr"
	"github.com/jobportal/api/internal/dtos"
	"github.com/jobportal/api/internal/models"
	"github.com/jobportal/api/internal/notify"
	"github.com/jobportal/api/internal/store"
)

type ContactService struct {
	Store    *store.Store
	Notifier *notify.Dispatcher
	Log      *zap.Logger
}

func NewContactService(st *store.Store, n *notify.Dispatcher, log *zap.Logger) *ContactService {
	return &ContactService{Store: st, Notifier: n, Log: log}
}

// Submit records a contact message and queues a confirmation to the sender.
func (s *ContactService) Submit(req dtos.ContactSubmitRequest) models.ContactMessage {
	msg := s.Store.AddContactMessage(models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})

	s.Notifier.Enqueue(notify.ContactConfirmation(msg.Email, msg.Name))

	s.Log.Info("contact message received", zap.String("messageId", msg.ID))
	return msg
}

// List returns contact messages filtered, sorted newest first, and
// paginated. This is the one listing that does not keep insertion order.
func (s *ContactService) List(q dtos.ContactListQuery) dtos.ContactListResponse {
	var preds []func(models.ContactMessage) bool
	if q.Status != "" {
		preds = append(preds, func(m models.ContactMessage) bool { return m.Status == q.Status })
	}
	if q.Search != "" {
		preds = append(preds, func(m models.ContactMessage) bool {
			return store.ContainsFold(m.Name, q.Search) ||
				store.ContainsFold(m.Email, q.Search) ||
				store.ContainsFold(m.Subject, q.Search) ||
				store.ContainsFold(m.Message, q.Search)
		})
	}

	filtered := store.Filter(s.Store.ContactMessages(), preds...)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	page, info := store.Paginate(filtered, store.PageRequest{Page: q.Page, Limit: q.Limit})

	return dtos.ContactListResponse{
		Messages: page,
		Pagination: dtos.MessagesPagination{
			Pagination: dtos.Pagination{
				CurrentPage: info.CurrentPage,
				TotalPages:  info.TotalPages,
				HasNext:     info.HasNext,
				HasPrev:     info.HasPrev,
			},
			TotalMessages: info.Total,
		},
	}
}

// Get returns one message, transitioning it from new to read as a side
// effect of the first view.
func (s *ContactService) Get(id string) (models.ContactMessage, error) {
	msg, ok := s.Store.ContactMessage(id)
	if !ok {
		return models.ContactMessage{}, apperr.NotFound("Message not found")
	}
	if msg.Status == models.ContactStatusNew {
		updated, err := s.Store.UpdateContactMessageStatus(id, models.ContactStatusRead)
		if err == nil {
			return updated, nil
		}
	}
	return msg, nil
}

// UpdateStatus transitions a message to one of new, read or replied.
func (s *ContactService) UpdateStatus(id, status string) (models.ContactMessage, error) {
	if !models.ValidContactStatus(status) {
		return models.ContactMessage{}, apperr.Validation("Invalid status")
	}
	updated, err := s.Store.UpdateContactMessageStatus(id, status)
	if err != nil {
		return models.ContactMessage{}, apperr.NotFound("Message not found")
	}
	return updated, nil
}

// Delete removes a message permanently.
func (s *ContactService) Delete(id string) error {
	if err := s.Store.RemoveContactMessage(id); err != nil {
		return apperr.NotFound("Message not found")
	}
	return nil
}

// Stats tallies contact messages by status.
func (s *ContactService) Stats() dtos.ContactStats {
	msgs := s.Store.ContactMessages()
	stats := dtos.ContactStats{Total: len(msgs)}
	for _, m := range msgs {
		switch m.Status {
		case models.ContactStatusNew:
			stats.New++
		case models.ContactStatusRead:
			stats.Read++
		case models.ContactStatusReplied:
			stats.Replied++
		}
	}
	return stats
}

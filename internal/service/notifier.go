package service

import (
	"context"
	"log"
	"time"

	"kunstbeheer/internal/mail"
	"kunstbeheer/internal/repository"
)

// Entity change actions, as they appear in notification mails.
const (
	ActionCreated = "aangemaakt"
	ActionUpdated = "bijgewerkt"
	ActionDeleted = "verwijderd"
)

const notifyTimeout = 15 * time.Second

// Notifier announces entity changes to the admin users. Dispatch is
// fire-and-forget: the caller never waits and a delivery failure never fails
// the operation that triggered it. At-most-once, no retry.
type Notifier interface {
	EntityChanged(entityType, entityName, action string)
}

type notifier struct {
	users  repository.UserRepository
	mailer mail.Mailer
}

// NewNotifier builds a Notifier that mails every active admin.
func NewNotifier(users repository.UserRepository, mailer mail.Mailer) Notifier {
	return &notifier{users: users, mailer: mailer}
}

func (n *notifier) EntityChanged(entityType, entityName, action string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		admins, err := n.users.ListActiveAdmins(ctx)
		if err != nil {
			log.Printf("notify: resolve recipients: %v", err)
			return
		}
		for _, admin := range admins {
			if err := n.mailer.SendChangeNotification(admin.Email, admin.Name, entityType, entityName, action); err != nil {
				log.Printf("notify %s: %v", admin.Email, err)
			}
		}
	}()
}

// NopNotifier discards all events. Used by cmd/seed and tests.
type NopNotifier struct{}

// EntityChanged implements Notifier.
func (NopNotifier) EntityChanged(entityType, entityName, action string) {}

package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kunstbeheer/internal/model"
)

func TestNotifier_MailsEveryActiveAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("ListActiveAdmins", mock.Anything).Return([]model.User{
		{Name: "Beheerder", Email: "admin1@example.com"},
		{Name: "Tweede", Email: "admin2@example.com"},
	}, nil)

	var wg sync.WaitGroup
	wg.Add(2)
	var mu sync.Mutex
	var recipients []string

	mailer := new(MockMailer)
	mailer.On("SendChangeNotification", mock.Anything, mock.Anything, "Kunstenaar", "Mondriaan", ActionCreated).
		Run(func(args mock.Arguments) {
			mu.Lock()
			recipients = append(recipients, args.String(0))
			mu.Unlock()
			wg.Done()
		}).
		Return(nil)

	n := NewNotifier(repo, mailer)
	n.EntityChanged("Kunstenaar", "Mondriaan", ActionCreated)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notifications were never dispatched")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"admin1@example.com", "admin2@example.com"}, recipients)
	mailer.AssertExpectations(t)
}

func TestNotifier_DeliveryFailureIsSwallowed(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("ListActiveAdmins", mock.Anything).Return([]model.User{
		{Name: "Beheerder", Email: "admin@example.com"},
	}, nil)

	sent := make(chan struct{}, 1)
	mailer := new(MockMailer)
	mailer.On("SendChangeNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { sent <- struct{}{} }).
		Return(errors.New("smtp down"))

	n := NewNotifier(repo, mailer)
	// Must not panic or block the caller.
	n.EntityChanged("Locatie", "Depot", ActionDeleted)

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never attempted")
	}
}

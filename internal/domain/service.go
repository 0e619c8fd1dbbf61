// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrActivityNotFound is returned when an activity name is not in the directory.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity roster.
	ErrAlreadySignedUp = errors.New("student already signed up")
	// ErrNotRegistered indicates the email is not on the activity roster.
	ErrNotRegistered = errors.New("student is not registered")
)

// Roster captures the directory operations the service depends on.
type Roster interface {
	List(ctx context.Context) map[string]Activity
	Signup(ctx context.Context, activityName, email string) (int, error)
	Unregister(ctx context.Context, activityName, email string) (int, error)
}

// RosterChange describes one accepted roster mutation.
type RosterChange struct {
	EventID    string
	Activity   string
	Email      string
	RosterSize int
	OccurredAt time.Time
}

// Notifier publishes roster changes to interested consumers. Publish failures never
// fail the originating request.
type Notifier interface {
	ParticipantSignedUp(ctx context.Context, change RosterChange) error
	ParticipantUnregistered(ctx context.Context, change RosterChange) error
}

// Service orchestrates roster operations against the directory.
type Service struct {
	roster   Roster
	notifier Notifier
}

// NewService constructs a Service. notifier may be nil when eventing is disabled.
func NewService(roster Roster, notifier Notifier) *Service {
	return &Service{roster: roster, notifier: notifier}
}

// ListActivities returns the full activity catalog with live rosters.
func (s *Service) ListActivities(ctx context.Context) map[string]Activity {
	return s.roster.List(ctx)
}

// SignupStudent enrolls email into the named activity and returns the new roster size.
func (s *Service) SignupStudent(ctx context.Context, activityName, email string) (int, error) {
	size, err := s.roster.Signup(ctx, activityName, email)
	if err != nil {
		return size, err
	}

	change := s.change(activityName, email, size)
	if s.notifier != nil {
		if err := s.notifier.ParticipantSignedUp(ctx, change); err != nil {
			log.Printf("signup event publish failed (activity=%s): %v", activityName, err)
		}
	}
	return size, nil
}

// UnregisterStudent removes email from the named activity and returns the new roster size.
func (s *Service) UnregisterStudent(ctx context.Context, activityName, email string) (int, error) {
	size, err := s.roster.Unregister(ctx, activityName, email)
	if err != nil {
		return size, err
	}

	change := s.change(activityName, email, size)
	if s.notifier != nil {
		if err := s.notifier.ParticipantUnregistered(ctx, change); err != nil {
			log.Printf("unregister event publish failed (activity=%s): %v", activityName, err)
		}
	}
	return size, nil
}

func (s *Service) change(activityName, email string, size int) RosterChange {
	return RosterChange{
		EventID:    uuid.NewString(),
		Activity:   activityName,
		Email:      email,
		RosterSize: size,
		OccurredAt: time.Now().UTC(),
	}
}

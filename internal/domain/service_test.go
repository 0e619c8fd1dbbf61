package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	signups   []RosterChange
	removals  []RosterChange
	publishFn func() error
}

func (n *recordingNotifier) ParticipantSignedUp(ctx context.Context, change RosterChange) error {
	n.signups = append(n.signups, change)
	if n.publishFn != nil {
		return n.publishFn()
	}
	return nil
}

func (n *recordingNotifier) ParticipantUnregistered(ctx context.Context, change RosterChange) error {
	n.removals = append(n.removals, change)
	if n.publishFn != nil {
		return n.publishFn()
	}
	return nil
}

func TestSignupStudentNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	service := NewService(NewDirectory(), notifier)
	ctx := context.Background()

	size, err := service.SignupStudent(ctx, "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, 3, size)

	require.Len(t, notifier.signups, 1)
	change := notifier.signups[0]
	require.NotEmpty(t, change.EventID)
	require.Equal(t, "Chess Club", change.Activity)
	require.Equal(t, "newstudent@mergington.edu", change.Email)
	require.Equal(t, 3, change.RosterSize)
	require.False(t, change.OccurredAt.IsZero())
}

func TestSignupStudentRejectionDoesNotNotify(t *testing.T) {
	notifier := &recordingNotifier{}
	service := NewService(NewDirectory(), notifier)

	_, err := service.SignupStudent(context.Background(), "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, ErrAlreadySignedUp)
	require.Empty(t, notifier.signups)
}

func TestUnregisterStudentNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	service := NewService(NewDirectory(), notifier)

	size, err := service.UnregisterStudent(context.Background(), "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, 1, size)

	require.Len(t, notifier.removals, 1)
	require.Equal(t, "michael@mergington.edu", notifier.removals[0].Email)
	require.Equal(t, 1, notifier.removals[0].RosterSize)
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	notifier := &recordingNotifier{publishFn: func() error { return errors.New("broker down") }}
	service := NewService(NewDirectory(), notifier)
	ctx := context.Background()

	_, err := service.SignupStudent(ctx, "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)

	require.Contains(t, service.ListActivities(ctx)["Chess Club"].Participants, "newstudent@mergington.edu")
}

func TestNilNotifierIsAccepted(t *testing.T) {
	service := NewService(NewDirectory(), nil)

	_, err := service.SignupStudent(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
}

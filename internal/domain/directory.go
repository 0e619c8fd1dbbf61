package domain

import (
	"context"
	"sync"
)

// Directory stores the activity catalog in memory for the lifetime of the process.
// A single lock guards all roster mutation; the catalog itself never changes after
// construction.
type Directory struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// NewDirectory constructs a Directory populated with the seed catalog.
func NewDirectory() *Directory {
	dir := &Directory{
		activities: make(map[string]*Activity, len(seedActivities)),
	}
	for _, seed := range seedActivities {
		activity := seed
		activity.Participants = append([]string(nil), seed.Participants...)
		dir.activities[activity.Name] = &activity
	}
	return dir
}

// List returns a copy of every activity keyed by name.
func (d *Directory) List(ctx context.Context) map[string]Activity {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]Activity, len(d.activities))
	for name, activity := range d.activities {
		copied := *activity
		copied.Participants = append([]string(nil), activity.Participants...)
		out[name] = copied
	}
	return out
}

// Signup appends email to the activity roster and returns the new roster size.
func (d *Directory) Signup(ctx context.Context, activityName, email string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[activityName]
	if !ok {
		return 0, ErrActivityNotFound
	}
	for _, participant := range activity.Participants {
		if participant == email {
			return len(activity.Participants), ErrAlreadySignedUp
		}
	}

	activity.Participants = append(activity.Participants, email)
	return len(activity.Participants), nil
}

// Unregister removes email from the activity roster and returns the new roster size.
func (d *Directory) Unregister(ctx context.Context, activityName, email string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[activityName]
	if !ok {
		return 0, ErrActivityNotFound
	}
	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return len(activity.Participants), nil
		}
	}
	return len(activity.Participants), ErrNotRegistered
}

// Package roster implements the in-memory activity registry.
package roster

import (
	"context"
	"sync"

	"example.com/signup/internal/catalog"
	"example.com/signup/internal/domain"
)

// InMemoryRegistry stores activities in memory for the process lifetime.
// State does not survive restarts; that is a property of the design, not a
// missing feature. The mutex keeps the roster uniqueness invariant intact
// when the HTTP layer dispatches requests concurrently.
type InMemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryRegistry constructs a registry seeded from the catalog.
func NewInMemoryRegistry(c catalog.Catalog) *InMemoryRegistry {
	r := &InMemoryRegistry{
		activities: make(map[string]domain.Activity, len(c.Activities)),
	}
	for _, activity := range c.Activities {
		r.activities[activity.Name] = activity.Clone()
	}
	return r
}

// List returns a deep copy of every activity keyed by name.
func (r *InMemoryRegistry) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out, nil
}

// Get returns a copy of the named activity, or nil when it does not exist.
func (r *InMemoryRegistry) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, nil
	}
	clone := activity.Clone()
	return &clone, nil
}

// Enroll appends the email to the activity's roster. Signup order is
// preserved. Capacity is not checked; max_participants is advisory.
func (r *InMemoryRegistry) Enroll(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if activity.Enrolled(email) {
		return domain.ErrAlreadyEnrolled
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	return nil
}

// Withdraw removes the email from the activity's roster.
func (r *InMemoryRegistry) Withdraw(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}

	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			r.activities[name] = activity
			return nil
		}
	}
	return domain.ErrParticipantNotFound
}

package domain

import (
	"context"
	"errors"
	"fmt"

	"example.com/signup/internal/observability"
)

var (
	// ErrActivityNotFound is returned when no activity exists under the requested name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyEnrolled indicates the participant is already on the activity's roster.
	ErrAlreadyEnrolled = errors.New("already signed up for this activity")
	// ErrParticipantNotFound indicates the participant is not on the activity's roster.
	ErrParticipantNotFound = errors.New("participant not found in this activity")
)

// Registry captures roster operations.
type Registry interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	Enroll(ctx context.Context, name, email string) error
	Withdraw(ctx context.Context, name, email string) error
}

// Service orchestrates signup workflows against the registry.
type Service struct {
	registry Registry
}

// NewService constructs a Service.
func NewService(registry Registry) *Service {
	return &Service{registry: registry}
}

// ListActivities returns every activity keyed by name, reflecting all
// mutations committed before the call.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.registry.List(ctx)
}

// Enroll adds the participant to the activity's roster and returns a
// confirmation message. Capacity is advisory and never gates enrollment.
func (s *Service) Enroll(ctx context.Context, activityName, email string) (string, error) {
	if err := s.registry.Enroll(ctx, activityName, email); err != nil {
		observability.RecordSignup(activityName, outcome(err))
		return "", err
	}

	observability.RecordSignup(activityName, "success")
	s.recordRosterSize(ctx, activityName)
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Withdraw removes the participant from the activity's roster and returns a
// confirmation message.
func (s *Service) Withdraw(ctx context.Context, activityName, email string) (string, error) {
	if err := s.registry.Withdraw(ctx, activityName, email); err != nil {
		observability.RecordWithdrawal(activityName, outcome(err))
		return "", err
	}

	observability.RecordWithdrawal(activityName, "success")
	s.recordRosterSize(ctx, activityName)
	return fmt.Sprintf("Removed %s from %s", email, activityName), nil
}

func (s *Service) recordRosterSize(ctx context.Context, activityName string) {
	activity, err := s.registry.Get(ctx, activityName)
	if err != nil || activity == nil {
		return
	}
	observability.RecordRosterSize(activityName, len(activity.Participants))
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, ErrAlreadyEnrolled):
		return "already_enrolled"
	case errors.Is(err, ErrParticipantNotFound):
		return "participant_not_found"
	default:
		return "error"
	}
}

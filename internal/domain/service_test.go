package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRegistry struct {
	activities  map[string]Activity
	enrollErr   error
	withdrawErr error
}

func (s *stubRegistry) List(ctx context.Context) (map[string]Activity, error) {
	return s.activities, nil
}

func (s *stubRegistry) Get(ctx context.Context, name string) (*Activity, error) {
	activity, ok := s.activities[name]
	if !ok {
		return nil, nil
	}
	return &activity, nil
}

func (s *stubRegistry) Enroll(ctx context.Context, name, email string) error {
	return s.enrollErr
}

func (s *stubRegistry) Withdraw(ctx context.Context, name, email string) error {
	return s.withdrawErr
}

func TestEnrollConfirmationMessage(t *testing.T) {
	service := NewService(&stubRegistry{activities: map[string]Activity{
		"Chess Club": {Name: "Chess Club", Participants: []string{"a@mergington.edu"}},
	}})

	message, err := service.Enroll(context.Background(), "Chess Club", "new@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Signed up new@mergington.edu for Chess Club", message)
}

func TestEnrollPropagatesRegistryError(t *testing.T) {
	service := NewService(&stubRegistry{enrollErr: ErrAlreadyEnrolled})

	_, err := service.Enroll(context.Background(), "Chess Club", "dup@mergington.edu")
	require.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestWithdrawConfirmationMessage(t *testing.T) {
	service := NewService(&stubRegistry{activities: map[string]Activity{
		"Drama Club": {Name: "Drama Club"},
	}})

	message, err := service.Withdraw(context.Background(), "Drama Club", "gone@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Removed gone@mergington.edu from Drama Club", message)
}

func TestWithdrawPropagatesRegistryError(t *testing.T) {
	service := NewService(&stubRegistry{withdrawErr: ErrParticipantNotFound})

	_, err := service.Withdraw(context.Background(), "Drama Club", "ghost@mergington.edu")
	require.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestOutcomeLabels(t *testing.T) {
	require.Equal(t, "activity_not_found", outcome(ErrActivityNotFound))
	require.Equal(t, "already_enrolled", outcome(ErrAlreadyEnrolled))
	require.Equal(t, "participant_not_found", outcome(ErrParticipantNotFound))
	require.Equal(t, "error", outcome(context.Canceled))
}

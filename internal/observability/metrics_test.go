package observability

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRecordSignupIncrementsCounter(t *testing.T) {
	RecordSignup("Test Club", "success")
	RecordSignup("Test Club", "success")
	RecordSignup("Test Club", "already_enrolled")

	metric := &dto.Metric{}
	require.NoError(t, signupCounter.WithLabelValues("Test Club", "success").Write(metric))
	require.Equal(t, float64(2), metric.GetCounter().GetValue())

	metric = &dto.Metric{}
	require.NoError(t, signupCounter.WithLabelValues("Test Club", "already_enrolled").Write(metric))
	require.Equal(t, float64(1), metric.GetCounter().GetValue())
}

func TestRecordWithdrawalIncrementsCounter(t *testing.T) {
	RecordWithdrawal("Test Club", "participant_not_found")

	metric := &dto.Metric{}
	require.NoError(t, withdrawalCounter.WithLabelValues("Test Club", "participant_not_found").Write(metric))
	require.Equal(t, float64(1), metric.GetCounter().GetValue())
}

func TestRecordRosterSizeSetsGauge(t *testing.T) {
	RecordRosterSize("Test Club", 7)
	RecordRosterSize("Test Club", 5)

	metric := &dto.Metric{}
	require.NoError(t, rosterSizeGauge.WithLabelValues("Test Club").Write(metric))
	require.Equal(t, float64(5), metric.GetGauge().GetValue())
}

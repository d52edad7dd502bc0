package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveLaunch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg)

	m.ObserveLaunch("export-data", ResultDispatched)
	m.ObserveLaunch("export-data", ResultDispatched)
	m.ObserveLaunch("legacy-import", ResultRejected)

	require.Equal(t, 2.0, testutil.ToFloat64(m.launches.WithLabelValues("export-data", ResultDispatched)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.launches.WithLabelValues("legacy-import", ResultRejected)))
}

func TestObserveLaunchCollapsesUnknownTools(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg)

	for i := 0; i < 50; i++ {
		m.ObserveLaunch(fmt.Sprintf("bogus-%d", i), ResultUnknown)
	}
	m.ObserveLaunch("export-data", ResultDispatched)

	count, err := testutil.GatherAndCount(reg, "studioutils_launches_total")
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, 50.0, testutil.ToFloat64(m.launches.WithLabelValues("unknown", ResultUnknown)))
}

func TestObserveSelectionCollapsesUnknown(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg)

	m.ObserveSelection("assets", true)
	m.ObserveSelection("bogus", false)
	m.ObserveSelection("other", false)

	require.Equal(t, 1.0, testutil.ToFloat64(m.selections.WithLabelValues("assets", "accepted")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.selections.WithLabelValues("unknown", "rejected")))
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	r.ObserveLaunch("x", ResultDispatched)
	r.ObserveSelection("x", true)
}

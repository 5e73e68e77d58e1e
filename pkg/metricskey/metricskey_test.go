package metricskey

import (
	"slices"
	"sort"
	"testing"

	"github.com/effective-security/metrics"
	"github.com/stretchr/testify/assert"
)

func TestMetricsDefinitions(t *testing.T) {
	allMetrics := []*metrics.Describe{
		&PerfDispatch,
		&PerfToolCall,
		&StatsDispatchErrors,
		&StatsDispatchInvalidArgument,
		&StatsDispatchSimulatedFailures,
		&StatsDispatchSucceeded,
		&StatsSessionsClosed,
		&StatsSessionsOpened,
		&StatsToolCallsFailed,
		&StatsToolCallsNotFound,
		&StatsToolCallsSucceeded,
	}

	for _, m := range allMetrics {
		assert.NotEmpty(t, m.Name, "Metric name should not be empty")
		assert.NotEmpty(t, m.Help, "Metric help text should not be empty")
		assert.NotEmpty(t, m.RequiredTags, "Metric should have required tags")
		assert.True(t, slices.Contains(Metrics, m), "Metrics slice should contain %s", m.Name)
	}
	assert.Equal(t, len(allMetrics), len(Metrics), "Metrics slice should contain all defined metrics")

	isSorted := sort.SliceIsSorted(Metrics, func(i, j int) bool {
		return Metrics[i].Name < Metrics[j].Name
	})
	assert.True(t, isSorted, "Metrics slice should be sorted by name")

	seen := make(map[string]bool)
	for _, m := range Metrics {
		assert.False(t, seen[m.Name], "Metric name should be unique: %s", m.Name)
		seen[m.Name] = true
	}

	t.Run("Dispatch metrics have tool tag", func(t *testing.T) {
		for _, m := range []*metrics.Describe{
			&PerfDispatch,
			&StatsDispatchErrors,
			&StatsDispatchInvalidArgument,
			&StatsDispatchSimulatedFailures,
			&StatsDispatchSucceeded,
		} {
			assert.Contains(t, m.RequiredTags, "tool", "Dispatch metric should have tool tag: %s", m.Name)
		}
	})
}

package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	// StatsDispatchSucceeded is base for counter metric for tool dispatches with a successful outcome
	StatsDispatchSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_dispatch_succeeded",
		Help:         "stats_dispatch_succeeded provides total tool dispatches with a successful outcome",
		RequiredTags: []string{"tool"},
	}

	StatsDispatchSimulatedFailures = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_dispatch_simulated_failures",
		Help:         "stats_dispatch_simulated_failures provides total tool dispatches with a simulated failure outcome",
		RequiredTags: []string{"tool", "status"},
	}

	StatsDispatchInvalidArgument = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_dispatch_invalid_argument",
		Help:         "stats_dispatch_invalid_argument provides total tool dispatches rejected for invalid input",
		RequiredTags: []string{"tool"},
	}

	StatsDispatchErrors = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_dispatch_errors",
		Help:         "stats_dispatch_errors provides total tool dispatches failed with a session store error",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_succeeded",
		Help:         "stats_tool_calls_succeeded provides total tool calls succeeded",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_failed",
		Help:         "stats_tool_calls_failed provides total tool calls failed",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsNotFound = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_not_found",
		Help:         "stats_tool_calls_not_found provides total tool calls not found",
		RequiredTags: []string{"tool"},
	}

	StatsSessionsOpened = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_sessions_opened",
		Help:         "stats_sessions_opened provides total simulation sessions opened",
		RequiredTags: []string{"backend"},
	}

	StatsSessionsClosed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_sessions_closed",
		Help:         "stats_sessions_closed provides total simulation sessions closed",
		RequiredTags: []string{"backend"},
	}
)

// Perf
var (
	PerfDispatch = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_dispatch",
		Help:         "perf_dispatch provides duration of tool dispatch",
		RequiredTags: []string{"tool"},
	}

	PerfToolCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_tool_call",
		Help:         "perf_tool_call provides duration of tool call",
		RequiredTags: []string{"tool"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
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

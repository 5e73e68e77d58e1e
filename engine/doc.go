// Package engine implements the tool dispatch engine of the interview coordination simulator.
//
// An Engine owns one session: it validates each tool request, draws a synthetic outcome,
// applies the state change to the session store, and returns a self-describing Result.
// Dispatches on one Engine are serialized.
package engine

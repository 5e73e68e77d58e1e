// Package simmodel defines the data model shared by the interview coordination simulator:
// contacts, calendar slots, notepad entries, the sentinel errors returned on invalid tool
// input, and the session context carried through context.Context.
package simmodel

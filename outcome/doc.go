// Package outcome draws the synthetic results of the simulated tools.
//
// The probability tables are fixed constants. All randomness comes from the
// *gofakeit.Faker passed to New, so a seeded faker yields a repeatable sequence
// of outcomes. The generator never touches session state: callers pass the
// occupied slots they want excluded from alternative suggestions.
package outcome

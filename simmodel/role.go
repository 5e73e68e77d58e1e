package simmodel

import (
	"strings"
	"unicode"
)

// Contact roles inferred from a call purpose or an email subject.
const (
	RoleInterviewer = "Interviewer"
	RoleCandidate   = "Candidate"
	RoleRecruiter   = "HR/Recruiter"
	RoleContact     = "Contact"
	RoleRecipient   = "Recipient"
)

var roleKeywords = []struct {
	role  string
	words []string
}{
	{RoleInterviewer, []string{"interviewer", "interview availability"}},
	{RoleCandidate, []string{"candidate", "applicant", "interviewee"}},
	{RoleRecruiter, []string{"hr", "recruiter", "recruitment", "recruiting"}},
}

// ContactRole infers the role of the other party from free text,
// and returns fallback when nothing matches.
func ContactRole(fallback string, texts ...string) string {
	for _, rk := range roleKeywords {
		for _, text := range texts {
			if containsAny(text, rk.words) {
				return rk.role
			}
		}
	}
	return fallback
}

// containsAny matches single words on word boundaries, and phrases as substrings
func containsAny(text string, words []string) bool {
	lower := strings.ToLower(text)
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if strings.Contains(w, " ") {
			if strings.Contains(lower, w) {
				return true
			}
			continue
		}
		for _, tok := range tokens {
			if tok == w || tok == w+"s" {
				return true
			}
		}
	}
	return false
}

// Package setup provides the seed context of an interview coordination session:
// the HR contact, the interviewer, the candidate and the position.
package setup

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/interviewsim/simmodel"
)

// Names of the predefined setups
const (
	NameSample = "sample"
	NameRandom = "random"
)

// InterviewSetup is the complete interview setup with all participants
type InterviewSetup struct {
	HR              simmodel.Contact `json:"hr" yaml:"hr"`
	Interviewer     simmodel.Contact `json:"interviewer" yaml:"interviewer"`
	Candidate       simmodel.Contact `json:"candidate" yaml:"candidate"`
	Position        string           `json:"position" yaml:"position"`
	InterviewType   string           `json:"interview_type,omitempty" yaml:"interview_type,omitempty"`
	DurationMinutes int              `json:"duration_minutes,omitempty" yaml:"duration_minutes,omitempty"`
	Company         string           `json:"company,omitempty" yaml:"company,omitempty"`
}

// Sample returns the demonstration setup
func Sample() *InterviewSetup {
	return &InterviewSetup{
		HR:              HRContacts[0],
		Interviewer:     Interviewers[0],
		Candidate:       Candidates[0],
		Position:        Positions[0],
		InterviewType:   InterviewTypes[0],
		DurationMinutes: 90,
		Company:         DefaultCompany,
	}
}

// Random returns a setup picked from the directory,
// the interviewer works for the company of the HR contact.
func Random(faker *gofakeit.Faker) *InterviewSetup {
	if faker == nil {
		faker = gofakeit.New(0)
	}
	hr := HRContacts[faker.IntRange(0, len(HRContacts)-1)]
	interviewers := CompanyInterviewers(hr.Company)
	if len(interviewers) == 0 {
		interviewers = Interviewers
	}

	return &InterviewSetup{
		HR:              hr,
		Interviewer:     interviewers[faker.IntRange(0, len(interviewers)-1)],
		Candidate:       Candidates[faker.IntRange(0, len(Candidates)-1)],
		Position:        faker.RandomString(Positions),
		InterviewType:   faker.RandomString(InterviewTypes),
		DurationMinutes: Durations[faker.IntRange(0, len(Durations)-1)],
		Company:         hr.Company,
	}
}

// ForHR returns a technical interview setup for the HR contact,
// index is 1-based.
func ForHR(index int, faker *gofakeit.Faker) (*InterviewSetup, error) {
	if index < 1 || index > len(HRContacts) {
		return nil, simmodel.InvalidArgumentf("HR contact index %d must be between 1 and %d", index, len(HRContacts))
	}
	if faker == nil {
		faker = gofakeit.New(0)
	}

	hr := HRContacts[index-1]
	interviewer := Interviewers[0]
	if list := CompanyInterviewers(hr.Company); len(list) > 0 {
		interviewer = list[0]
	}

	return &InterviewSetup{
		HR:              hr,
		Interviewer:     interviewer,
		Candidate:       Candidates[faker.IntRange(0, len(Candidates)-1)],
		Position:        faker.RandomString(Positions),
		InterviewType:   InterviewTypes[0],
		DurationMinutes: 60,
		Company:         hr.Company,
	}, nil
}

// ByName returns the setup by name: sample, random,
// or the 1-based index of the HR contact.
func ByName(name string, faker *gofakeit.Faker) (*InterviewSetup, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "", NameSample:
		return Sample(), nil
	case NameRandom:
		return Random(faker), nil
	default:
		index, err := strconv.Atoi(n)
		if err != nil {
			return nil, simmodel.InvalidArgumentf("unknown setup %q", name)
		}
		return ForHR(index, faker)
	}
}

// Validate checks that every participant is reachable
func (s *InterviewSetup) Validate() error {
	for _, c := range []*simmodel.Contact{&s.HR, &s.Interviewer, &s.Candidate} {
		if err := simmodel.ValidateContact(c); err != nil {
			return err
		}
		if c.Email != "" && !c.HasMailbox() {
			return simmodel.InvalidArgumentf("email address %q of %s must be in local@domain format", c.Email, c.Name)
		}
	}
	if strings.TrimSpace(s.Position) == "" {
		return simmodel.InvalidArgumentf("position is required")
	}
	return nil
}

// Context returns the initialization text handed to the agent
func (s *InterviewSetup) Context() (string, error) {
	var buf bytes.Buffer
	if err := contextTemplate.Execute(&buf, s); err != nil {
		return "", errors.Wrap(err, "failed to render setup context")
	}
	return buf.String(), nil
}

// List returns one line per HR contact, as `N. Name (Role) at Company`
func List() []string {
	res := make([]string, len(HRContacts))
	for i, hr := range HRContacts {
		res[i] = strconv.Itoa(i+1) + ". " + hr.Name + " (" + hr.Role + ") at " + hr.Company
	}
	return res
}

var contextTemplate = template.Must(template.New("setup_context").Funcs(sprig.TxtFuncMap()).Parse(contextText))

const contextText = `INTERVIEW COORDINATION SETUP:
=================================

Company: {{ .Company | default .HR.Company | default "` + DefaultCompany + `" }}
Position: {{ .Position }}
Interview Type: {{ .InterviewType | default "technical" }}
Duration: {{ .DurationMinutes | default 60 }} minutes

HR CONTACT:
{{ template "contact" .HR }}
INTERVIEWER:
{{ template "contact" .Interviewer }}
CANDIDATE TO SCHEDULE:
- Name: {{ .Candidate.Name }}
- Email: {{ .Candidate.Email | default "n/a" }}
- Phone: {{ .Candidate.Phone | default "n/a" }}
- Applying for: {{ .Position }}

You are now ready to coordinate this interview. Start by reviewing this information and let me know your next steps.
{{- define "contact" }}- Name: {{ .Name }}
- Email: {{ .Email | default "n/a" }}
- Phone: {{ .Phone | default "n/a" }}
- Role: {{ .Role | default "n/a" }}
{{ end }}`

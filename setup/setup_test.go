package setup_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/effective-security/interviewsim/setup"
	"github.com/effective-security/interviewsim/simmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory(t *testing.T) {
	t.Parallel()

	assert.Len(t, setup.HRContacts, 5)
	assert.Len(t, setup.Interviewers, 5)
	assert.Len(t, setup.Candidates, 5)
	assert.Len(t, setup.Positions, 10)

	for _, list := range [][]simmodel.Contact{setup.HRContacts, setup.Interviewers, setup.Candidates} {
		for _, c := range list {
			assert.NoError(t, simmodel.ValidateContact(&c), c.Name)
		}
	}
	for _, hr := range setup.HRContacts {
		assert.Len(t, setup.CompanyInterviewers(hr.Company), 1, hr.Company)
	}
	assert.Empty(t, setup.CompanyInterviewers(setup.ExternalCompany))

	list := setup.List()
	require.Len(t, list, 5)
	assert.Equal(t, "1. Jennifer Martinez (Senior HR Manager) at TechCorp Inc.", list[0])
}

func TestSample(t *testing.T) {
	t.Parallel()

	s := setup.Sample()
	require.NoError(t, s.Validate())
	assert.Equal(t, "Jennifer Martinez", s.HR.Name)
	assert.Equal(t, "Alex Kim", s.Interviewer.Name)
	assert.Equal(t, "Sarah Johnson", s.Candidate.Name)
	assert.Equal(t, "Senior Frontend Developer", s.Position)
	assert.Equal(t, "technical", s.InterviewType)
	assert.Equal(t, 90, s.DurationMinutes)

	text, err := s.Context()
	require.NoError(t, err)
	exp := `INTERVIEW COORDINATION SETUP:
=================================

Company: TechCorp Inc.
Position: Senior Frontend Developer
Interview Type: technical
Duration: 90 minutes

HR CONTACT:
- Name: Jennifer Martinez
- Email: j.martinez@techcorp.com
- Phone: +1-555-HR01
- Role: Senior HR Manager

INTERVIEWER:
- Name: Alex Kim
- Email: a.kim@techcorp.com
- Phone: +1-555-ENG01
- Role: Senior Software Engineer

CANDIDATE TO SCHEDULE:
- Name: Sarah Johnson
- Email: sarah.johnson@email.com
- Phone: +1-555-0123
- Applying for: Senior Frontend Developer

You are now ready to coordinate this interview. Start by reviewing this information and let me know your next steps.`
	assert.Equal(t, exp, text)
}

func TestContext_Defaults(t *testing.T) {
	t.Parallel()

	s := &setup.InterviewSetup{
		HR:          simmodel.Contact{Name: "HR", Phone: "1", Company: "Acme"},
		Interviewer: simmodel.Contact{Name: "Int", Email: "int@acme.io"},
		Candidate:   simmodel.Contact{Name: "Cand", Email: "cand@mail.io"},
		Position:    "SRE",
	}
	require.NoError(t, s.Validate())

	text, err := s.Context()
	require.NoError(t, err)
	assert.Contains(t, text, "Company: Acme\n")
	assert.Contains(t, text, "Interview Type: technical\n")
	assert.Contains(t, text, "Duration: 60 minutes\n")
	assert.Contains(t, text, "- Name: HR\n- Email: n/a\n- Phone: 1\n- Role: n/a\n")
	assert.Contains(t, text, "- Name: Cand\n- Email: cand@mail.io\n- Phone: n/a\n- Applying for: SRE\n")

	s.Position = " "
	assert.True(t, simmodel.IsInvalidArgument(s.Validate()))
	s.Position = "SRE"
	s.Candidate.Email = "bad"
	assert.True(t, simmodel.IsInvalidArgument(s.Validate()))
	s.Candidate.Phone = "+1-555-0199"
	assert.EqualError(t, s.Validate(), `email address "bad" of Cand must be in local@domain format: invalid argument`)
}

func TestRandom(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 50; seed++ {
		s := setup.Random(gofakeit.New(seed))
		require.NoError(t, s.Validate())
		assert.Equal(t, s.HR.Company, s.Interviewer.Company)
		assert.Equal(t, s.HR.Company, s.Company)
		assert.Contains(t, setup.Positions, s.Position)
		assert.Contains(t, setup.InterviewTypes, s.InterviewType)
		assert.Contains(t, setup.Durations, s.DurationMinutes)
		assert.Contains(t, setup.Candidates, s.Candidate)
	}

	assert.Equal(t, setup.Random(gofakeit.New(7)), setup.Random(gofakeit.New(7)))
	assert.NotNil(t, setup.Random(nil))
}

func TestForHR(t *testing.T) {
	t.Parallel()

	for i := 1; i <= len(setup.HRContacts); i++ {
		s, err := setup.ForHR(i, gofakeit.New(uint64(i)))
		require.NoError(t, err)
		assert.Equal(t, setup.HRContacts[i-1], s.HR)
		assert.Equal(t, setup.Interviewers[i-1], s.Interviewer)
		assert.Equal(t, "technical", s.InterviewType)
		assert.Equal(t, 60, s.DurationMinutes)
	}

	for _, i := range []int{0, -1, 6} {
		_, err := setup.ForHR(i, nil)
		require.Error(t, err)
		assert.True(t, simmodel.IsInvalidArgument(err))
	}
	_, err := setup.ForHR(6, nil)
	assert.EqualError(t, err, "HR contact index 6 must be between 1 and 5: invalid argument")
}

func TestByName(t *testing.T) {
	t.Parallel()

	s, err := setup.ByName("", nil)
	require.NoError(t, err)
	assert.Equal(t, setup.Sample(), s)

	s, err = setup.ByName(" Sample ", nil)
	require.NoError(t, err)
	assert.Equal(t, setup.Sample(), s)

	s, err = setup.ByName("random", gofakeit.New(3))
	require.NoError(t, err)
	assert.Equal(t, setup.Random(gofakeit.New(3)), s)

	s, err = setup.ByName("3", nil)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", s.HR.Name)

	_, err = setup.ByName("9", nil)
	assert.True(t, simmodel.IsInvalidArgument(err))

	_, err = setup.ByName("ceo", nil)
	assert.EqualError(t, err, `unknown setup "ceo": invalid argument`)
}

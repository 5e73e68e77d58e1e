package setup

import "github.com/effective-security/interviewsim/simmodel"

// DefaultCompany is the company of the sample setup
const DefaultCompany = "TechCorp Inc."

// ExternalCompany is the company of every candidate
const ExternalCompany = "External"

// HRContacts is the directory of HR contacts, one per company
var HRContacts = []simmodel.Contact{
	{Name: "Jennifer Martinez", Email: "j.martinez@techcorp.com", Phone: "+1-555-HR01", Role: "Senior HR Manager", Company: "TechCorp Inc."},
	{Name: "Michael Thompson", Email: "m.thompson@innovatesoft.com", Phone: "+1-555-HR02", Role: "Talent Acquisition Lead", Company: "InnovateSoft Solutions"},
	{Name: "Sarah Chen", Email: "s.chen@datatech.io", Phone: "+1-555-HR03", Role: "HR Business Partner", Company: "DataTech Analytics"},
	{Name: "David Rodriguez", Email: "d.rodriguez@cloudnext.com", Phone: "+1-555-HR04", Role: "Recruitment Manager", Company: "CloudNext Technologies"},
	{Name: "Emily Johnson", Email: "e.johnson@fintech.pro", Phone: "+1-555-HR05", Role: "People Operations Manager", Company: "FinTech Pro"},
}

// Interviewers is the directory of interviewers, one per company
var Interviewers = []simmodel.Contact{
	{Name: "Alex Kim", Email: "a.kim@techcorp.com", Phone: "+1-555-ENG01", Role: "Senior Software Engineer", Company: "TechCorp Inc."},
	{Name: "Lisa Wang", Email: "l.wang@innovatesoft.com", Phone: "+1-555-ENG02", Role: "Tech Lead", Company: "InnovateSoft Solutions"},
	{Name: "Robert Brown", Email: "r.brown@datatech.io", Phone: "+1-555-ENG03", Role: "Principal Engineer", Company: "DataTech Analytics"},
	{Name: "Maria Garcia", Email: "m.garcia@cloudnext.com", Phone: "+1-555-ENG04", Role: "Engineering Manager", Company: "CloudNext Technologies"},
	{Name: "James Wilson", Email: "j.wilson@fintech.pro", Phone: "+1-555-ENG05", Role: "Staff Software Engineer", Company: "FinTech Pro"},
}

// Candidates is the directory of candidates
var Candidates = []simmodel.Contact{
	{Name: "Sarah Johnson", Email: "sarah.johnson@email.com", Phone: "+1-555-0123", Role: "Frontend Developer Candidate", Company: ExternalCompany},
	{Name: "Carlos Mendez", Email: "carlos.m@gmail.com", Phone: "+1-555-0456", Role: "Backend Developer Candidate", Company: ExternalCompany},
	{Name: "Priya Patel", Email: "priya.patel@outlook.com", Phone: "+1-555-0789", Role: "Full Stack Developer Candidate", Company: ExternalCompany},
	{Name: "Kevin O'Brien", Email: "kevin.obrien@yahoo.com", Phone: "+1-555-0321", Role: "DevOps Engineer Candidate", Company: ExternalCompany},
	{Name: "Aisha Hassan", Email: "aisha.hassan@protonmail.com", Phone: "+1-555-0654", Role: "Data Scientist Candidate", Company: ExternalCompany},
}

// Positions is the list of open positions
var Positions = []string{
	"Senior Frontend Developer",
	"Backend Software Engineer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Data Scientist",
	"Mobile App Developer",
	"UI/UX Designer",
	"Product Manager",
	"Engineering Manager",
	"Cloud Architect",
}

// InterviewTypes is the list of interview types
var InterviewTypes = []string{
	"technical",
	"behavioral",
	"system design",
	"cultural fit",
}

// Durations is the list of interview durations in minutes
var Durations = []int{45, 60, 90, 120}

// CompanyInterviewers returns the interviewers working for the company
func CompanyInterviewers(company string) []simmodel.Contact {
	var res []simmodel.Contact
	for _, c := range Interviewers {
		if c.Company == company {
			res = append(res, c)
		}
	}
	return res
}

package simmodel

import "strings"

// Contact describes a person reachable by phone or email.
// The engine does not store contacts beyond the call that references them.
type Contact struct {
	Name    string `json:"Name" yaml:"Name" jsonschema:"title=Name,description=Full name of the person." validate:"notblank"`
	Email   string `json:"Email,omitempty" yaml:"Email,omitempty" jsonschema:"title=Email,description=Email address of the person."`
	Phone   string `json:"Phone,omitempty" yaml:"Phone,omitempty" jsonschema:"title=Phone,description=Phone number of the person."`
	Role    string `json:"Role,omitempty" yaml:"Role,omitempty" jsonschema:"title=Role,description=Job title or role of the person."`
	Company string `json:"Company,omitempty" yaml:"Company,omitempty" jsonschema:"title=Company,description=Company the person works for."`
}

// Reachable returns true if the contact has a phone number or a valid email address.
func (c *Contact) Reachable() bool {
	return strings.TrimSpace(c.Phone) != "" || c.HasMailbox()
}

// HasMailbox returns true if the contact email is in local@domain format.
func (c *Contact) HasMailbox() bool {
	return IsMailbox(c.Email)
}

// String returns the contact in `Name (Role) - email, phone @ Company` form,
// omitting empty parts.
func (c Contact) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	if c.Role != "" {
		b.WriteString(" (")
		b.WriteString(c.Role)
		b.WriteString(")")
	}

	var channels []string
	if c.Email != "" {
		channels = append(channels, c.Email)
	}
	if c.Phone != "" {
		channels = append(channels, c.Phone)
	}
	if len(channels) > 0 {
		b.WriteString(" - ")
		b.WriteString(strings.Join(channels, ", "))
	}
	if c.Company != "" {
		b.WriteString(" @ ")
		b.WriteString(c.Company)
	}
	return b.String()
}

// ValidateContact checks that the contact has a name and at least one reachable channel.
func ValidateContact(c *Contact) error {
	if c == nil {
		return InvalidArgumentf("contact is required")
	}
	if err := Validate(c); err != nil {
		return err
	}
	if !c.Reachable() {
		return InvalidArgumentf("contact %q has neither phone nor email", c.Name)
	}
	return nil
}

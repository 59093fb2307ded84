package submission

import "slices"

// Kind identifies which lead-capture form a submission came from.
type Kind string

const (
	KindContact        Kind = "contact"
	KindProjectRequest Kind = "project_request"
	KindJobApplication Kind = "job_application"
)

func (k Kind) String() string { return string(k) }

// FieldSpec describes one accepted field of a form.
type FieldSpec struct {
	Name     string   // JSON key
	Label    string   // human label used in emails
	Column   string   // storage column
	Required bool     // must be present and non-blank
	Min      int      // minimum runes after trimming, 0 for none
	Max      int      // maximum runes after trimming, 0 for none
	Cap      int      // sanitizer truncation cap, in runes
	Email    bool     // value must be an email address
	List     bool     // value is an array of strings
	MaxItems int      // list length limit
	OneOf    []string // allowed values, nil for free text
}

// Derived holds values computed from a sanitized submission.
type Derived struct {
	EstimatedCost *int
}

// Descriptor is the full configuration of one submission kind.
type Descriptor struct {
	Kind           Kind
	Fields         []FieldSpec
	Table          string
	DefaultStatus  string
	SubmitterName  string
	SubmitterEmail string
	Derive         func(Sanitized) Derived
}

// Field returns the definition of the named field.
func (d Descriptor) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Required lists the names of the required fields in declaration order.
func (d Descriptor) Required() []string {
	var names []string
	for _, f := range d.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

const (
	capShort  = 100
	capPhone  = 30
	capEmail  = 254
	capURL    = 200
	capLong   = 2000
	capTitle  = 200
	listItems = 100
)

var descriptors = map[Kind]Descriptor{
	KindContact: {
		Kind:          KindContact,
		Table:         "contact_submissions",
		DefaultStatus: "new",
		Fields: []FieldSpec{
			{Name: "name", Label: "Name", Column: "name", Required: true, Max: capShort, Cap: capShort},
			{Name: "email", Label: "Email", Column: "email", Required: true, Email: true, Max: capEmail, Cap: capEmail},
			{Name: "company", Label: "Company", Column: "company", Max: capShort, Cap: capShort},
			{Name: "phone", Label: "Phone", Column: "phone", Max: capPhone, Cap: capPhone},
			{Name: "subject", Label: "Subject", Column: "subject", Max: capTitle, Cap: capTitle},
			{Name: "message", Label: "Message", Column: "message", Required: true, Min: 10, Max: capLong, Cap: capLong},
		},
		SubmitterName:  "name",
		SubmitterEmail: "email",
	},
	KindProjectRequest: {
		Kind:          KindProjectRequest,
		Table:         "project_requests",
		DefaultStatus: "pending",
		Fields: []FieldSpec{
			{Name: "contactName", Label: "Contact name", Column: "contact_name", Required: true, Max: capShort, Cap: capShort},
			{Name: "contactEmail", Label: "Contact email", Column: "contact_email", Required: true, Email: true, Max: capEmail, Cap: capEmail},
			{Name: "company", Label: "Company", Column: "company", Max: capShort, Cap: capShort},
			{Name: "phone", Label: "Phone", Column: "phone", Max: capPhone, Cap: capPhone},
			{Name: "projectType", Label: "Project type", Column: "project_type", Required: true, Max: capShort, Cap: capShort, OneOf: ProjectTypes()},
			{Name: "industry", Label: "Industry", Column: "industry", Required: true, Max: capShort, Cap: capShort},
			{Name: "budget", Label: "Budget", Column: "budget", Required: true, Max: capShort, Cap: capShort},
			{Name: "timeline", Label: "Timeline", Column: "timeline", Required: true, Max: capShort, Cap: capShort},
			{Name: "description", Label: "Description", Column: "description", Max: capLong, Cap: capLong},
			{Name: "features", Label: "Features", Column: "features", List: true, MaxItems: 20, Cap: listItems},
		},
		SubmitterName:  "contactName",
		SubmitterEmail: "contactEmail",
		Derive:         deriveProjectEstimate,
	},
	KindJobApplication: {
		Kind:          KindJobApplication,
		Table:         "job_applications",
		DefaultStatus: "pending",
		Fields: []FieldSpec{
			{Name: "fullName", Label: "Full name", Column: "full_name", Required: true, Max: capShort, Cap: capShort},
			{Name: "email", Label: "Email", Column: "email", Required: true, Email: true, Max: capEmail, Cap: capEmail},
			{Name: "phone", Label: "Phone", Column: "phone", Max: capPhone, Cap: capPhone},
			{Name: "position", Label: "Position", Column: "position", Max: capShort, Cap: capShort},
			{Name: "experience", Label: "Experience", Column: "experience", Max: capShort, Cap: capShort},
			{Name: "linkedinUrl", Label: "LinkedIn", Column: "linkedin_url", Max: capURL, Cap: capURL},
			{Name: "portfolioUrl", Label: "Portfolio", Column: "portfolio_url", Max: capURL, Cap: capURL},
			{Name: "availability", Label: "Availability", Column: "availability", Max: capShort, Cap: capShort},
			{Name: "skills", Label: "Skills", Column: "skills", List: true, MaxItems: 30, Cap: listItems},
			{Name: "coverLetter", Label: "Cover letter", Column: "cover_letter", Required: true, Min: 50, Max: capLong, Cap: capLong},
		},
		SubmitterName:  "fullName",
		SubmitterEmail: "email",
	},
}

// Lookup returns the descriptor of kind.
func Lookup(kind Kind) (Descriptor, bool) {
	d, ok := descriptors[kind]
	return d, ok
}

// Kinds lists every known kind in a stable order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(descriptors))
	for k := range descriptors {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

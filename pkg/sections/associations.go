package sections

import (
	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

const AssociationSlots = 2

// Associations covers membership in organizations dedicated to terrorism or
// the violent overthrow of the US government.
type Associations struct {
	IsMemberTerror    form.Branch        `json:"isMemberTerror"`
	IsMemberOverthrow form.Branch        `json:"isMemberOverthrow"`
	HasActivities     form.Branch        `json:"hasActivities"`
	HasAssociation    form.Branch        `json:"hasAssociation"`
	Memberships       []MembershipEntry  `json:"memberships"`
	Explanation       form.Field[string] `json:"explanation"`
}

// MembershipEntry is one organization membership record.
type MembershipEntry struct {
	Organization form.Field[string] `json:"organization"`
	Address      form.Address       `json:"address"`
	Dates        form.DateRange     `json:"dates"`
	Positions    form.Field[string] `json:"positions"`
	Contribution form.Field[string] `json:"contribution"`
	Reason       form.Field[string] `json:"reason"`
}

// NewAssociations binds the section to its PDF fields.
func NewAssociations() *Associations {
	return &Associations{
		IsMemberTerror:    form.NewField[string]("form1[0].Section29[0].RadioButtonList[0]"),
		IsMemberOverthrow: form.NewField[string]("form1[0].Section29[0].RadioButtonList[1]"),
		HasActivities:     form.NewField[string]("form1[0].Section29[0].RadioButtonList[2]"),
		HasAssociation:    form.NewField[string]("form1[0].Section29[0].RadioButtonList[3]"),
		Explanation:       form.NewField[string]("form1[0].Section29[0].TextField12[0]"),
	}
}

// NewMembershipEntry builds entry defaults for the given slot.
func NewMembershipEntry(index int) MembershipEntry {
	id := func(format string) string { return slotID(index, AssociationSlots, format) }
	return MembershipEntry{
		Organization: form.NewField[string](id("form1[0].Section29[%d].TextField11[0]")),
		Address: form.Address{
			Street:  form.NewField[string](id("form1[0].Section29[%d].TextField11[1]")),
			City:    form.NewField[string](id("form1[0].Section29[%d].TextField11[2]")),
			State:   form.NewField[string](id("form1[0].Section29[%d].School6_State[0]")),
			ZipCode: form.NewField[string](id("form1[0].Section29[%d].TextField11[3]")),
			Country: form.NewField[string](id("form1[0].Section29[%d].DropDownList28[0]")),
		},
		Dates: form.DateRange{
			From: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section29[%d].From_Datefield_Name_2[0]")),
				Estimated: form.NewField[bool](id("form1[0].Section29[%d].#field[6]")),
			},
			To: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section29[%d].From_Datefield_Name_2[1]")),
				Estimated: form.NewField[bool](id("form1[0].Section29[%d].#field[8]")),
			},
			Present: form.NewField[bool](id("form1[0].Section29[%d].#field[9]")),
		},
		Positions:    form.NewField[string](id("form1[0].Section29[%d].TextField11[4]")),
		Contribution: form.NewField[string](id("form1[0].Section29[%d].TextField11[5]")),
		Reason:       form.NewField[string](id("form1[0].Section29[%d].TextField12[0]")),
	}
}

func (s *Associations) ID() string    { return "section29" }
func (s *Associations) Title() string { return "Association Record" }

// NewEntry implements fieldpath.EntryFactory.
func (s *Associations) NewEntry(list string, index int) (any, bool) {
	if list == "memberships" {
		return NewMembershipEntry(index), true
	}
	return nil, false
}

// AddMembership appends a defaults-initialised entry and returns it.
func (s *Associations) AddMembership() *MembershipEntry {
	s.Memberships = append(s.Memberships, NewMembershipEntry(len(s.Memberships)))
	return &s.Memberships[len(s.Memberships)-1]
}

func (s *Associations) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Branch(c, "section29.isMemberTerror", s.IsMemberTerror, "terrorism membership question")
	validation.Branch(c, "section29.isMemberOverthrow", s.IsMemberOverthrow, "overthrow membership question")
	validation.Branch(c, "section29.hasActivities", s.HasActivities, "activities question")
	validation.Branch(c, "section29.hasAssociation", s.HasAssociation, "association question")

	memberYes := form.IsYes(s.IsMemberTerror) || form.IsYes(s.IsMemberOverthrow)
	if memberYes && len(s.Memberships) == 0 {
		c.Add("section29.memberships", "at least one membership entry is required when answering YES")
	}
	if !memberYes && len(s.Memberships) > 0 {
		c.Add("section29.memberships", "membership entries are present but both membership questions were answered NO")
	}
	if len(s.Memberships) > AssociationSlots {
		c.Add("section29.memberships", "the form has %d entry slots; move additional memberships to the continuation sheet", AssociationSlots)
	}
	for i, e := range s.Memberships {
		path := entryPath("section29.memberships", i)
		validation.Required(c, path+".organization", e.Organization.Value, "organization name")
		validation.Address(c, path+".address", e.Address, "organization")
		validation.DateRange(c, path+".dates", e.Dates, "membership period")
		validation.Required(c, path+".reason", e.Reason.Value, "reason for involvement")
	}
	if form.IsYes(s.HasActivities) || form.IsYes(s.HasAssociation) {
		validation.Required(c, "section29.explanation", s.Explanation.Value, "an explanation")
	}
	return c.Issues()
}

func (s *Associations) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}

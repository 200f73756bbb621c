package sections

import (
	"time"

	"github.com/google/uuid"

	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

// Metadata identifies a questionnaire draft across save/load cycles.
type Metadata struct {
	DocumentID string    `json:"documentId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Revision   int       `json:"revision"`
}

// Questionnaire aggregates every section of the form. Field paths address
// answers through the json keys declared here, e.g.
// "section11.entries[0].address.city".
type Questionnaire struct {
	Metadata Metadata `json:"metadata"`

	Identity     *Identity         `json:"identity"`
	OtherNames   *OtherNames       `json:"section5"`
	Identifying  *Identifying      `json:"section6"`
	Contact      *Contact          `json:"section7"`
	Passport     *Passport         `json:"section8"`
	Citizenship  *Citizenship      `json:"section9"`
	Residences   *Residences       `json:"section11"`
	Education    *Education        `json:"section12"`
	Employment   *Employment       `json:"section13"`
	Selective    *SelectiveService `json:"section14"`
	Military     *MilitaryHistory  `json:"section15"`
	References   *References       `json:"section16"`
	Relatives    *Relatives        `json:"section18"`
	PoliceRecord *PoliceRecord     `json:"section22"`
	Drugs        *DrugInvolvement  `json:"section23"`
	Finances     *FinancialRecord  `json:"section26"`
	Technology   *TechnologyUse    `json:"section27"`
	Associations *Associations     `json:"section29"`
}

// NewQuestionnaire builds a defaults-initialised questionnaire with a fresh
// document id. Every section carries its fixed PDF field identifiers.
func NewQuestionnaire() *Questionnaire {
	now := time.Now().UTC()
	return &Questionnaire{
		Metadata: Metadata{
			DocumentID: uuid.NewString(),
			CreatedAt:  now,
			UpdatedAt:  now,
			Revision:   1,
		},
		Identity:     NewIdentity(),
		OtherNames:   NewOtherNames(),
		Identifying:  NewIdentifying(),
		Contact:      NewContact(),
		Passport:     NewPassport(),
		Citizenship:  NewCitizenship(),
		Residences:   NewResidences(),
		Education:    NewEducation(),
		Employment:   NewEmployment(),
		Selective:    NewSelectiveService(),
		Military:     NewMilitaryHistory(),
		References:   NewReferences(),
		Relatives:    NewRelatives(),
		PoliceRecord: NewPoliceRecord(),
		Drugs:        NewDrugInvolvement(),
		Finances:     NewFinancialRecord(),
		Technology:   NewTechnologyUse(),
		Associations: NewAssociations(),
	}
}

// Sections returns the sections in form order.
func (q *Questionnaire) Sections() []Section {
	return []Section{
		q.Identity, q.OtherNames, q.Identifying, q.Contact, q.Passport,
		q.Citizenship, q.Residences, q.Education, q.Employment, q.Selective,
		q.Military, q.References, q.Relatives, q.PoliceRecord, q.Drugs,
		q.Finances, q.Technology, q.Associations,
	}
}

// Registry indexes the questionnaire's sections by id.
func (q *Questionnaire) Registry() *Registry {
	return NewRegistry(q.Sections()...)
}

// Touch bumps the revision and update timestamp. Call before saving a draft.
func (q *Questionnaire) Touch() {
	q.Metadata.UpdatedAt = time.Now().UTC()
	q.Metadata.Revision++
}

// Validate runs every section's checks and returns the aggregate result.
func (q *Questionnaire) Validate() validation.Result {
	var issues []validation.Issue
	for _, s := range q.Sections() {
		issues = append(issues, s.Validate()...)
	}
	return validation.NewResult(issues)
}

// MapPDF populates a fresh field table from every section.
func (q *Questionnaire) MapPDF() (*pdfmap.Table, error) {
	t := pdfmap.NewTable()
	for _, s := range q.Sections() {
		if err := s.MapPDF(t); err != nil {
			return nil, err
		}
	}
	if err := t.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Package testsupport builds fully answered questionnaires for tests. The
// fixture answers every required question and passes validation clean, so
// tests can start from a known-good draft and break exactly one thing.
package testsupport

import (
	"encoding/json"
	"testing"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/sections"
)

// CompleteQuestionnaire returns a questionnaire that validates without
// issues: every required identity field is answered, each branch question is
// answered NO, and the sections that demand entries carry one valid entry.
func CompleteQuestionnaire() *sections.Questionnaire {
	q := sections.NewQuestionnaire()

	q.Identity.Name.Last.Set("Doe")
	q.Identity.Name.First.Set("Jane")
	q.Identity.DateOfBirth.Set("04/01/1990")
	q.Identity.BirthCity.Set("Arlington")
	q.Identity.BirthState.Set("VA")
	q.Identity.BirthCountry.Set("United States")
	q.Identity.SSN.Number.Set("527-88-1234")

	q.OtherNames.HasOtherNames.Set(form.BranchNo)

	q.Identifying.HeightFeet.Set("5")
	q.Identifying.HeightInches.Set("10")
	q.Identifying.WeightPounds.Set("150")
	q.Identifying.HairColor.Set("Brown")
	q.Identifying.EyeColor.Set("Green")
	q.Identifying.Sex.Set("Female")

	q.Contact.HomeEmail.Set("jane.doe@example.com")
	q.Contact.Phones[0].Number.Set("703-555-0100")

	q.Passport.HasPassport.Set(form.BranchNo)

	q.Citizenship.Status.Set(sections.CitizenBornInUS)
	q.Citizenship.HoldsForeign.Set(form.BranchNo)

	home := q.Residences.AddEntry()
	home.Dates.From.Date.Set("06/2015")
	home.Dates.Present.Set(true)
	home.Address.Street.Set("123 Main St")
	home.Address.City.Set("Arlington")
	home.Address.State.Set("VA")
	home.Address.ZipCode.Set("22203")
	home.Role.Set("Rent")
	home.Verifier.Name.Last.Set("Neighbor")
	home.Verifier.Name.First.Set("Ned")
	home.Verifier.Telephone.Number.Set("703-555-0101")

	q.Education.Attended.Set(form.BranchNo)

	job := q.Employment.AddEntry()
	job.Activity.Set("Non-government employment")
	job.Dates.From.Date.Set("02/2016")
	job.Dates.Present.Set(true)
	job.Employer.Set("Acme Widgets")
	job.PositionTitle.Set("Engineer")
	job.Address.Street.Set("1 Factory Rd")
	job.Address.City.Set("Arlington")
	job.Address.State.Set("VA")
	job.Address.ZipCode.Set("22201")
	job.Telephone.Number.Set("703-555-0102")
	job.Supervisor.Name.Set("Sam Supervisor")
	job.Supervisor.Email.Set("sam@example.com")

	q.Selective.BornAfter1959.Set(form.BranchNo)

	q.Military.HasServed.Set(form.BranchNo)

	names := []struct{ last, first string }{
		{"Reed", "Rachel"}, {"Stone", "Sarah"}, {"Tran", "Tim"},
	}
	for i := range q.References.People {
		p := &q.References.People[i]
		p.Name.Last.Set(names[i].last)
		p.Name.First.Set(names[i].first)
		p.DatesKnown.From.Date.Set("01/2012")
		p.DatesKnown.Present.Set(true)
		p.Telephone.Number.Set("703-555-0110")
		p.Address.Street.Set("9 Oak Ln")
		p.Address.City.Set("Arlington")
		p.Address.State.Set("VA")
		p.Address.ZipCode.Set("22202")
		p.Relationship.Set("Friend")
	}

	mother := q.Relatives.AddEntry()
	mother.Type.Set("Mother")
	mother.Name.Last.Set("Doe")
	mother.Name.First.Set("Mary")
	mother.DateOfBirth.Set("07/12/1962")
	mother.BirthCountry.Set("United States")
	mother.Citizenship.Set("United States")
	mother.Deceased.Set(form.BranchNo)
	mother.Address.Street.Set("4 Elm St")
	mother.Address.City.Set("Richmond")
	mother.Address.State.Set("VA")
	mother.Address.ZipCode.Set("23220")

	q.PoliceRecord.HasSummons.Set(form.BranchNo)
	q.PoliceRecord.HasArrest.Set(form.BranchNo)
	q.PoliceRecord.HasCharge.Set(form.BranchNo)
	q.PoliceRecord.EverConvicted.Set(form.BranchNo)

	q.Drugs.HasUsed.Set(form.BranchNo)
	q.Drugs.HasDistributed.Set(form.BranchNo)
	q.Drugs.UsedWithClearance.Set(form.BranchNo)

	q.Finances.HasBankruptcy.Set(form.BranchNo)
	q.Finances.HasTaxFailure.Set(form.BranchNo)
	q.Finances.HasDelinquencies.Set(form.BranchNo)

	q.Technology.HasUnauthorizedAccess.Set(form.BranchNo)
	q.Technology.HasUnauthorizedModify.Set(form.BranchNo)
	q.Technology.HasUnauthorizedUse.Set(form.BranchNo)

	q.Associations.IsMemberTerror.Set(form.BranchNo)
	q.Associations.IsMemberOverthrow.Set(form.BranchNo)
	q.Associations.HasActivities.Set(form.BranchNo)
	q.Associations.HasAssociation.Set(form.BranchNo)

	return q
}

// CompleteAnswersJSON serialises the complete questionnaire the way a saved
// draft looks on disk.
func CompleteAnswersJSON(t *testing.T) []byte {
	t.Helper()
	raw, err := json.MarshalIndent(CompleteQuestionnaire(), "", "  ")
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return raw
}

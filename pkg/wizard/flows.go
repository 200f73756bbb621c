package wizard

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/caseworks/go-sf86/pkg/sections"
)

type stepKind int

const (
	stepText stepKind = iota
	stepSelect
	stepBranch
	stepCheck
)

// step is one prompt in a section flow. Paths are relative to the flow's
// root, which is either the section id or a repeating entry.
type step struct {
	path     string
	message  string
	help     string
	kind     stepKind
	options  []string
	values   []string // export values when they differ from the display options
	validate func(string) error
	optional bool
	when     string // branch path that must be YES for this step to run
}

// entryFlow drives a repeating-entry loop. Either the loop is confirmed per
// entry, or count pins it to a fixed number of iterations.
type entryFlow struct {
	list    string
	first   string
	again   string
	when    string   // branch gating the whole loop
	whenAny []string // at least one of these branches must be YES
	max     int
	count   int // fixed iteration count, no confirmation
	steps   []step
}

type flow struct {
	steps   []step
	entries *entryFlow
}

var (
	ssnPattern   = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)
	phonePattern = regexp.MustCompile(`^[0-9() +.-]{7,20}$`)
)

func notBlank(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func optionalMatch(re *regexp.Regexp, hint string) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		if !re.MatchString(s) {
			return fmt.Errorf("enter %s", hint)
		}
		return nil
	}
}

func fullDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("01/02/2006", s); err != nil {
		return fmt.Errorf("enter a date as MM/DD/YYYY")
	}
	return nil
}

func monthYear(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("01/2006", s); err != nil {
		return fmt.Errorf("enter a date as MM/YYYY")
	}
	return nil
}

func nameSteps(prefix, who string) []step {
	return []step{
		{path: prefix + ".last", message: who + " last name", validate: notBlank("last name")},
		{path: prefix + ".first", message: who + " first name", validate: notBlank("first name")},
		{path: prefix + ".middle", message: who + " middle name", optional: true},
	}
}

func addressSteps(prefix string) []step {
	return []step{
		{path: prefix + ".street", message: "Street address"},
		{path: prefix + ".city", message: "City", validate: notBlank("city")},
		{path: prefix + ".state", message: "State code", optional: true, help: "Two-letter code; leave blank for foreign addresses"},
		{path: prefix + ".zipCode", message: "ZIP code", optional: true},
		{path: prefix + ".country", message: "Country", optional: true, help: "Leave blank for United States"},
	}
}

func dateRangeSteps(prefix, label string) []step {
	return []step{
		{path: prefix + ".from.date", message: label + " from (MM/YYYY)", validate: monthYear},
		{path: prefix + ".present", message: "Is this current?", kind: stepCheck},
		{path: prefix + ".to.date", message: label + " to (MM/YYYY)", validate: monthYear, optional: true},
	}
}

// flows maps section ids to their prompt sequences. The order within a flow
// mirrors the paper form.
var flows = map[string]flow{
	"identity": {
		steps: concat(
			nameSteps("name", "Legal"),
			[]step{
				{path: "name.suffix", message: "Suffix (Jr, Sr, II...)", optional: true},
				{path: "dateOfBirth", message: "Date of birth (MM/DD/YYYY)", validate: fullDate},
				{path: "dobEstimated", message: "Is the date of birth estimated?", kind: stepCheck},
				{path: "birthCity", message: "City of birth", validate: notBlank("city of birth")},
				{path: "birthCounty", message: "County of birth", optional: true},
				{path: "birthState", message: "State of birth", optional: true},
				{path: "birthCountry", message: "Country of birth", validate: notBlank("country of birth")},
				{path: "ssn.number", message: "Social Security number", validate: optionalMatch(ssnPattern, "an SSN as 123-45-6789")},
			},
		),
	},
	"section5": {
		steps: []step{
			{path: "hasOtherNames", message: "Have you used any other names?", kind: stepBranch},
		},
		entries: &entryFlow{
			list:  "entries",
			first: "Record an other name?",
			again: "Record another other name?",
			when:  "hasOtherNames",
			max:   sections.OtherNameSlots,
			steps: concat(
				nameSteps("name", "Other"),
				[]step{
					{path: "maidenName", message: "Maiden name", optional: true},
					{path: "dates.from.date", message: "Used from (MM/YYYY)", validate: monthYear},
					{path: "dates.to.date", message: "Used until (MM/YYYY)", validate: monthYear, optional: true},
					{path: "reason", message: "Reason for the name change"},
				},
			),
		},
	},
	"section6": {
		steps: []step{
			{path: "heightFeet", message: "Height: feet"},
			{path: "heightInches", message: "Height: inches"},
			{path: "weightPounds", message: "Weight in pounds"},
			{path: "hairColor", message: "Hair color", kind: stepSelect, options: sections.HairColors},
			{path: "eyeColor", message: "Eye color", kind: stepSelect, options: sections.EyeColors},
			{path: "sex", message: "Sex", kind: stepSelect, options: []string{"Male", "Female"}},
		},
	},
	"section7": {
		steps: []step{
			{path: "homeEmail", message: "Home email address", optional: true},
			{path: "workEmail", message: "Work email address", optional: true},
			{path: "phones[0].number", message: "Home telephone number", optional: true, validate: optionalMatch(phonePattern, "a telephone number")},
			{path: "phones[1].number", message: "Work telephone number", optional: true, validate: optionalMatch(phonePattern, "a telephone number")},
			{path: "phones[2].number", message: "Mobile telephone number", optional: true, validate: optionalMatch(phonePattern, "a telephone number")},
		},
	},
	"section8": {
		steps: []step{
			{path: "hasPassport", message: "Do you possess a U.S. passport?", kind: stepBranch},
			{path: "number", message: "Passport number", when: "hasPassport"},
			{path: "name.last", message: "Last name on the passport", when: "hasPassport"},
			{path: "name.first", message: "First name on the passport", when: "hasPassport"},
			{path: "issueDate.date", message: "Issue date (MM/YYYY)", validate: monthYear, when: "hasPassport"},
			{path: "expireDate.date", message: "Expiration date (MM/YYYY)", validate: monthYear, when: "hasPassport"},
		},
	},
	"section9": {
		steps: []step{
			{
				path:    "status",
				message: "Citizenship status",
				kind:    stepSelect,
				options: []string{
					"U.S. citizen born in the United States",
					"U.S. citizen born abroad to U.S. parents",
					"Naturalized U.S. citizen",
					"Derived U.S. citizen",
					"Not a U.S. citizen",
				},
				values: []string{
					sections.CitizenBornInUS,
					sections.CitizenBornAbroad,
					sections.CitizenNaturalized,
					sections.CitizenDerived,
					sections.CitizenNot,
				},
			},
			{path: "certificateNumber", message: "Certificate number", optional: true},
			{path: "courtName", message: "Naturalization court", optional: true},
			{path: "naturalizedDate.date", message: "Naturalization date (MM/YYYY)", validate: monthYear, optional: true},
			{path: "holdsForeign", message: "Do you hold or have you held dual citizenship?", kind: stepBranch},
		},
		entries: &entryFlow{
			list:  "foreign",
			first: "Record a foreign citizenship?",
			again: "Record another foreign citizenship?",
			when:  "holdsForeign",
			max:   sections.DualCitizenshipSlots,
			steps: []step{
				{path: "country", message: "Country of citizenship", validate: notBlank("country")},
				{path: "dates.from.date", message: "Held from (MM/YYYY)", validate: monthYear},
				{path: "dates.to.date", message: "Held until (MM/YYYY)", validate: monthYear, optional: true},
				{path: "howAcquired", message: "How was it acquired?"},
			},
		},
	},
	"section11": {
		entries: &entryFlow{
			list:  "entries",
			first: "Record where you live now?",
			again: "Record a previous residence?",
			max:   sections.ResidenceSlots,
			steps: concat(
				dateRangeSteps("dates", "Lived there"),
				addressSteps("address"),
				[]step{
					{path: "role", message: "Your role at this address", kind: stepSelect, options: sections.ResidenceRoles},
					{path: "verifier.name.last", message: "Verifier last name", help: "Someone who knew you at this address"},
					{path: "verifier.name.first", message: "Verifier first name"},
					{path: "verifier.telephone.number", message: "Verifier telephone", validate: optionalMatch(phonePattern, "a telephone number"), optional: true},
				},
			),
		},
	},
	"section12": {
		steps: []step{
			{path: "attended", message: "Have you attended school in the last 10 years?", kind: stepBranch},
		},
		entries: &entryFlow{
			list:  "entries",
			first: "Record a school?",
			again: "Record another school?",
			when:  "attended",
			max:   sections.EducationSlots,
			steps: concat(
				[]step{
					{path: "dates.from.date", message: "Attended from (MM/YYYY)", validate: monthYear},
					{path: "dates.to.date", message: "Attended until (MM/YYYY)", validate: monthYear, optional: true},
					{path: "schoolName", message: "School name", validate: notBlank("school name")},
					{path: "schoolType", message: "School type", kind: stepSelect, options: sections.SchoolTypes},
				},
				addressSteps("address"),
				[]step{
					{path: "receivedDegree", message: "Did you receive a degree or diploma?", kind: stepBranch},
					{path: "degree", message: "Degree or diploma", when: "receivedDegree"},
					{path: "degreeDate.date", message: "Date awarded (MM/YYYY)", validate: monthYear, when: "receivedDegree"},
				},
			),
		},
	},
	"section13": {
		entries: &entryFlow{
			list:  "entries",
			first: "Record your current employment activity?",
			again: "Record a previous employment activity?",
			max:   sections.EmploymentSlots,
			steps: concat(
				[]step{
					{path: "activity", message: "Employment activity", kind: stepSelect, options: sections.EmploymentActivities, help: "Include unemployment periods"},
					{path: "activityOther", message: "Describe the activity", optional: true},
				},
				dateRangeSteps("dates", "Employed"),
				[]step{
					{path: "employer", message: "Employer or activity name", optional: true},
					{path: "positionTitle", message: "Position title", optional: true},
				},
				addressSteps("address"),
				[]step{
					{path: "telephone.number", message: "Employer telephone", validate: optionalMatch(phonePattern, "a telephone number"), optional: true},
					{path: "supervisor.name", message: "Supervisor name", optional: true},
					{path: "supervisor.title", message: "Supervisor title", optional: true},
					{path: "supervisor.email", message: "Supervisor email", optional: true},
					{path: "supervisor.telephone.number", message: "Supervisor telephone", validate: optionalMatch(phonePattern, "a telephone number"), optional: true},
				},
			),
		},
	},
	"section14": {
		steps: []step{
			{path: "bornAfter1959", message: "Were you born male after December 31, 1959?", kind: stepBranch},
			{path: "registered", message: "Have you registered with the Selective Service System?", kind: stepSelect, options: []string{"YES", "NO", "I don't know"}, when: "bornAfter1959"},
			{path: "registrationNumber", message: "Registration number", optional: true, when: "bornAfter1959"},
			{path: "explanation", message: "Explanation", optional: true, when: "bornAfter1959"},
		},
	},
	"section15": {
		steps: []step{
			{path: "hasServed", message: "Have you served in the U.S. military?", kind: stepBranch},
		},
		entries: &entryFlow{
			list:  "entries",
			first: "Record a period of service?",
			again: "Record another period of service?",
			when:  "hasServed",
			max:   sections.MilitarySlots,
			steps: []step{
				{path: "branch", message: "Branch of service", kind: stepSelect, options: sections.ServiceBranches},
				{path: "dates.from.date", message: "Served from (MM/YYYY)", validate: monthYear},
				{path: "dates.to.date", message: "Served until (MM/YYYY)", validate: monthYear, optional: true},
				{path: "serviceNumber", message: "Service number", optional: true},
				{path: "officerEnlisted", message: "Officer or enlisted", kind: stepSelect, options: []string{"Officer", "Enlisted"}},
				{path: "discharged", message: "Were you discharged?", kind: stepBranch},
				{path: "dischargeType", message: "Type of discharge", kind: stepSelect, options: sections.DischargeTypes, when: "discharged"},
				{path: "dischargeDate.date", message: "Discharge date (MM/YYYY)", validate: monthYear, when: "discharged"},
				{path: "dischargeReason", message: "Reason for discharge", optional: true, when: "discharged"},
			},
		},
	},
	"section16": {
		entries: &entryFlow{
			list:  "people",
			count: sections.ReferenceCount,
			steps: concat(
				nameSteps("name", "Reference"),
				[]step{
					{path: "datesKnown.from.date", message: "Known since (MM/YYYY)", validate: monthYear},
					{path: "email", message: "Email address", optional: true},
					{path: "telephone.number", message: "Telephone number", validate: optionalMatch(phonePattern, "a telephone number")},
					{path: "relationship", message: "Relationship to you"},
				},
				addressSteps("address"),
			),
		},
	},
	"section18": {
		entries: &entryFlow{
			list:  "entries",
			first: "Record a relative?",
			again: "Record another relative?",
			max:   sections.RelativeSlots,
			steps: concat(
				[]step{
					{path: "type", message: "Relation", kind: stepSelect, options: sections.RelativeTypes, help: "List each living and deceased immediate relative"},
				},
				nameSteps("name", "Relative"),
				[]step{
					{path: "dateOfBirth", message: "Date of birth (MM/DD/YYYY)", validate: fullDate},
					{path: "birthCountry", message: "Country of birth"},
					{path: "citizenship", message: "Country of citizenship"},
					{path: "deceased", message: "Is this relative deceased?", kind: stepBranch},
					{path: "address.street", message: "Current street address", optional: true},
					{path: "address.city", message: "City", optional: true},
					{path: "address.state", message: "State code", optional: true},
					{path: "address.zipCode", message: "ZIP code", optional: true},
					{path: "address.country", message: "Country", optional: true},
				},
			),
		},
	},
	"section22": {
		steps: []step{
			{path: "hasSummons", message: "In the last 7 years, have you been issued a summons, citation, or ticket to appear in court?", kind: stepBranch},
			{path: "hasArrest", message: "In the last 7 years, have you been arrested?", kind: stepBranch},
			{path: "hasCharge", message: "In the last 7 years, have you been charged with an offense?", kind: stepBranch},
			{path: "everConvicted", message: "Have you ever been convicted of an offense involving firearms or explosives?", kind: stepBranch},
		},
		entries: &entryFlow{
			list:    "offenses",
			first:   "Record an offense?",
			again:   "Record another offense?",
			whenAny: []string{"hasSummons", "hasArrest", "hasCharge", "everConvicted"},
			max:     sections.OffenseSlots,
			steps: []step{
				{path: "date.date", message: "Date of the offense (MM/YYYY)", validate: monthYear},
				{path: "description", message: "Describe the offense", validate: notBlank("description")},
				{path: "involvedDomesticViolence", message: "Did it involve domestic violence?", kind: stepCheck},
				{path: "involvedFirearms", message: "Did it involve firearms or explosives?", kind: stepCheck},
				{path: "involvedAlcoholDrugs", message: "Did it involve alcohol or drugs?", kind: stepCheck},
				{path: "courtName", message: "Court name"},
				{path: "courtAddress.city", message: "Court city"},
				{path: "courtAddress.state", message: "Court state code", optional: true},
				{path: "outcome", message: "Outcome"},
			},
		},
	},
	"section23": {
		steps: []step{
			{path: "hasUsed", message: "In the last 7 years, have you illegally used a drug or controlled substance?", kind: stepBranch},
			{path: "hasDistributed", message: "In the last 7 years, have you been involved in the illegal purchase, sale, or distribution of a drug?", kind: stepBranch},
			{path: "usedWithClearance", message: "Have you ever illegally used a drug while holding a security clearance?", kind: stepBranch},
		},
		entries: &entryFlow{
			list:    "uses",
			first:   "Record drug involvement?",
			again:   "Record another drug involvement?",
			whenAny: []string{"hasUsed", "hasDistributed", "usedWithClearance"},
			max:     sections.DrugUseSlots,
			steps: []step{
				{path: "drugType", message: "Type of drug or substance", validate: notBlank("drug type")},
				{path: "dates.from.date", message: "First involvement (MM/YYYY)", validate: monthYear},
				{path: "dates.to.date", message: "Most recent involvement (MM/YYYY)", validate: monthYear, optional: true},
				{path: "natureOfUse", message: "Nature and frequency"},
				{path: "futureIntent", message: "Do you intend to use this substance in the future?", kind: stepBranch},
				{path: "futureIntentExplanation", message: "Explain your intent", when: "futureIntent"},
			},
		},
	},
	"section26": {
		steps: []step{
			{path: "hasBankruptcy", message: "In the last 7 years, have you filed a petition under any chapter of the bankruptcy code?", kind: stepBranch},
			{path: "hasTaxFailure", message: "In the last 7 years, have you failed to file or pay federal, state, or other taxes?", kind: stepBranch},
			{path: "hasDelinquencies", message: "Are you currently over 120 days delinquent on any debt?", kind: stepBranch},
		},
		entries: &entryFlow{
			list:  "delinquencies",
			first: "Record a delinquent debt?",
			again: "Record another delinquent debt?",
			when:  "hasDelinquencies",
			max:   sections.DelinquencySlots,
			steps: []step{
				{path: "creditor", message: "Creditor name", validate: notBlank("creditor")},
				{path: "amountDollars", message: "Amount in dollars", validate: optionalMatch(regexp.MustCompile(`^\d+$`), "a whole dollar amount")},
				{path: "reason", message: "Reason for the delinquency"},
				{path: "status", message: "Current status"},
				{path: "dateIncurred.date", message: "Date incurred (MM/YYYY)", validate: monthYear},
				{path: "resolved", message: "Has it been resolved?", kind: stepBranch},
				{path: "dateResolved.date", message: "Date resolved (MM/YYYY)", validate: monthYear, when: "resolved"},
			},
		},
	},
	"section27": {
		steps: []step{
			{path: "hasUnauthorizedAccess", message: "In the last 7 years, have you illegally accessed an information technology system?", kind: stepBranch},
			{path: "hasUnauthorizedModify", message: "In the last 7 years, have you illegally modified or destroyed information on an IT system?", kind: stepBranch},
			{path: "hasUnauthorizedUse", message: "In the last 7 years, have you introduced or used unauthorized software or media on an IT system?", kind: stepBranch},
		},
		entries: &entryFlow{
			list:    "incidents",
			first:   "Record an incident?",
			again:   "Record another incident?",
			whenAny: []string{"hasUnauthorizedAccess", "hasUnauthorizedModify", "hasUnauthorizedUse"},
			max:     sections.TechIncidentSlots,
			steps: []step{
				{path: "date.date", message: "Date of the incident (MM/YYYY)", validate: monthYear},
				{path: "description", message: "Describe the incident", validate: notBlank("description")},
				{path: "location.city", message: "Where did it happen: city"},
				{path: "location.state", message: "State code", optional: true},
				{path: "action", message: "What action was taken?"},
			},
		},
	},
	"section29": {
		steps: []step{
			{path: "isMemberTerror", message: "Are you now or have you ever been a member of an organization dedicated to terrorism?", kind: stepBranch},
			{path: "isMemberOverthrow", message: "Are you now or have you ever been a member of an organization dedicated to the violent overthrow of the U.S. Government?", kind: stepBranch},
			{path: "hasActivities", message: "Have you ever engaged in activities designed to overthrow the U.S. Government by force?", kind: stepBranch},
			{path: "hasAssociation", message: "Have you ever associated with anyone involved in activities to further terrorism?", kind: stepBranch},
			{path: "explanation", message: "Explain any activities or associations", optional: true},
		},
		entries: &entryFlow{
			list:    "memberships",
			first:   "Record an organization?",
			again:   "Record another organization?",
			whenAny: []string{"isMemberTerror", "isMemberOverthrow"},
			max:     sections.AssociationSlots,
			steps: concat(
				[]step{
					{path: "organization", message: "Organization name", validate: notBlank("organization")},
				},
				addressSteps("address"),
				[]step{
					{path: "dates.from.date", message: "Involved from (MM/YYYY)", validate: monthYear},
					{path: "dates.to.date", message: "Involved until (MM/YYYY)", validate: monthYear, optional: true},
					{path: "positions", message: "Positions held", optional: true},
					{path: "contribution", message: "Contributions made", optional: true},
					{path: "reason", message: "Reason for involvement"},
				},
			),
		},
	},
}

func concat(groups ...[]step) []step {
	var out []step
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

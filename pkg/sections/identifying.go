package sections

import (
	"strconv"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

// Identifying covers physical identifying information.
type Identifying struct {
	HeightFeet   form.Field[string] `json:"heightFeet"`
	HeightInches form.Field[string] `json:"heightInches"`
	WeightPounds form.Field[string] `json:"weightPounds"`
	HairColor    form.Field[string] `json:"hairColor"`
	EyeColor     form.Field[string] `json:"eyeColor"`
	Sex          form.Field[string] `json:"sex"`
}

// HairColors lists the dropdown options the form offers.
var HairColors = []string{
	"Bald", "Black", "Blonde or Strawberry", "Brown", "Gray or Partially Gray",
	"Red or Auburn", "Sandy", "White", "Blue", "Green", "Orange", "Pink",
	"Purple", "Unspecified or Unknown",
}

// EyeColors lists the dropdown options the form offers.
var EyeColors = []string{
	"Black", "Blue", "Brown", "Gray", "Green", "Hazel", "Maroon",
	"Multicolored", "Pink", "Unknown",
}

// NewIdentifying binds the section to its PDF fields.
func NewIdentifying() *Identifying {
	return &Identifying{
		HeightFeet:   form.NewField[string]("form1[0].Sections1-6[0].DropDownList7[0]"),
		HeightInches: form.NewField[string]("form1[0].Sections1-6[0].DropDownList8[0]"),
		WeightPounds: form.NewField[string]("form1[0].Sections1-6[0].TextField11[5]"),
		HairColor:    form.NewField[string]("form1[0].Sections1-6[0].DropDownList10[0]"),
		EyeColor:     form.NewField[string]("form1[0].Sections1-6[0].DropDownList9[0]"),
		Sex:          form.NewField[string]("form1[0].Sections1-6[0].RadioButtonList[1]"),
	}
}

func (s *Identifying) ID() string    { return "section6" }
func (s *Identifying) Title() string { return "Your Identifying Information" }

func (s *Identifying) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Required(c, "section6.heightFeet", s.HeightFeet.Value, "height (feet)")
	validation.Required(c, "section6.weightPounds", s.WeightPounds.Value, "weight")
	validation.Required(c, "section6.hairColor", s.HairColor.Value, "hair color")
	validation.Required(c, "section6.eyeColor", s.EyeColor.Value, "eye color")
	validation.Required(c, "section6.sex", s.Sex.Value, "sex")

	if v := s.HeightFeet.Value; v != "" {
		if feet, err := strconv.Atoi(v); err != nil || feet < 1 || feet > 9 {
			c.Add("section6.heightFeet", "height (feet) must be between 1 and 9")
		}
	}
	if v := s.HeightInches.Value; v != "" {
		if inches, err := strconv.Atoi(v); err != nil || inches < 0 || inches > 11 {
			c.Add("section6.heightInches", "height (inches) must be between 0 and 11")
		}
	}
	if v := s.WeightPounds.Value; v != "" {
		if pounds, err := strconv.Atoi(v); err != nil || pounds < 10 || pounds > 999 {
			c.Add("section6.weightPounds", "weight must be a number of pounds")
		}
	}
	if v := s.HairColor.Value; v != "" && !oneOf(v, HairColors) {
		c.Add("section6.hairColor", "hair color %q is not one of the form's options", v)
	}
	if v := s.EyeColor.Value; v != "" && !oneOf(v, EyeColors) {
		c.Add("section6.eyeColor", "eye color %q is not one of the form's options", v)
	}
	return c.Issues()
}

func (s *Identifying) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}

func oneOf(v string, options []string) bool {
	for _, opt := range options {
		if opt == v {
			return true
		}
	}
	return false
}

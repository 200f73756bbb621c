// Package wizard drives an interactive terminal session that walks an
// applicant through the questionnaire section by section. Prompting goes
// through a PromptDriver so the flows are testable without a terminal;
// answers land on the questionnaire through field paths, never by mutating
// section structs directly.
package wizard

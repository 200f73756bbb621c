package wizard

import "errors"

var (
	// ErrAborted signals the user aborted the session (e.g., Ctrl+C).
	ErrAborted = errors.New("wizard: aborted")
	// ErrUnknownSection is returned when a requested section id is not part
	// of the questionnaire.
	ErrUnknownSection = errors.New("wizard: unknown section")
)

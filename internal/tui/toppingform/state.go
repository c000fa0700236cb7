package toppingform

import "github.com/thenoetrevino/pizzeria/internal/client"

// Phase is where the form is in its submit cycle
type Phase int

const (
	// Idle accepts a new submission
	Idle Phase = iota
	// Submitting has one request in flight; further submissions are ignored
	Submitting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// FormState holds the form's two user-visible fields.
// A success clears both; a failure sets the error and keeps the name.
type FormState struct {
	name         string
	errorMessage string
}

// Name returns the current field value.
func (s *FormState) Name() string {
	return s.name
}

// SetName replaces the field value. No validation happens here.
func (s *FormState) SetName(name string) {
	s.name = name
}

// ErrorMessage returns the message from the last failed submission, if any.
func (s *FormState) ErrorMessage() string {
	return s.errorMessage
}

// HasError reports whether an error message is displayed.
func (s *FormState) HasError() bool {
	return s.errorMessage != ""
}

// Succeed resets the form after a successful submission.
func (s *FormState) Succeed() {
	s.name = ""
	s.errorMessage = ""
}

// Fail records a failed submission; an empty message falls back to client.FallbackErrorMessage.
func (s *FormState) Fail(message string) {
	if message == "" {
		message = client.FallbackErrorMessage
	}
	s.errorMessage = message
}

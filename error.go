package phrasal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownTerm is matched by every *UnknownTermError via errors.Is.
	ErrUnknownTerm = errors.New("unknown word in phrasal function")

	// ErrNoTemplates is returned when a registry has no templates.
	ErrNoTemplates = errors.New("no templates registered")

	// ErrNilFunc is returned when a template has no target function.
	ErrNilFunc = errors.New("template has no function")

	// ErrEmptyPath is returned when a template has no positional segments.
	ErrEmptyPath = errors.New("template path is empty")

	// ErrEmptyKey is returned when a segment has an empty key.
	ErrEmptyKey = errors.New("segment key is empty")

	// ErrDuplicateKey is returned when a key appears more than once across
	// a template's path and floating segments.
	ErrDuplicateKey = errors.New("duplicate segment key")

	// ErrUnresolvedKey is returned by Case when the key it depends on has
	// not been matched yet.
	ErrUnresolvedKey = errors.New("segment depends on unresolved key")

	// ErrComplete is returned by Walk when words remain after the phrase
	// produced a terminal.
	ErrComplete = errors.New("phrase already complete")

	// ErrIncomplete is returned when a terminal is required but the phrase
	// stopped short of the end of the path.
	ErrIncomplete = errors.New("phrase incomplete")

	// ErrNotPhrase is returned by Walk when words remain after a word
	// resolved to a member of the target.
	ErrNotPhrase = errors.New("word is not part of a phrase")

	// ErrUnknownFunc is returned when a grammar document names a function
	// that was not supplied.
	ErrUnknownFunc = errors.New("unknown function")

	// ErrInvalidGrammar is returned when a grammar document is well-formed
	// JSON but does not describe templates.
	ErrInvalidGrammar = errors.New("invalid grammar")
)

// UnknownTermError reports a word that matched no live segment.
type UnknownTermError struct {
	// Word is the offending word.
	Word string

	// Phrase holds the words accepted before Word.
	Phrase []string
}

func (e *UnknownTermError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownTerm.Error(), e.Word)
}

// Is reports whether target is ErrUnknownTerm.
func (e *UnknownTermError) Is(target error) bool { return target == ErrUnknownTerm }

// Path returns the full dotted phrase up to and including the offending word.
func (e *UnknownTermError) Path() string {
	return strings.Join(append(append([]string(nil), e.Phrase...), e.Word), ".")
}

// templateError ties a validation error to the template that caused it.
type templateError struct {
	index int
	name  string
	err   error
}

func (e *templateError) Error() string {
	if e.name != "" {
		return fmt.Sprintf("template %d (%s): %v", e.index, e.name, e.err)
	}
	return fmt.Sprintf("template %d: %v", e.index, e.err)
}

func (e *templateError) Unwrap() error { return e.err }

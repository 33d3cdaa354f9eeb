package phrasal

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Phrasal holds the templates of a phrasal function and the target they
// are layered over.
//
// Usage:
//  1. Create a Phrasal with New
//  2. Register templates with Add
//  3. Get the root node with Root and step through words
//
// Phrasal is safe for concurrent use after configuration. Do not call Add
// after calling Root.
type Phrasal[R any] struct {
	target    Target
	templates []*Template[R]
	hooks     hooks
}

// New creates a Phrasal over target with the given options. A nil target
// is treated as Empty.
//
// Example:
//
//	p := phrasal.New[Result](phrasal.Empty(),
//	    phrasal.WithOnUnknownTerm(func(phrase, word string) {
//	        log.Printf("bad word %q after %q", word, phrase)
//	    }),
//	)
func New[R any](target Target, opts ...Option) *Phrasal[R] {
	if target == nil {
		target = Empty()
	}
	p := &Phrasal[R]{target: target}
	for _, opt := range opts {
		opt(&p.hooks)
	}
	return p
}

// Add registers a template. Templates are tried in registration order for
// the first word of a phrase; the first that accepts it owns the rest of
// the phrase.
//
// Example:
//
//	p.Add(phrasal.Template[Result]{
//	    Name: "make",
//	    Fn:   makeFn,
//	    Path: []phrasal.Segment{phrasal.OneOf("who", "my", "your"), phrasal.OneOf("what", "day")},
//	})
func (p *Phrasal[R]) Add(t Template[R]) {
	p.templates = append(p.templates, &t)
}

// Root validates the registered templates and returns the root node.
// Every validation problem is reported, not only the first.
func (p *Phrasal[R]) Root() (*Node[R], error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Node[R]{p: p}, nil
}

// Build is shorthand for New, Add for each template, and Root.
func Build[R any](target Target, templates ...Template[R]) (*Node[R], error) {
	p := New[R](target)
	for _, t := range templates {
		p.Add(t)
	}
	return p.Root()
}

// receiver returns the value t's function and value sets are bound to.
func (p *Phrasal[R]) receiver(t *Template[R]) any {
	if t.Bind != nil {
		return t.Bind
	}
	return p.target.Receiver()
}

func (p *Phrasal[R]) validate() error {
	if len(p.templates) == 0 {
		return ErrNoTemplates
	}

	var result *multierror.Error
	for i, t := range p.templates {
		for _, err := range checkTemplate(t) {
			result = multierror.Append(result, &templateError{index: i, name: t.Name, err: err})
		}
	}
	return result.ErrorOrNil()
}

func checkTemplate[R any](t *Template[R]) []error {
	var errs []error
	if t.Fn == nil {
		errs = append(errs, ErrNilFunc)
	}
	if len(t.Path) == 0 {
		errs = append(errs, ErrEmptyPath)
	}

	seen := make(map[string]struct{}, len(t.Path)+len(t.Floating))
	check := func(seg Segment) {
		if seg.Key == "" {
			errs = append(errs, ErrEmptyKey)
			return
		}
		if _, dup := seen[seg.Key]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateKey, seg.Key))
			return
		}
		seen[seg.Key] = struct{}{}
	}
	for _, seg := range t.Path {
		check(seg)
	}
	for _, seg := range t.Floating {
		check(seg)
	}
	return errs
}

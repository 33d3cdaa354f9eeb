package phrasal

import (
	"slices"
	"strings"
	"unicode"
)

// state is the match progress of one branch of a phrase. It is never
// modified after creation; every accepted word yields a new state.
type state[R any] struct {
	template  *Template[R] // nil at the root
	remaining []Segment
	opts      Options
	words     []string
}

func (s state[R]) root() bool { return s.template == nil }

func (s state[R]) phrase() string { return strings.Join(s.words, ".") }

// outcome describes how the evaluator disposed of a word.
type outcome int

const (
	noMatch outcome = iota
	advanced
	completed
)

// decision is the evaluator's answer for a single word.
type decision[R any] struct {
	outcome outcome
	key     string
	next    state[R]
}

// evaluate matches word against the live templates of st. At the root each
// template is tried in registration order and the first that matches
// becomes the only live template of the branch.
func (p *Phrasal[R]) evaluate(st state[R], word string) (decision[R], error) {
	if !st.root() {
		return p.matchTemplate(st.template, st, word)
	}
	for _, t := range p.templates {
		d, err := p.matchTemplate(t, state[R]{
			template:  t,
			remaining: t.Path,
			opts:      st.opts,
			words:     st.words,
		}, word)
		if err != nil || d.outcome != noMatch {
			return d, err
		}
	}
	return decision[R]{}, nil
}

// matchTemplate tries the unbound floating segments of t, then the head of
// the remaining path.
func (p *Phrasal[R]) matchTemplate(t *Template[R], st state[R], word string) (decision[R], error) {
	recv := p.receiver(t)

	for _, seg := range t.Floating {
		if st.opts.Has(seg.Key) {
			continue
		}
		ok, err := accepts(seg, recv, st.opts, word)
		if err != nil {
			return decision[R]{}, err
		}
		if ok {
			return decision[R]{
				outcome: advanced,
				key:     seg.Key,
				next:    st.bind(seg.Key, word, st.remaining),
			}, nil
		}
	}

	if len(st.remaining) == 0 {
		return decision[R]{}, nil
	}
	head := st.remaining[0]
	ok, err := accepts(head, recv, st.opts, word)
	if err != nil || !ok {
		return decision[R]{}, err
	}

	d := decision[R]{
		outcome: advanced,
		key:     head.Key,
		next:    st.bind(head.Key, word, st.remaining[1:]),
	}
	if len(d.next.remaining) == 0 {
		d.outcome = completed
	}
	return d, nil
}

// bind returns the state after word is bound to key.
func (s state[R]) bind(key, word string, remaining []Segment) state[R] {
	return state[R]{
		template:  s.template,
		remaining: remaining,
		opts:      s.opts.with(key, word),
		words:     append(s.words[:len(s.words):len(s.words)], word),
	}
}

func accepts(seg Segment, recv any, opts Options, word string) (bool, error) {
	words, err := resolve(seg, recv, opts)
	if err != nil {
		return false, err
	}
	return slices.Contains(words, word), nil
}

// isIdentifier reports whether word looks like a plain member name: a
// letter or underscore followed by letters, digits, or underscores.
// Other words are treated as foreign accesses and never rejected.
func isIdentifier(word string) bool {
	if word == "" {
		return false
	}
	for i, r := range word {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

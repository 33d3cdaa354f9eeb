package phrasal

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies what a word resolved to.
type Kind int

const (
	// KindNode means the word was accepted and the phrase continues.
	KindNode Kind = iota + 1

	// KindTerminal means the word completed the phrase.
	KindTerminal

	// KindValue means the word was answered by the target, not the grammar.
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindTerminal:
		return "terminal"
	case KindValue:
		return "value"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Step is the result of feeding one word to a node. Exactly one of Node,
// Terminal, or Value is meaningful, as selected by Kind.
type Step[R any] struct {
	Kind Kind

	// Node continues the phrase. Set when Kind is KindNode.
	Node *Node[R]

	// Terminal is ready to invoke. Set when Kind is KindTerminal.
	Terminal *Terminal[R]

	// Value is the target member the word named. Set when Kind is
	// KindValue; Found is false when the target has no such member.
	Value any
	Found bool
}

// Node is one link of a phrase chain. The root node wraps the target; each
// accepted word produces a new node and leaves the old one untouched, so a
// node can be reused to start several branches.
type Node[R any] struct {
	p  *Phrasal[R]
	st state[R]
}

// Step feeds word to the node.
//
// At the root, a word naming a member of the target returns that member
// and bypasses the grammar. Otherwise the word is matched against the
// unbound floating segments and then the next path segment of the live
// templates. A word that matches nothing returns an *UnknownTermError if it
// looks like an identifier, and the target's member of that name (possibly
// absent) if it does not.
//
// Errors from computed value sets are returned unchanged.
func (n *Node[R]) Step(word string) (Step[R], error) {
	p := n.p

	if n.st.root() {
		if v, ok := p.target.Member(word); ok {
			p.hooks.passThrough(word, true)
			return Step[R]{Kind: KindValue, Value: v, Found: true}, nil
		}
	}

	d, err := p.evaluate(n.st, word)
	if err != nil {
		return Step[R]{}, err
	}

	switch d.outcome {
	case advanced:
		p.hooks.advance(d.next.phrase(), d.key, word)
		return Step[R]{Kind: KindNode, Node: &Node[R]{p: p, st: d.next}}, nil
	case completed:
		t := &Terminal[R]{
			template: d.next.template,
			recv:     p.receiver(d.next.template),
			opts:     d.next.opts,
			words:    d.next.words,
			hooks:    &p.hooks,
		}
		p.hooks.complete(t.Template(), t.Phrase(), t.opts)
		return Step[R]{Kind: KindTerminal, Terminal: t}, nil
	}

	if isIdentifier(word) {
		p.hooks.unknownTerm(n.st.phrase(), word)
		return Step[R]{}, &UnknownTermError{Word: word, Phrase: slices.Clone(n.st.words)}
	}

	var (
		v  any
		ok bool
	)
	if !n.st.root() {
		v, ok = p.target.Member(word)
	}
	p.hooks.passThrough(word, ok)
	return Step[R]{Kind: KindValue, Value: v, Found: ok}, nil
}

// Walk feeds words to the node in order and returns the last step.
// It fails with ErrComplete if words remain after a terminal, and with
// ErrNotPhrase if words remain after a target member.
func (n *Node[R]) Walk(words ...string) (Step[R], error) {
	cur := Step[R]{Kind: KindNode, Node: n}
	for i, w := range words {
		switch cur.Kind {
		case KindTerminal:
			return Step[R]{}, fmt.Errorf("%w: %q follows %q", ErrComplete, w, cur.Terminal.Phrase())
		case KindValue:
			return Step[R]{}, fmt.Errorf("%w: %q follows %q", ErrNotPhrase, w, words[i-1])
		}
		next, err := cur.Node.Step(w)
		if err != nil {
			return Step[R]{}, err
		}
		cur = next
	}
	return cur, nil
}

// Terminal walks a dotted phrase, e.g. "my.day", and returns the terminal
// it produces.
func (n *Node[R]) Terminal(phrase string) (*Terminal[R], error) {
	words := ParsePhrase(phrase)
	s, err := n.Walk(words...)
	if err != nil {
		return nil, err
	}
	switch s.Kind {
	case KindTerminal:
		return s.Terminal, nil
	case KindValue:
		return nil, fmt.Errorf("%w: %q", ErrNotPhrase, phrase)
	default:
		return nil, fmt.Errorf("%w: %q", ErrIncomplete, phrase)
	}
}

// Call walks a dotted phrase and invokes the resulting terminal with args.
//
// Example:
//
//	res, err := root.Call("my.day", Party{On: true})
func (n *Node[R]) Call(phrase string, args ...any) (R, error) {
	t, err := n.Terminal(phrase)
	if err != nil {
		var zero R
		return zero, err
	}
	return t.Invoke(args...)
}

// Next returns the words the node would accept, in the order they are
// tried: unbound floating words first, then the next path segment, for
// each live template. Target members are not included.
func (n *Node[R]) Next() ([]string, error) {
	live := n.p.templates
	if !n.st.root() {
		live = []*Template[R]{n.st.template}
	}

	var out []string
	add := func(seg Segment, recv any) error {
		words, err := resolve(seg, recv, n.st.opts)
		if err != nil {
			return err
		}
		for _, w := range words {
			if !slices.Contains(out, w) {
				out = append(out, w)
			}
		}
		return nil
	}

	for _, t := range live {
		recv := n.p.receiver(t)
		for _, seg := range t.Floating {
			if n.st.opts.Has(seg.Key) {
				continue
			}
			if err := add(seg, recv); err != nil {
				return nil, err
			}
		}
		remaining := t.Path
		if !n.st.root() {
			remaining = n.st.remaining
		}
		if len(remaining) > 0 {
			if err := add(remaining[0], recv); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Options returns the options bound so far.
func (n *Node[R]) Options() Options { return n.st.opts }

// Phrase returns the accepted words joined with dots.
func (n *Node[R]) Phrase() string { return n.st.phrase() }

// Depth returns the number of accepted words.
func (n *Node[R]) Depth() int { return len(n.st.words) }

// IsRoot reports whether the node is the root of a phrase.
func (n *Node[R]) IsRoot() bool { return n.st.root() }

// Template returns the name of the template the branch is narrowed to,
// or "" at the root.
func (n *Node[R]) Template() string {
	if n.st.root() {
		return ""
	}
	return n.st.template.Name
}

// ParsePhrase splits a dotted phrase into words. An empty phrase has no
// words.
func ParsePhrase(phrase string) []string {
	if phrase == "" {
		return nil
	}
	return strings.Split(phrase, ".")
}

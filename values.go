package phrasal

import (
	"fmt"
	"slices"
)

// ValueSet determines the legal words for a segment. Sets are resolved
// left to right: opts holds only the bindings made before the segment
// being resolved.
type ValueSet interface {
	Resolve(recv any, opts Options) ([]string, error)
}

// ValuesFunc is a function adapter for ValueSet. Use it for words that
// depend on earlier bindings:
//
//	phrasal.Computed("action", func(_ any, o phrasal.Options) ([]string, error) {
//	    if animal, _ := o.Get("animal"); animal == "dog" {
//	        return []string{"barking", "chewing", "playing"}, nil
//	    }
//	    return []string{"purring", "playing"}, nil
//	})
type ValuesFunc func(recv any, opts Options) ([]string, error)

// Resolve implements the ValueSet interface.
func (f ValuesFunc) Resolve(recv any, opts Options) ([]string, error) {
	return f(recv, opts)
}

// Static returns a ValueSet that always resolves to words.
func Static(words ...string) ValueSet {
	return static{words: slices.Clone(words)}
}

type static struct {
	words []string
}

func (s static) Resolve(any, Options) ([]string, error) {
	return slices.Clone(s.words), nil
}

// Case returns a ValueSet whose words are selected by the word already
// bound to key. A bound word with no entry in cases resolves to nothing.
// Resolving before key is bound returns ErrUnresolvedKey.
func Case(key string, cases map[string][]string) ValueSet {
	return caseSet{key: key, cases: cases}
}

type caseSet struct {
	key   string
	cases map[string][]string
}

func (c caseSet) Resolve(_ any, opts Options) ([]string, error) {
	w, ok := opts.Get(c.key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedKey, c.key)
	}
	return slices.Clone(c.cases[w]), nil
}

// Union returns a ValueSet holding the words of every set, in order,
// without duplicates. The first error stops resolution.
func Union(sets ...ValueSet) ValueSet {
	return union{sets: sets}
}

type union struct {
	sets []ValueSet
}

func (u union) Resolve(recv any, opts Options) ([]string, error) {
	var out []string
	for _, s := range u.sets {
		words, err := s.Resolve(recv, opts)
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			if !slices.Contains(out, w) {
				out = append(out, w)
			}
		}
	}
	return out, nil
}

// resolve returns the legal words for seg given the bindings so far.
func resolve(seg Segment, recv any, opts Options) ([]string, error) {
	if seg.Values == nil {
		return []string{seg.Key}, nil
	}
	return seg.Values.Resolve(recv, opts)
}

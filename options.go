package phrasal

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// Options is the ordered key→word mapping accumulated while a phrase is
// matched. The zero value is empty and ready to use.
//
// Options is immutable: binding a word produces a new Options and never
// changes one a caller already holds.
type Options struct {
	keys  []string
	words map[string]string
}

// Get returns the word bound to key.
func (o Options) Get(key string) (string, bool) {
	w, ok := o.words[key]
	return w, ok
}

// Has reports whether key has been bound.
func (o Options) Has(key string) bool {
	_, ok := o.words[key]
	return ok
}

// Len returns the number of bound keys.
func (o Options) Len() int { return len(o.keys) }

// Keys returns the bound keys in the order they were matched.
func (o Options) Keys() []string { return slices.Clone(o.keys) }

// Map returns a copy of the bindings as a plain map.
func (o Options) Map() map[string]string {
	if o.words == nil {
		return map[string]string{}
	}
	return maps.Clone(o.words)
}

// String formats the bindings in match order, e.g. "{who:my what:day}".
func (o Options) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(o.words[k])
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalJSON encodes the bindings as a JSON object with keys in match order.
func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(o.words[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// with returns a copy of o with key bound to word.
func (o Options) with(key, word string) Options {
	words := make(map[string]string, len(o.words)+1)
	maps.Copy(words, o.words)
	words[key] = word

	keys := make([]string, len(o.keys), len(o.keys)+1)
	copy(keys, o.keys)
	if _, ok := o.words[key]; !ok {
		keys = append(keys, key)
	}
	return Options{keys: keys, words: words}
}

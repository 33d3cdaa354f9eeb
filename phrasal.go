package phrasal

import (
	"strings"
	"time"
)

// Func is the target function of a template. It receives the template's
// bound receiver, the options matched from the phrase, and the runtime
// arguments passed to Terminal.Invoke.
//
// The result is returned to the caller unchanged. A Func that starts
// asynchronous work can return a channel or any other deferred value as R.
//
// Example:
//
//	func (c *Calendar) make(recv any, opts phrasal.Options, args ...any) (Event, error) {
//	    who, _ := opts.Get("who")
//	    what, _ := opts.Get("what")
//	    return c.schedule(who, what, args...)
//	}
type Func[R any] func(recv any, opts Options, args ...any) (R, error)

// Segment is one position in a phrase grammar.
type Segment struct {
	// Key names the option the matched word is bound to.
	Key string

	// Values determines the legal words. When nil, the only legal word is
	// Key itself.
	Values ValueSet
}

// Word returns a segment whose only legal word is key.
func Word(key string) Segment {
	return Segment{Key: key}
}

// OneOf returns a segment that accepts any of words. With no words the
// segment accepts nothing; use Word for a segment that accepts its key.
func OneOf(key string, words ...string) Segment {
	return Segment{Key: key, Values: Static(words...)}
}

// Computed returns a segment whose words are computed from earlier bindings.
func Computed(key string, fn ValuesFunc) Segment {
	return Segment{Key: key, Values: fn}
}

// Dynamic returns a segment backed by an arbitrary ValueSet.
func Dynamic(key string, values ValueSet) Segment {
	return Segment{Key: key, Values: values}
}

// Template is one phrase grammar and the function it invokes.
//
// Example:
//
//	phrasal.Template[Result]{
//	    Fn: makeFn,
//	    Path: []phrasal.Segment{
//	        phrasal.OneOf("who", "my", "your"),
//	        phrasal.OneOf("what", "day", "hour", "minute"),
//	    },
//	    Floating: []phrasal.Segment{phrasal.Word("not")},
//	}
type Template[R any] struct {
	// Name identifies the template in hooks, logs, and grammar documents.
	Name string

	// Fn is invoked once Path is fully matched.
	Fn Func[R]

	// Bind is the receiver passed to Fn and to computed value sets.
	// When nil, the target's receiver is used.
	Bind any

	// Path lists the segments that must match in order. It must not be empty.
	Path []Segment

	// Floating lists optional segments that may match at most once each,
	// at any point before Path is exhausted.
	Floating []Segment
}

// Terminal is a fully matched phrase, ready to be invoked.
type Terminal[R any] struct {
	template *Template[R]
	recv     any
	opts     Options
	words    []string
	hooks    *hooks
}

// Options returns the options matched from the phrase.
func (t *Terminal[R]) Options() Options { return t.opts }

// Template returns the name of the template that matched.
func (t *Terminal[R]) Template() string { return t.template.Name }

// Receiver returns the receiver Fn is invoked with.
func (t *Terminal[R]) Receiver() any { return t.recv }

// Phrase returns the matched words joined with dots.
func (t *Terminal[R]) Phrase() string { return strings.Join(t.words, ".") }

// Invoke calls the template's function with the matched options followed
// by args, and returns its result unmodified.
func (t *Terminal[R]) Invoke(args ...any) (R, error) {
	start := time.Now()
	res, err := t.template.Fn(t.recv, t.opts, args...)
	t.hooks.invoke(t.Phrase(), t.opts, err, time.Since(start))
	return res, err
}

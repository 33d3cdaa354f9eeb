// Package phrasal builds functions that are called through a chain of words
// instead of an argument list.
//
// A phrasal function is described by one or more templates. Each template
// lists the segments a phrase must walk through; every word of the phrase
// is checked against the grammar and bound to the segment's key. Once the
// path is exhausted the template's function is invoked with the bound
// options followed by any runtime arguments.
//
// # Quick Start
//
// Declare a template and build the root node:
//
//	root, err := phrasal.Build(phrasal.Empty(), phrasal.Template[string]{
//	    Fn: func(_ any, opts phrasal.Options, args ...any) (string, error) {
//	        return fmt.Sprint(opts, args), nil
//	    },
//	    Path: []phrasal.Segment{
//	        phrasal.OneOf("who", "my", "your"),
//	        phrasal.OneOf("what", "day", "hour", "minute"),
//	    },
//	})
//
// Then call it through a phrase:
//
//	out, err := root.Call("my.day", Party{On: true})
//	// out == "{who:my what:day} [{true}]"
//
// # Stepping Through Words
//
// Call and Terminal split a dotted phrase and walk it. For full control,
// feed one word at a time with Node.Step. Each step returns a Step whose
// Kind says what the word resolved to:
//
//   - KindNode: the word was accepted and the phrase continues
//   - KindTerminal: the word completed the phrase; invoke the Terminal
//   - KindValue: the word named a member of the target
//
// Nodes never change after creation, so a node can start any number of
// branches:
//
//	s, _ := root.Step("my")
//	day, _ := s.Node.Step("day")
//	hour, _ := s.Node.Step("hour")
//
// # Segments
//
// A segment has a key and a set of legal words:
//
//   - Word: the key itself is the only legal word
//   - OneOf: a fixed list of words
//   - Computed: words computed from the words matched so far
//   - Dynamic: any ValueSet, such as Case or Union
//
// Value sets are resolved left to right. A computed segment sees only the
// options bound before it:
//
//	phrasal.Dynamic("action", phrasal.Case("animal", map[string][]string{
//	    "dog": {"barking", "chewing", "playing"},
//	    "cat": {"purring", "playing"},
//	}))
//
// # Floating Segments
//
// Floating segments are optional and may appear anywhere before the path
// is exhausted. Each floating segment matches at most once per phrase; a
// repeat is matched against the path like any other word.
//
//	Floating: []phrasal.Segment{phrasal.Word("not")}
//
//	root.Call("not.my.day") // {not:not who:my what:day}
//	root.Call("my.not.day") // {who:my not:not what:day}
//	root.Call("my.day")     // {who:my what:day}
//
// # Multiple Templates
//
// When several templates are registered, the first word is tried against
// each in registration order. The first template that accepts it owns the
// rest of the phrase; words valid only in other templates are rejected.
//
// # Targets
//
// A phrasal function can be layered over an existing object. At the root,
// a word naming a member of the target returns that member unchanged, even
// if a template declares the same word. Below the root only the grammar
// applies.
//
//   - Empty: no members, for pure call builders
//   - Map: entries of a map[string]any
//   - Struct: exported fields and methods of a Go value
//   - JSON: top-level fields of a JSON document, read with gjson
//
// Templates with a nil Bind are invoked with the target's receiver.
//
// # Grammar Documents
//
// DecodeTemplates reads templates from JSON, binding each to a function
// supplied by name. See cmd/phrasal for a command that evaluates phrases
// against a grammar file.
//
// # Hooks
//
// Hooks provide observability without coupling to a specific logging or
// metrics system:
//
//	p := phrasal.New[Result](target,
//	    phrasal.WithOnUnknownTerm(func(phrase, word string) {
//	        metrics.Incr("phrasal.unknown")
//	    }),
//	    phrasal.WithOnSuccess(func(phrase string, opts phrasal.Options, d time.Duration) {
//	        metrics.Timing("phrasal.invoke", d, "phrase:"+phrase)
//	    }),
//	    phrasal.WithLogger(slog.Default()),
//	)
//
// # Error Handling
//
// A word that matches nothing and looks like an identifier fails with an
// *UnknownTermError; errors.Is(err, ErrUnknownTerm) reports it. Words that
// are not identifiers are treated as foreign accesses and resolve to the
// target's member, which may be absent. Errors from computed value sets
// are returned unchanged. There is no recovery inside a phrase: start again
// from the root.
//
// # Thread Safety
//
// Phrasal is safe for concurrent use after configuration is complete. Do
// not call Add after calling Root. Nodes and terminals are immutable.
package phrasal

package phrasal

import (
	"log/slog"
	"time"
)

// OnAdvanceFunc is called when a word is bound and the phrase continues.
// phrase holds every accepted word, including word.
type OnAdvanceFunc func(phrase, key, word string)

// OnCompleteFunc is called when a phrase fully matches a template.
type OnCompleteFunc func(template, phrase string, opts Options)

// OnUnknownTermFunc is called just before an UnknownTermError is returned.
type OnUnknownTermFunc func(phrase, word string)

// OnPassThroughFunc is called when a word resolves to a member of the
// target instead of a segment. found is false when the target has no such
// member.
type OnPassThroughFunc func(word string, found bool)

// OnSuccessFunc is called after a terminal's function returns without error.
type OnSuccessFunc func(phrase string, opts Options, duration time.Duration)

// OnFailureFunc is called after a terminal's function returns an error.
type OnFailureFunc func(phrase string, opts Options, err error, duration time.Duration)

// hooks holds all configured hook functions.
type hooks struct {
	onAdvance     []OnAdvanceFunc
	onComplete    []OnCompleteFunc
	onUnknownTerm []OnUnknownTermFunc
	onPassThrough []OnPassThroughFunc
	onSuccess     []OnSuccessFunc
	onFailure     []OnFailureFunc

	logger *slog.Logger
}

// Option configures a Phrasal.
type Option func(*hooks)

// WithOnAdvance adds a hook called each time a word is bound without
// completing the phrase. Multiple hooks are called in order.
//
// Example:
//
//	phrasal.WithOnAdvance(func(phrase, key, word string) {
//	    trace.Add(phrase)
//	})
func WithOnAdvance(fn OnAdvanceFunc) Option {
	return func(h *hooks) {
		h.onAdvance = append(h.onAdvance, fn)
	}
}

// WithOnComplete adds a hook called when a phrase produces a terminal.
// Multiple hooks are called in order.
func WithOnComplete(fn OnCompleteFunc) Option {
	return func(h *hooks) {
		h.onComplete = append(h.onComplete, fn)
	}
}

// WithOnUnknownTerm adds a hook called when a word is rejected.
// The error is still returned; hooks only observe it.
//
// Example:
//
//	phrasal.WithOnUnknownTerm(func(phrase, word string) {
//	    metrics.Incr("phrasal.unknown", "word:"+word)
//	})
func WithOnUnknownTerm(fn OnUnknownTermFunc) Option {
	return func(h *hooks) {
		h.onUnknownTerm = append(h.onUnknownTerm, fn)
	}
}

// WithOnPassThrough adds a hook called when a word is answered by the
// target instead of the grammar.
func WithOnPassThrough(fn OnPassThroughFunc) Option {
	return func(h *hooks) {
		h.onPassThrough = append(h.onPassThrough, fn)
	}
}

// WithOnSuccess adds a hook called after a terminal's function succeeds.
//
// Example:
//
//	phrasal.WithOnSuccess(func(phrase string, opts phrasal.Options, d time.Duration) {
//	    metrics.Timing("phrasal.invoke", d, "phrase:"+phrase)
//	})
func WithOnSuccess(fn OnSuccessFunc) Option {
	return func(h *hooks) {
		h.onSuccess = append(h.onSuccess, fn)
	}
}

// WithOnFailure adds a hook called after a terminal's function fails.
func WithOnFailure(fn OnFailureFunc) Option {
	return func(h *hooks) {
		h.onFailure = append(h.onFailure, fn)
	}
}

func (h *hooks) advance(phrase, key, word string) {
	if h == nil {
		return
	}
	h.debug("phrase advanced",
		slog.String("phrase", phrase),
		slog.String("key", key),
		slog.String("word", word),
	)
	for _, fn := range h.onAdvance {
		fn(phrase, key, word)
	}
}

func (h *hooks) complete(template, phrase string, opts Options) {
	if h == nil {
		return
	}
	h.debug("phrase complete",
		slog.String("template", template),
		slog.String("phrase", phrase),
		slog.Any("options", opts),
	)
	for _, fn := range h.onComplete {
		fn(template, phrase, opts)
	}
}

func (h *hooks) unknownTerm(phrase, word string) {
	if h == nil {
		return
	}
	h.debug("unknown word",
		slog.String("phrase", phrase),
		slog.String("word", word),
	)
	for _, fn := range h.onUnknownTerm {
		fn(phrase, word)
	}
}

func (h *hooks) passThrough(word string, found bool) {
	if h == nil {
		return
	}
	h.debug("target member",
		slog.String("word", word),
		slog.Bool("found", found),
	)
	for _, fn := range h.onPassThrough {
		fn(word, found)
	}
}

func (h *hooks) invoke(phrase string, opts Options, err error, d time.Duration) {
	if h == nil {
		return
	}
	if err != nil {
		h.debug("phrase failed",
			slog.String("phrase", phrase),
			slog.Any("error", err),
			slog.Duration("duration", d),
		)
		for _, fn := range h.onFailure {
			fn(phrase, opts, err, d)
		}
		return
	}
	h.debug("phrase invoked",
		slog.String("phrase", phrase),
		slog.Duration("duration", d),
	)
	for _, fn := range h.onSuccess {
		fn(phrase, opts, d)
	}
}

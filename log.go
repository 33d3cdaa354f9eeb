package phrasal

import (
	"context"
	"log/slog"
)

// WithLogger sets a logger that receives a debug record for every
// decision the engine makes. Records carry the phrase, key, and word as
// attributes.
//
// Example:
//
//	p := phrasal.New[Result](phrasal.Empty(),
//	    phrasal.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
//	)
func WithLogger(l *slog.Logger) Option {
	return func(h *hooks) {
		h.logger = l
	}
}

func (h *hooks) debug(msg string, attrs ...slog.Attr) {
	if h.logger == nil {
		return
	}
	h.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/markuspf/libsemigroups/pkg/observability"
)

// logHooks adapts enumeration events to the CLI logger. Registered when the
// problem file sets report = true.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) observability.EnumerationHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnEnumerateStart(_ context.Context, currentSize, limit int) {
	h.logger.Debug("enumerate", "size", currentSize, "limit", limit)
}

func (h *logHooks) OnProgress(_ context.Context, size, rules, maxWordLength int) {
	h.logger.Info("progress", "size", size, "rules", rules, "wordlen", maxWordLength)
}

func (h *logHooks) OnEnumerateDone(_ context.Context, size, rules int, done bool, elapsed time.Duration) {
	h.logger.Info("enumerate finished",
		"size", size, "rules", rules, "done", done,
		"elapsed", elapsed.Round(time.Millisecond))
}

package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/roster/internal/randomuser"
	"github.com/five82/roster/internal/state"
)

// Loader turns a page request into the state action that answers it.
type Loader struct {
	fetcher randomuser.PageFetcher
	logger  *zap.Logger
	now     func() time.Time
}

// NewLoader wraps fetcher. A nil logger discards output.
func NewLoader(fetcher randomuser.PageFetcher, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fetcher: fetcher, logger: logger, now: time.Now}
}

// Load fetches page for request seq. It blocks until the fetch completes and
// never returns nil: failures become state.PageFailed.
func (l *Loader) Load(ctx context.Context, seq uint64, page int) state.Action {
	start := l.now()
	result, err := l.fetcher.FetchPage(ctx, page)
	at := l.now()
	if err != nil {
		l.logger.Warn("page load failed",
			zap.Uint64("seq", seq),
			zap.Int("page", page),
			zap.Error(err))
		return state.PageFailed{Seq: seq, Err: err, At: at}
	}

	served := result.Number
	if served == 0 {
		served = page
	}
	l.logger.Info("page loaded",
		zap.Uint64("seq", seq),
		zap.Int("page", page),
		zap.Int("records", len(result.Employees)),
		zap.Duration("elapsed", at.Sub(start)))
	return state.PageLoaded{
		Seq:       seq,
		Page:      served,
		Employees: result.Employees,
		Total:     result.Total,
		At:        at,
	}
}

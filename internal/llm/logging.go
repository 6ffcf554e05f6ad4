package llm

import (
	"context"
	"time"

	"github.com/huvdesign/brandcheck/internal/logger"
)

// LoggingProvider logs every request with its latency and token usage.
type LoggingProvider struct {
	inner Provider
	log   *logger.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *logger.Logger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	l.log.Tracef("llm request to %s: %d message(s), max_tokens=%d", l.inner.ModelID(), len(req.Messages), req.MaxTokens)

	resp, err := l.inner.Generate(ctx, req)
	elapsed := time.Since(start).Round(time.Millisecond)

	if err != nil {
		l.log.Warnf("llm %s failed after %s: %v", l.inner.ModelID(), elapsed, err)
		return nil, err
	}
	l.log.Debugf("llm %s answered in %s (in=%d out=%d tokens)",
		resp.Model, elapsed, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

package content

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds a fetch when the caller passes zero.
const DefaultTimeout = 3 * time.Second

type fetchResult struct {
	pairs []Pair
	err   error
}

// Resolve fetches the deck for topic and never fails: an error, an empty
// result, a timeout or a cancelled ctx all produce a placeholder deck.
// It returns only after the fetch has finished or been abandoned, so the
// caller can start a session right after.
func Resolve(ctx context.Context, p Provider, topic string, timeout time.Duration, logger *log.Logger) *Deck {
	if logger == nil {
		logger = log.Default()
	}
	if p == nil {
		logger.Warn("no content provider, using placeholder", "topic", topic)
		return PlaceholderDeck()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Buffered so an abandoned fetch can still complete and exit.
	done := make(chan fetchResult, 1)
	go func() {
		pairs, err := p.Fetch(ctx, topic)
		done <- fetchResult{pairs: pairs, err: err}
	}()

	var res fetchResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res.err = ctx.Err()
	}

	if res.err != nil {
		if errors.Is(res.err, context.DeadlineExceeded) {
			logger.Warn("content fetch timed out, using placeholder", "topic", topic, "timeout", timeout)
		} else {
			logger.Warn("content fetch failed, using placeholder", "topic", topic, "err", res.err)
		}
		return PlaceholderDeck()
	}

	pairs := clean(res.pairs)
	if len(pairs) == 0 {
		logger.Warn("content fetch returned nothing, using placeholder", "topic", topic)
		return PlaceholderDeck()
	}

	logger.Debug("content resolved", "topic", topic, "pairs", len(pairs))
	return NewDeck(pairs)
}

package interpreter

import (
	"bufio"
	"context"
	"io"

	internalstrings "github.com/amonks/butler/internal/strings"
	"golang.org/x/sync/errgroup"
)

// LineSource reads finalized utterances from r, one per non-blank line with
// surrounding whitespace trimmed, and sends them to out. It closes out when r is
// exhausted or ctx ends.
func LineSource(ctx context.Context, r io.Reader, out chan<- string) error {
	defer close(out)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := internalstrings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case out <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

// Listen dispatches each utterance from src in order and passes the result
// to fn. It returns nil when src is closed and ctx's error when ctx ends.
func Listen(ctx context.Context, d *Dispatcher, src <-chan string, fn func(Result)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text, ok := <-src:
			if !ok {
				return nil
			}
			result := d.Dispatch(ctx, text)
			if fn != nil {
				fn(result)
			}
		}
	}
}

// ListenReader runs LineSource over r and Listen over its output until r
// is exhausted. A read error or ctx ending stops both. It only returns
// once the pending read on r completes.
func ListenReader(ctx context.Context, d *Dispatcher, r io.Reader, fn func(Result)) error {
	g, ctx := errgroup.WithContext(ctx)
	lines := make(chan string)

	g.Go(func() error {
		return LineSource(ctx, r, lines)
	})
	g.Go(func() error {
		return Listen(ctx, d, lines, fn)
	})
	return g.Wait()
}

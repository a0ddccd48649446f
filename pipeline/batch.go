package pipeline

import (
	"context"

	"github.com/fwojciec/cjkdoc"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc is called after each session in a batch finishes.
type ProgressFunc func(completed, total int, result *cjkdoc.Result)

// ConvertAll runs independent sessions with at most concurrency of them at
// a time and returns their results in request order. Requests that have not
// started when ctx is cancelled fail with the context error; sessions that
// already started run to completion.
func (p *Pipeline) ConvertAll(ctx context.Context, reqs []Request, concurrency int, progress ProgressFunc) []*cjkdoc.Result {
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]*cjkdoc.Result, len(reqs))
	done := make(chan int)

	var g errgroup.Group
	g.SetLimit(concurrency)

	go func() {
		for i, req := range reqs {
			g.Go(func() error {
				results[i] = p.Convert(ctx, req)
				done <- i
				return nil
			})
		}
		_ = g.Wait()
		close(done)
	}()

	var completed int
	for i := range done {
		completed++
		if progress != nil {
			progress(completed, len(reqs), results[i])
		}
	}

	return results
}

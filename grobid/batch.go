package grobid

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lehigh-university-libraries/grobidmeta/record"
)

// Result is the outcome of one document in a batch.
type Result struct {
	Path string

	// Record is never nil; it is empty when Err is set.
	Record *record.Record

	// Err is the *LoadError explaining an empty Record, if any.
	Err error
}

// ExtractBatch extracts every path with at most workers documents in
// flight. Results are returned in input order. Per-document failures are
// reported in Result.Err and never stop the batch; the returned error is
// only set when ctx is cancelled.
func ExtractBatch(ctx context.Context, paths []string, opts Options, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(paths))
	for i, path := range paths {
		results[i] = Result{Path: path, Record: &record.Record{}}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rec, err := Load(path, opts)
			results[i].Record = collapse(rec, err, path, opts)
			results[i].Err = err

			return nil
		})
	}

	err := g.Wait()
	return results, err
}

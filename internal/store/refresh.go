package store

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchAll runs the given fetches concurrently and waits for all of them.
// A failing fetch does not cancel the others; the first error is returned.
func FetchAll(ctx context.Context, fetches ...func(context.Context) error) error {
	var g errgroup.Group
	for _, fetch := range fetches {
		g.Go(func() error {
			return fetch(ctx)
		})
	}
	return g.Wait()
}

// Package aggregator fans out status fetches across all configured providers
// and keeps the latest normalized snapshot in memory.
package aggregator

import (
	"context"
	"sort"

	"github.com/bissquit/status-garden/internal/domain"
	"github.com/bissquit/status-garden/internal/providers"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Resolver selects the adapter for a provider. Implemented by
// providers.Dispatcher.
type Resolver interface {
	Resolve(provider domain.StatusProvider) providers.Fetcher
}

// Aggregator fetches all providers in parallel. Each adapter converts its
// own failures into a fallback record, so a single broken provider never
// fails or blocks the others.
type Aggregator struct {
	resolver  Resolver
	providers []domain.StatusProvider
	limiter   *rate.Limiter
}

// New creates an aggregator over an immutable provider list. fetchesPerSec
// bounds how fast a cycle hits upstreams; zero disables the limiter.
func New(resolver Resolver, statusProviders []domain.StatusProvider, fetchesPerSec float64) *Aggregator {
	var limiter *rate.Limiter
	if fetchesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(fetchesPerSec), 1)
	}
	return &Aggregator{
		resolver:  resolver,
		providers: statusProviders,
		limiter:   limiter,
	}
}

// FetchAll fetches every provider concurrently and returns one ServiceStatus
// per provider, sorted with services showing active incidents first. Every
// field of every record is populated; there are no partial results.
func (a *Aggregator) FetchAll(ctx context.Context) []domain.ServiceStatus {
	results := make([]domain.ServiceStatus, len(a.providers))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range a.providers {
		i, p := i, p
		g.Go(func() error {
			if a.limiter != nil {
				// A canceled wait falls through to Fetch, which fails fast
				// and produces the provider's fallback record.
				_ = a.limiter.Wait(ctx)
			}
			results[i] = a.resolver.Resolve(p).Fetch(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	sortStatuses(results)
	return results
}

// sortStatuses orders active-incidents-first by severity rank, keeping the
// configured provider order among equals.
func sortStatuses(statuses []domain.ServiceStatus) {
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].CurrentStatus.Rank() > statuses[j].CurrentStatus.Rank()
	})
}

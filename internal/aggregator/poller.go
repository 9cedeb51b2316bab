package aggregator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bissquit/status-garden/internal/domain"
	"github.com/google/uuid"
)

// Poller refreshes the aggregated snapshot on a fixed interval. Each cycle
// builds a fresh immutable snapshot; nothing is mutated in place.
type Poller struct {
	aggregator *Aggregator
	interval   time.Duration

	mu       sync.RWMutex
	snapshot []domain.ServiceStatus

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPoller creates a poller that refreshes every interval.
func NewPoller(aggregator *Aggregator, interval time.Duration) *Poller {
	return &Poller{
		aggregator: aggregator,
		interval:   interval,
		stopCh:     make(chan struct{}),
	}
}

// Start launches the poll loop. The first cycle runs immediately so the
// dashboard becomes ready without waiting a full interval.
func (p *Poller) Start(ctx context.Context) {
	slog.Info("starting status poller",
		"interval", p.interval,
		"providers", len(p.aggregator.providers),
	)

	p.wg.Add(1)
	go p.run(ctx)
}

// Stop gracefully stops the poller.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("status poller stopped")
}

// Snapshot returns a copy of the latest aggregated statuses, or nil if no
// cycle has completed yet.
func (p *Poller) Snapshot() []domain.ServiceStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.snapshot == nil {
		return nil
	}
	out := make([]domain.ServiceStatus, len(p.snapshot))
	copy(out, p.snapshot)
	return out
}

// Ready reports whether at least one poll cycle has completed.
func (p *Poller) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot != nil
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	cycleID := uuid.NewString()
	start := time.Now()

	results := p.aggregator.FetchAll(ctx)

	p.mu.Lock()
	p.snapshot = results
	p.mu.Unlock()

	degraded := 0
	for _, st := range results {
		recordProviderSeverity(st.ProviderID, st.CurrentStatus)
		if st.Degraded {
			degraded++
		}
	}
	recordCycle(time.Since(start), degraded)

	slog.Info("poll cycle complete",
		"cycle_id", cycleID,
		"providers", len(results),
		"degraded", degraded,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

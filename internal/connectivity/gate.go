// Package connectivity tracks whether the remote store is reachable. Sync
// decisions consult the gate instead of probing the network themselves, and
// interested collaborators subscribe to reachability transitions.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/akhmetov/go-remind-sync/internal/logger"
)

const defaultProbeTimeout = 5 * time.Second

// Prober answers a single reachability question. The HTTP server adapter
// satisfies this with its health-endpoint ping.
type Prober interface {
	Ping(ctx context.Context) error
}

// Gate is the single source of truth for remote reachability. Every probe is
// a real round trip: IsConnected never serves a cached verdict, the cached
// state exists only to detect transitions for subscribers.
type Gate struct {
	prober       Prober
	probeTimeout time.Duration
	logger       *logger.Logger

	mu       sync.Mutex
	online   bool
	observed bool
	subs     []func(online bool)
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewGate creates a Gate over the given prober. The background watcher is
// idle until Start is called; IsConnected works without it.
func NewGate(prober Prober, logger *logger.Logger) *Gate {
	return &Gate{
		prober:       prober,
		probeTimeout: defaultProbeTimeout,
		logger:       logger,
	}
}

// IsConnected performs a point-in-time reachability probe with a bounded
// deadline. Subscribers are notified if the verdict differs from the last
// observed state.
func (g *Gate) IsConnected(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, g.probeTimeout)
	defer cancel()

	err := g.prober.Ping(probeCtx)
	online := err == nil
	if err != nil {
		g.logger.Debug().Err(err).Str("func", "Gate.IsConnected").Msg("reachability probe failed")
	}

	g.recordState(online)
	return online
}

// OnChange registers a callback invoked on every reachability transition.
// Callbacks run synchronously on the probing goroutine and must not block.
func (g *Gate) OnChange(fn func(online bool)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs = append(g.subs, fn)
}

// Start stops any previous watcher and launches a background goroutine that
// re-probes every interval. If interval is zero or negative it defaults to
// 30 seconds. The goroutine exits when ctx is cancelled or Stop is called.
func (g *Gate) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	g.Stop()

	g.mu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.wg.Add(1)
	g.mu.Unlock()

	go func() {
		defer g.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-watchCtx.Done():
				return
			case <-t.C:
				g.IsConnected(watchCtx)
			}
		}
	}()
}

// Stop cancels the background watcher and blocks until it has exited. Safe
// to call when the watcher is not running.
func (g *Gate) Stop() {
	g.mu.Lock()
	cancel := g.cancel
	g.cancel = nil
	g.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	g.wg.Wait()
}

func (g *Gate) recordState(online bool) {
	g.mu.Lock()
	changed := !g.observed || g.online != online
	g.observed = true
	g.online = online
	subs := make([]func(bool), len(g.subs))
	copy(subs, g.subs)
	g.mu.Unlock()

	if !changed {
		return
	}

	g.logger.Info().Bool("online", online).Str("func", "Gate.recordState").Msg("reachability changed")
	for _, fn := range subs {
		fn(online)
	}
}

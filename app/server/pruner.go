package server

import (
	"context"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/prefpruner.go -pkg mocks -skip-ensure -fmt goimports . PrefPruner

// PrefPruner removes preferences not updated since cutoff.
type PrefPruner interface {
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
}

// PrunerConfig holds configuration for the preference pruner.
type PrunerConfig struct {
	Interval  time.Duration // how often to prune
	Retention time.Duration // preferences untouched for longer are removed
}

// Pruner periodically drops stale visitor preferences from the db backend.
type Pruner struct {
	store PrefPruner
	cfg   PrunerConfig
	wg    sync.WaitGroup
	now   func() time.Time
}

// NewPruner creates a new Pruner instance.
func NewPruner(st PrefPruner, cfg PrunerConfig) *Pruner {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	return &Pruner{store: st, cfg: cfg, now: time.Now}
}

// Run starts the pruner and blocks until context is canceled.
func (p *Pruner) Run(ctx context.Context) {
	log.Printf("[INFO] starting preference pruner, interval=%v, retention=%v", p.cfg.Interval, p.cfg.Retention)

	p.wg.Add(1)
	go p.loop(ctx)

	<-ctx.Done()
	p.wg.Wait()
	log.Printf("[INFO] preference pruner stopped")
}

func (p *Pruner) loop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.prune(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

// prune removes preferences older than the retention period.
func (p *Pruner) prune(ctx context.Context) int64 {
	cutoff := p.now().Add(-p.cfg.Retention)
	n, err := p.store.Prune(ctx, cutoff)
	if err != nil {
		log.Printf("[WARN] failed to prune preferences: %v", err)
		return 0
	}
	if n > 0 {
		log.Printf("[DEBUG] pruned %d preferences not updated since %s", n, cutoff.Format(time.RFC3339))
	}
	return n
}

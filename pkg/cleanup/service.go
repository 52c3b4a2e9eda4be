// Package cleanup provides data retention for the workflow caches.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/scout-research/scout/ent"
	"github.com/scout-research/scout/ent/scopeclassification"
	"github.com/scout-research/scout/ent/workflowcheckpoint"
)

// Config tunes the retention sweep.
type Config struct {
	// ScopeCacheTTL matches the classifier's read-side TTL; expired rows are
	// dead weight the reader already ignores.
	ScopeCacheTTL time.Duration

	// CheckpointRetention bounds how long orphaned checkpoints survive.
	// Completed workflows clear their own checkpoints; rows older than this
	// belong to crashed runs nobody will resume.
	CheckpointRetention time.Duration

	// Interval between sweeps.
	Interval time.Duration
}

// DefaultConfig returns the standard retention policy for the given scope
// cache TTL.
func DefaultConfig(scopeCacheTTL time.Duration) Config {
	return Config{
		ScopeCacheTTL:       scopeCacheTTL,
		CheckpointRetention: 7 * 24 * time.Hour,
		Interval:            1 * time.Hour,
	}
}

// Service periodically removes rows the workflow no longer reads:
//   - expired scope classifications (TTL is enforced on read; the sweep only
//     reclaims storage)
//   - checkpoints of workflows that died without completing
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config Config
	db     *ent.Client
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg Config, db *ent.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{config: cfg, db: db, logger: logger}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		"scope_cache_ttl", s.config.ScopeCacheTTL,
		"checkpoint_retention", s.config.CheckpointRetention,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeExpiredScopeEntries(ctx)
	s.purgeStaleCheckpoints(ctx)
}

func (s *Service) purgeExpiredScopeEntries(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.ScopeCacheTTL)
	count, err := s.db.ScopeClassification.Delete().
		Where(scopeclassification.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		s.logger.Error("retention: scope cache purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: purged expired scope classifications", "count", count)
	}
}

func (s *Service) purgeStaleCheckpoints(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.CheckpointRetention)
	count, err := s.db.WorkflowCheckpoint.Delete().
		Where(workflowcheckpoint.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		s.logger.Error("retention: checkpoint purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: purged stale checkpoints", "count", count)
	}
}

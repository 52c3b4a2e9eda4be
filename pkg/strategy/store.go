// Package strategy implements the versioned strategy catalog: a
// database-backed store with an in-process copy-on-write cache, one-time YAML
// bootstrap on an empty store, and selection by classification dimensions.
package strategy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/scout-research/scout/ent"
	"github.com/scout-research/scout/ent/strategyrecord"
	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/models"
)

// Sentinel errors for store operations.
var (
	ErrNotFound  = errors.New("strategy not found")
	ErrDuplicate = errors.New("strategy already exists")
	ErrNoMatch   = errors.New("no strategy matches the requested dimensions")
)

// Store is the strategy catalog. Reads are served from a copy-on-write
// snapshot; every mutating operation atomically invalidates it. On an empty
// backing store the configured bootstrap directory is loaded exactly once per
// process.
type Store struct {
	db           *ent.Client
	bootstrapDir string
	logger       *slog.Logger

	mu       sync.RWMutex
	snapshot map[string]*models.Strategy // nil = needs reload

	version   atomic.Uint64
	bootstrap sync.Once
}

// NewStore creates a strategy store over the given ent client.
func NewStore(db *ent.Client, bootstrapDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, bootstrapDir: bootstrapDir, logger: logger}
}

// Version returns the catalog version counter. It increments on every
// completed mutation; readers observing the same version are guaranteed a
// snapshot no older than that mutation.
func (s *Store) Version() uint64 { return s.version.Load() }

// Get returns the strategy with the given slug, or ErrNotFound.
func (s *Store) Get(ctx context.Context, slug string) (*models.Strategy, error) {
	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	st, ok := snap[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	return st, nil
}

// List returns strategies from the catalog, optionally restricted to active
// ones, sorted by slug for deterministic output.
func (s *Store) List(ctx context.Context, activeOnly bool) ([]*models.Strategy, error) {
	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Strategy, 0, len(snap))
	for _, st := range snap {
		if activeOnly && !st.Meta.IsActive() {
			continue
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Meta.Slug < out[j].Meta.Slug })
	return out, nil
}

// Create persists a new strategy. Fails ErrDuplicate when the slug exists.
func (s *Store) Create(ctx context.Context, st *models.Strategy) error {
	if err := st.Validate(); err != nil {
		return err
	}
	doc, err := toDocument(st)
	if err != nil {
		return err
	}

	err = s.db.StrategyRecord.Create().
		SetSlug(st.Meta.Slug).
		SetYamlContent(doc).
		SetPriority(st.Meta.Priority).
		SetIsActive(st.Meta.IsActive()).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: %q", ErrDuplicate, st.Meta.Slug)
		}
		return fmt.Errorf("failed to create strategy: %w", err)
	}

	s.invalidate()
	return nil
}

// Update replaces the strategy stored under slug. Fails ErrNotFound when the
// slug is absent. The document's own slug must match.
func (s *Store) Update(ctx context.Context, slug string, st *models.Strategy) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if st.Meta.Slug != slug {
		return fmt.Errorf("strategy slug %q does not match path slug %q", st.Meta.Slug, slug)
	}
	doc, err := toDocument(st)
	if err != nil {
		return err
	}

	n, err := s.db.StrategyRecord.Update().
		Where(strategyrecord.SlugEQ(slug)).
		SetYamlContent(doc).
		SetPriority(st.Meta.Priority).
		SetIsActive(st.Meta.IsActive()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update strategy: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, slug)
	}

	s.invalidate()
	return nil
}

// Delete removes the strategy stored under slug. Fails ErrNotFound when the
// slug is absent.
func (s *Store) Delete(ctx context.Context, slug string) error {
	n, err := s.db.StrategyRecord.Delete().
		Where(strategyrecord.SlugEQ(slug)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete strategy: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, slug)
	}

	s.invalidate()
	return nil
}

// Select resolves the active strategy for the given classification
// dimensions: highest priority wins, ties broken by lexicographic slug order.
// Fails ErrNoMatch when no active strategy covers the dimensions.
func (s *Store) Select(ctx context.Context, category string, window config.TimeWindow, depth config.Depth) (*models.Strategy, error) {
	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	var best *models.Strategy
	for _, st := range snap {
		if !st.Meta.IsActive() {
			continue
		}
		if st.Meta.Category != category || st.Meta.TimeWindow != window || st.Meta.Depth != depth {
			continue
		}
		if best == nil ||
			st.Meta.Priority > best.Meta.Priority ||
			(st.Meta.Priority == best.Meta.Priority && st.Meta.Slug < best.Meta.Slug) {
			best = st
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: category=%q window=%q depth=%q", ErrNoMatch, category, window, depth)
	}
	return best, nil
}

// invalidate drops the snapshot and bumps the version counter. The next read
// rebuilds from the database.
func (s *Store) invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
	s.version.Add(1)
}

// currentSnapshot returns the cached slug → Strategy mapping, rebuilding it
// from the database when invalidated. Bootstrap runs before the first load.
func (s *Store) currentSnapshot(ctx context.Context) (map[string]*models.Strategy, error) {
	var bootstrapErr error
	s.bootstrap.Do(func() {
		bootstrapErr = s.bootstrapIfEmpty(ctx)
	})
	if bootstrapErr != nil {
		return nil, bootstrapErr
	}

	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	records, err := s.db.StrategyRecord.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load strategies: %w", err)
	}

	fresh := make(map[string]*models.Strategy, len(records))
	for _, rec := range records {
		st, err := fromDocument(rec.YamlContent)
		if err != nil {
			s.logger.Error("skipping unparseable strategy record", "slug", rec.Slug, "error", err)
			continue
		}
		st.Meta.Priority = rec.Priority
		st.Meta.SetActive(rec.IsActive)
		fresh[rec.Slug] = st
	}

	s.mu.Lock()
	s.snapshot = fresh
	s.mu.Unlock()
	return fresh, nil
}

// bootstrapIfEmpty loads strategy YAML files from the bootstrap directory
// when the backing store holds no records. Runs at most once per process.
func (s *Store) bootstrapIfEmpty(ctx context.Context) error {
	n, err := s.db.StrategyRecord.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count strategies: %w", err)
	}
	if n > 0 {
		return nil
	}
	if s.bootstrapDir == "" {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(s.bootstrapDir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("failed to scan bootstrap directory: %w", err)
	}
	ymlMatches, _ := filepath.Glob(filepath.Join(s.bootstrapDir, "*.yml"))
	matches = append(matches, ymlMatches...)
	sort.Strings(matches)

	loaded := 0
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Error("failed to read bootstrap strategy", "path", path, "error", err)
			continue
		}
		st, err := models.ParseStrategyYAML(data)
		if err != nil {
			s.logger.Error("failed to parse bootstrap strategy", "path", path, "error", err)
			continue
		}
		doc, err := toDocument(st)
		if err != nil {
			s.logger.Error("failed to encode bootstrap strategy", "path", path, "error", err)
			continue
		}
		err = s.db.StrategyRecord.Create().
			SetSlug(st.Meta.Slug).
			SetYamlContent(doc).
			SetPriority(st.Meta.Priority).
			SetIsActive(st.Meta.IsActive()).
			Exec(ctx)
		if err != nil {
			s.logger.Error("failed to persist bootstrap strategy", "slug", st.Meta.Slug, "error", err)
			continue
		}
		loaded++
	}

	if loaded > 0 {
		s.logger.Info("bootstrapped strategy catalog", "dir", s.bootstrapDir, "count", loaded)
	}
	return nil
}

// toDocument converts a strategy to its persisted JSONB form.
func toDocument(st *models.Strategy) (map[string]interface{}, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("failed to encode strategy: %w", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode strategy document: %w", err)
	}
	return doc, nil
}

// fromDocument parses the persisted JSONB form back into a strategy.
func fromDocument(doc map[string]interface{}) (*models.Strategy, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode strategy document: %w", err)
	}
	var st models.Strategy
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse strategy document: %w", err)
	}
	return &st, nil
}

// Package seed loads fixture bundles into MongoDB.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/hotelboard/internal/logger"
	"github.com/guttosm/hotelboard/internal/storage"
)

// Result describes what a Run did.
type Result struct {
	Name    string
	Skipped bool
	Counts  map[string]int
}

// Run writes the bundle, rebased to now, into store.
//
// Behavior:
//   - A bundle already recorded in seed_log is skipped unless force is set.
//   - With force, the bundle's documents are deleted by id before being written,
//     whether or not a seed_log entry exists.
//   - Documents are upserted by id and the seed_log entry is written last, so
//     rerunning after a partial failure completes the load.
func Run(ctx context.Context, store storage.SeedStore, b *Bundle, now time.Time, force bool) (*Result, error) {
	start := time.Now()
	log := logger.Ctx(ctx).With().Str("bundle", b.Name).Bool("force", force).Logger()

	exists, err := store.HasSeed(ctx, b.Name)
	if err != nil {
		log.Error().Err(err).Msg("check seed log failed")
		return nil, fmt.Errorf("bundle %s: check seed log: %w", b.Name, err)
	}
	if exists && !force {
		log.Info().Bool("skipped", true).Msg("bundle already seeded")
		return &Result{Name: b.Name, Skipped: true}, nil
	}

	ds := b.Rebased(now)
	if force {
		if err := store.DeleteDataset(ctx, ds); err != nil {
			log.Error().Err(err).Msg("delete existing failed")
			return nil, fmt.Errorf("bundle %s: delete existing: %w", b.Name, err)
		}
	}
	if err := store.UpsertDataset(ctx, ds); err != nil {
		log.Error().Err(err).Msg("write failed")
		return nil, fmt.Errorf("bundle %s: write: %w", b.Name, err)
	}

	counts := ds.Counts()
	if err := store.RecordSeed(ctx, b.Name, counts); err != nil {
		log.Error().Err(err).Msg("update seed log failed")
		return nil, fmt.Errorf("bundle %s: record seed: %w", b.Name, err)
	}

	log.Info().Int("documents", ds.Total()).Dur("elapsed", time.Since(start)).Msg("bundle seeded")
	return &Result{Name: b.Name, Counts: counts}, nil
}

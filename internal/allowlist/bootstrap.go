package allowlist

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Caiismith/videogame-api/internal/model"
	"github.com/Caiismith/videogame-api/internal/store"
	"github.com/Caiismith/videogame-api/pkg/logger"
	"github.com/Caiismith/videogame-api/pkg/metrics"
	"github.com/Caiismith/videogame-api/pkg/retry"
)

// Fallback is the single developer record inserted when the allow-list source
// is unreachable. Degrading to one known-good entry keeps the service usable.
var Fallback = model.Developer{Name: "Nintendo", Headquarters: "Japan"}

// Bootstrap resets both stores at process start and repopulates the developer
// store from the external allow-list. This is the only flow that writes
// developer records.
type Bootstrap struct {
	logger       *logger.Logger
	games        store.GameStore
	developers   store.DeveloperStore
	fetcher      Fetcher
	retryOpts    retry.Options
	fetchTimeout time.Duration
}

// NewBootstrap creates a new Bootstrap instance.
func NewBootstrap(l *logger.Logger, games store.GameStore, developers store.DeveloperStore, fetcher Fetcher) *Bootstrap {
	return &Bootstrap{
		logger:       l,
		games:        games,
		developers:   developers,
		fetcher:      fetcher,
		retryOpts:    retry.DefaultOptions(),
		fetchTimeout: 10 * time.Second,
	}
}

// WithRetryOptions overrides the fetch retry policy.
func (b *Bootstrap) WithRetryOptions(opts retry.Options) *Bootstrap {
	b.retryOpts = opts
	return b
}

// WithFetchTimeout overrides the deadline applied to the allow-list fetch.
func (b *Bootstrap) WithFetchTimeout(timeout time.Duration) *Bootstrap {
	b.fetchTimeout = timeout
	return b
}

// Run clears both stores, then attempts the allow-list fetch. On success all
// fetched developers are inserted; on any fetch failure exactly the fallback
// record is inserted and startup proceeds. Store failures are returned and
// are fatal to startup, fetch failures never are.
func (b *Bootstrap) Run(ctx context.Context) error {
	b.logger.Info("cleaning database")
	if err := b.games.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear games: %w", err)
	}
	if err := b.developers.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear developers: %w", err)
	}

	b.logger.Info("attempting to retrieve list of approved developers")

	// The deadline covers the fetch only. A hung or unreachable source must
	// still leave the parent context live for the fallback insert.
	fetchCtx, cancel := context.WithTimeout(ctx, b.fetchTimeout)
	defer cancel()

	var fetched []model.Developer
	err := retry.Do(fetchCtx, func() error {
		var fetchErr error
		fetched, fetchErr = b.fetcher.ApprovedDevelopers(fetchCtx)
		return fetchErr
	}, b.retryOpts)

	if err != nil {
		b.logger.Error("failed to download approved developers list", err)
		b.logger.Info("approved developers list unavailable - providing default entry")

		fallback := Fallback
		if err := b.developers.Insert(ctx, &fallback); err != nil {
			return fmt.Errorf("failed to insert fallback developer: %w", err)
		}

		metrics.AllowListFallbacksTotal.Inc()
		metrics.AllowListDevelopersLoaded.Set(1)
		b.logger.Info("default developer provided", zap.String("name", fallback.Name))
		return nil
	}

	for i := range fetched {
		if err := b.developers.Insert(ctx, &fetched[i]); err != nil {
			return fmt.Errorf("failed to insert developer %q: %w", fetched[i].Name, err)
		}
	}

	metrics.AllowListDevelopersLoaded.Set(float64(len(fetched)))
	b.logger.Info("approved developers stored", zap.Int("count", len(fetched)))
	return nil
}

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/akhmetov/go-remind-sync/internal/adapter"
	"github.com/akhmetov/go-remind-sync/internal/config"
	"github.com/akhmetov/go-remind-sync/internal/connectivity"
	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/internal/service"
	"github.com/akhmetov/go-remind-sync/internal/store"
	"github.com/akhmetov/go-remind-sync/internal/utils"
)

type App struct {
	services *service.ClientServices
	gate     *connectivity.Gate
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	localStore, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	gate := connectivity.NewGate(serverAdapter, log)
	services := service.NewClientServices(localStore, serverAdapter, gate, &utils.UUIDGenerator{}, log)

	return &App{
		services: services,
		gate:     gate,
		workers:  cfg.Workers,
		logger:   log,
	}, nil
}

// Run resolves the active identity, launches the background workers and
// blocks until the process receives a stop signal. A guest identity keeps
// everything local: the sync job and connectivity watcher stay idle.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()
	ctx = a.logger.WithContext(ctx)

	identity, err := a.services.IdentityService.ResolveActiveIdentity(ctx)
	if errors.Is(err, service.ErrNotSignedIn) {
		// Fresh install: everything stays local under a guest until the
		// user signs up or in.
		identity, err = a.services.IdentityService.CreateGuest(ctx)
	}
	if err != nil {
		return fmt.Errorf("resolve active identity: %w", err)
	}
	a.logger.Info().
		Str("identity", identity.ID).
		Bool("is_guest", identity.IsGuest).
		Msg("active identity resolved")

	if a.services.IdentityService.IsSyncEligible(identity) {
		a.startSync(ctx, identity.ID)
		defer a.stopSync()
	}

	<-ctx.Done()
	a.logger.Info().Msg("client shut down gracefully")

	return nil
}

func (a *App) startSync(ctx context.Context, ownerID string) {
	// Reconnecting is the moment queued offline work can finally drain, so
	// a transition to online triggers an immediate full sync instead of
	// waiting for the next tick.
	a.gate.OnChange(func(online bool) {
		if !online {
			return
		}
		go func() {
			err := a.services.SyncService.FullSync(ctx, ownerID)
			if err != nil && !errors.Is(err, service.ErrSyncInProgress) && !errors.Is(err, service.ErrOffline) {
				a.logger.Warn().Err(err).Msg("full sync on reconnect failed")
			}
		}()
	})

	a.gate.Start(ctx, a.workers.ProbeInterval)
	a.services.SyncJob.Start(ctx, ownerID, a.workers.SyncInterval)
}

func (a *App) stopSync() {
	a.services.SyncJob.Stop()
	a.gate.Stop()
}

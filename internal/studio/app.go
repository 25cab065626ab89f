package studio

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-canvas-studio/internal/adapter"
	"github.com/MKhiriev/go-canvas-studio/internal/cache"
	"github.com/MKhiriev/go-canvas-studio/internal/config"
	"github.com/MKhiriev/go-canvas-studio/internal/engine"
	"github.com/MKhiriev/go-canvas-studio/internal/generate"
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/providers"
	"github.com/MKhiriev/go-canvas-studio/internal/store"
	"github.com/MKhiriev/go-canvas-studio/internal/trial"
	"github.com/MKhiriev/go-canvas-studio/internal/utils"
	"github.com/MKhiriev/go-canvas-studio/internal/workers"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// App is the assembled studio client. It owns the editing engine, the
// trial and generation services, and the background cache sweeper.
type App struct {
	engine    *engine.Engine
	trial     *trial.Service
	generate  *generate.Service
	authority adapter.AuthorityAdapter

	sweeper *workers.CacheSweepWorker

	// userID is non-zero once the studio is signed in to an account.
	userID int64

	logger *logger.Logger
}

// NewApp wires the full client runtime from configuration.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	authority := adapter.NewHTTPAuthorityAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	textProvider, err := providers.NewOpenAIProvider(cfg.Providers, log)
	if err != nil {
		return nil, fmt.Errorf("create generation provider: %w", err)
	}

	ids := utils.NewUUIDGenerator()
	generationCache := cache.New(storages.CacheRepository, log)
	trialService := trial.NewService(storages.TrialRepository, authority, ids, log)

	return &App{
		engine:    engine.New(ids, log),
		trial:     trialService,
		generate:  generate.NewService(trialService, generationCache, textProvider, textProvider, log),
		authority: authority,
		sweeper:   workers.NewCacheSweepWorker(generationCache, cfg.Workers.CacheSweepInterval, log),
		logger:    log,
	}, nil
}

// Start restores the draft document from local storage if one exists,
// makes sure a trial identity is present, and launches background
// workers. Safe to call on a fresh installation.
func (a *App) Start(ctx context.Context) error {
	if _, err := a.trial.EnsureSession(ctx); err != nil {
		return fmt.Errorf("ensure trial session: %w", err)
	}

	if doc, err := a.trial.Snapshot(ctx); err == nil {
		a.engine.LoadState(doc)
	}

	a.sweeper.Run()
	return nil
}

// Stop halts background workers. The engine state is persisted via
// SaveDraft, not here; stopping is side-effect free.
func (a *App) Stop() {
	a.sweeper.Stop()
}

// Engine exposes the layer document engine for editing operations.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Trial exposes the trial session service.
func (a *App) Trial() *trial.Service {
	return a.trial
}

// Generate exposes the generation pipeline.
func (a *App) Generate() *generate.Service {
	return a.generate
}

// Authority exposes the remote authority adapter.
func (a *App) Authority() adapter.AuthorityAdapter {
	return a.authority
}

// SaveDraft persists the current engine document as the local draft
// snapshot so it survives restarts and travels with a later transfer.
func (a *App) SaveDraft(ctx context.Context) error {
	return a.trial.SaveSnapshot(ctx, a.engine.Document())
}

// SignUp registers a new account with the authority and signs the studio
// in as that account.
func (a *App) SignUp(ctx context.Context, login, password, name string) error {
	user, err := a.authority.Register(ctx, models.User{Login: login, Password: password, Name: name})
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}

	a.userID = user.UserID
	a.logger.Info().Int64("user_id", user.UserID).Msg("signed up")
	return nil
}

// SignIn authenticates against the authority and signs the studio in.
func (a *App) SignIn(ctx context.Context, login, password string) error {
	token, err := a.authority.Login(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	a.userID = token.UserID
	a.logger.Info().Int64("user_id", token.UserID).Msg("signed in")
	return nil
}

// SignedIn reports whether the studio currently holds an account session.
func (a *App) SignedIn() bool {
	return a.userID != 0
}

// TransferTrial converts the local trial session into a permanent
// project owned by the signed-in account. The current engine document is
// saved as the snapshot first so the freshest state travels with the
// transfer. Requires SignUp or SignIn to have succeeded.
func (a *App) TransferTrial(ctx context.Context, projectName string) (models.TrialConvertResponse, error) {
	if !a.SignedIn() {
		return models.TrialConvertResponse{}, trial.ErrNoSession
	}

	if err := a.SaveDraft(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("failed to save draft before transfer")
	}

	return a.trial.Transfer(ctx, a.userID, projectName)
}

// OpenProject loads an account-owned project from the authority into the
// engine, replacing the current document and resetting history.
func (a *App) OpenProject(ctx context.Context, projectID string) (models.Project, error) {
	project, err := a.authority.GetProject(ctx, projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("open project: %w", err)
	}

	if project.Document != nil {
		a.engine.LoadState(*project.Document)
	}

	return project, nil
}

// SaveProject pushes the current engine document into an account-owned
// project on the authority.
func (a *App) SaveProject(ctx context.Context, projectID string) error {
	doc := a.engine.Document()
	if err := a.authority.UpdateProject(ctx, projectID, models.ProjectUpdate{Document: &doc}); err != nil {
		return fmt.Errorf("save project: %w", err)
	}

	return nil
}

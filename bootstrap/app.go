// Package bootstrap wires the application: config, logger, store,
// services, GraphQL schema, and the HTTP server.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"socialgraph/api"
	"socialgraph/config"
	"socialgraph/gql"
	"socialgraph/service"
	"socialgraph/storage"
)

// App holds the application components.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Sugar  *zap.SugaredLogger

	Store *storage.Store

	Users       *service.Users
	Posts       *service.Posts
	Profiles    *service.Profiles
	MemberTypes *service.MemberTypes

	APIServer *api.API
}

// NewApp creates a new application instance and initializes all
// components. The store starts empty except for the seeded member
// types.
func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, sugar := InitLogger(cfg.Log.Level)
	sugar.Infow("config loaded", "port", cfg.API.Port, "tls", cfg.API.TLS)

	store := storage.NewStore()

	app := &App{
		Config:      cfg,
		Logger:      logger,
		Sugar:       sugar,
		Store:       store,
		Users:       service.NewUsers(store, sugar),
		Posts:       service.NewPosts(store, sugar),
		Profiles:    service.NewProfiles(store, sugar),
		MemberTypes: service.NewMemberTypes(store, sugar),
	}

	schema, err := gql.New(store, app.Users, app.Posts, app.Profiles, app.MemberTypes, sugar)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}

	app.APIServer = api.NewAPI(store, app.Users, app.Posts, app.Profiles, app.MemberTypes, schema, cfg, sugar)
	return app, nil
}

// Start starts the HTTP server in the background.
func (a *App) Start() error {
	go func() {
		a.Sugar.Infow("API server starting", "port", a.Config.API.Port)
		if err := a.APIServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Sugar.Fatalw("API server failed", "error", err)
		}
	}()
	return nil
}

// WaitForShutdown blocks until a shutdown signal is received.
func (a *App) WaitForShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown() {
	a.Sugar.Info("shutting down...")

	timeout := time.Duration(a.Config.API.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := a.APIServer.Stop(ctx); err != nil {
		a.Sugar.Errorw("API server shutdown failed", "error", err)
	}
	_ = a.Logger.Sync()
}

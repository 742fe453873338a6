package app

import (
	"context"
	"log/slog"

	"github.com/jekabolt/grbpwr-insights/config"
	httpapi "github.com/jekabolt/grbpwr-insights/internal/api/http"
	"github.com/jekabolt/grbpwr-insights/internal/apisrv/admin"
	"github.com/jekabolt/grbpwr-insights/internal/apisrv/auth"
	"github.com/jekabolt/grbpwr-insights/internal/categorize"
	"github.com/jekabolt/grbpwr-insights/internal/clientreport"
	"github.com/jekabolt/grbpwr-insights/internal/daterange"
	"github.com/jekabolt/grbpwr-insights/internal/dependency"
	"github.com/jekabolt/grbpwr-insights/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	auth *auth.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting client insights")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
		return err
	}

	engine, err := categorize.NewFromConfig(a.c.Analytics, a.db.Orders(), a.db.Clients())
	if err != nil {
		slog.Default().ErrorContext(ctx, "invalid analytics config", slog.String("err", err.Error()))
		return err
	}

	a.auth, err = auth.New(&a.c.Auth, a.db.Admin())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server", slog.String("err", err.Error()))
		return err
	}

	adminS := admin.New(daterange.New(), clientreport.New(engine), engine, a.db.Clients())

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, adminS, a.auth, a.db); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		a.stop()
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown", slog.String("err", err.Error()))
		}
		<-a.done
		return
	}
	a.stop()
}

func (a *App) stop() {
	if a.auth != nil {
		a.auth.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}

package bootstrap

import (
	"context"

	"orgboard-backend/internal/config"
	"orgboard-backend/internal/interfaces/router"
	"orgboard-backend/internal/loader"

	"github.com/gofiber/fiber/v2"
)

// App is the assembled application: Fiber app, its dependencies, and the
// CSV loader for the one-shot load.
type App struct {
	Fiber  *fiber.App
	Deps   *router.Deps
	Loader *loader.Loader
	Cfg    *config.Config
}

// New loads config and builds the app with its record source.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	app, deps, err := router.CreateApp(cfg)
	if err != nil {
		return nil, err
	}

	var src loader.Source
	if cfg.OrgCSVURL != "" {
		src = &loader.HTTPSource{URL: cfg.OrgCSVURL}
	} else {
		src = &loader.FileSource{Path: cfg.OrgCSVPath}
	}

	return &App{
		Fiber:  app,
		Deps:   deps,
		Loader: &loader.Loader{Source: src},
		Cfg:    cfg,
	}, nil
}

// RunLoad performs the single fetch+parse+ingest and marks the store Ready
// unconditionally, whether or not data arrived. There is no retry and no
// second load.
func (a *App) RunLoad(ctx context.Context) {
	records := a.Loader.Load(ctx)
	a.Deps.Store.ReplaceAll(records)
	a.Deps.Store.MarkReady()
}

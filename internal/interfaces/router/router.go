package router

import (
	"orgboard-backend/internal/application/dashboard"
	orgsvc "orgboard-backend/internal/application/organizations"
	"orgboard-backend/internal/config"
	"orgboard-backend/internal/infrastructure/database"
	healthhandler "orgboard-backend/internal/interfaces/handlers/health"
	orghandler "orgboard-backend/internal/interfaces/handlers/organizations"
	"orgboard-backend/internal/middleware"
	"orgboard-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps are the long-lived dependencies built by CreateApp, returned so the
// composition root can run the one-shot CSV load and verify connections.
type Deps struct {
	Store *store.Store
	DB    *gorm.DB
	Rdb   *redis.Client
}

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with all global middleware and routes.
func CreateApp(cfg *config.Config) (*fiber.App, *Deps, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		rdb = redis.NewClient(opt)
	}
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	db, err := database.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, nil, err
	}

	st := store.New()
	orgService := orgsvc.NewService(st, db)

	// Dashboard shell (sidebar + header + grid mount)
	app.Get("/", func(c *fiber.Ctx) error {
		rows, state := orgService.GridRows()
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(dashboard.RenderPageHTML(state, orgService.GridColumns(), rows))
	})

	// Health module
	healthHandlers := &healthhandler.Handlers{
		Rdb:            rdb,
		DB:             &gormDBPinger{db: db},
		Store:          st,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/reset", healthHandlers.Reset)

	// Organizations module
	orgHandlers := &orghandler.Handlers{Service: orgService, SyncKey: cfg.AdminSyncKey}
	orgGroup := app.Group("/api/v1/organizations")
	orgGroup.Get("/get-organizations", orgHandlers.GetOrganizations)
	orgGroup.Get("/grid-columns", orgHandlers.GridColumns)
	orgGroup.Get("/grid-rows", orgHandlers.GridRows)
	orgGroup.Post("/create-intent", orgHandlers.CreateIntent)
	orgGroup.Post("/admin-sync", orgHandlers.AdminSync)

	return app, &Deps{Store: st, DB: db, Rdb: rdb}, nil
}

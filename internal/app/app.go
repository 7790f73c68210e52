// Package app wires configuration, stores and handlers into the HTTP server.
package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"staydrive/internal/cache"
	"staydrive/internal/config"
	"staydrive/internal/identity"
	"staydrive/internal/middleware"
	"staydrive/internal/modules/auth"
	"staydrive/internal/modules/booking"
	"staydrive/internal/modules/catalog"
	"staydrive/internal/pkg/jwt"
	"staydrive/internal/pkg/logger"
	"staydrive/internal/pkg/response"
	"staydrive/internal/realtime"
)

// listingCache is satisfied by both cache.ListingCache and cache.Nop.
type listingCache interface {
	Get(ctx context.Context, path string, dst any) (bool, error)
	Set(ctx context.Context, path string, value any) error
	Version(ctx context.Context, path string) (int64, error)
	SetIfVersion(ctx context.Context, path string, value any, version int64) (bool, error)
	Invalidate(ctx context.Context, path string) error
}

type App struct {
	Router   *gin.Engine
	Bookings *booking.Service
	Tokens   *jwt.Service
	Hub      *realtime.Hub

	stores *Stores
	rdb    *redis.Client
}

// Build opens every collaborator named by cfg and returns a ready router.
func Build(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	stores, err := OpenStores(cfg, log)
	if err != nil {
		return nil, err
	}

	var listings listingCache = cache.Nop{}
	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb, err = cache.Connect(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			_ = stores.Close()
			return nil, err
		}
		listings = cache.NewListingCache(rdb, cfg.ListingCacheTTL)
		log.Info("listing_cache=redis addr=%s ttl=%s", cfg.RedisAddr, cfg.ListingCacheTTL)
	}

	a := New(cfg, log, stores, listings)
	a.rdb = rdb
	return a, nil
}

// New assembles the router over stores that are already open.
func New(cfg *config.Config, log logger.Logger, stores *Stores, listings listingCache) *App {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := jwt.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := realtime.NewHub(cfg.CORSAllowedOrigins, log)

	bookingService := booking.NewService(
		stores.Bookings,
		stores.Catalog,
		identity.ContextResolver{},
		cache.Fanout{listings, hub},
		log,
		booking.WithLocation(cfg.Location),
	)
	catalogService := catalog.NewService(stores.Catalog, listings, log)
	authService := auth.NewService(auth.Credentials{
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPasswordHash,
	}, tokens, log)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger(log))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.Identify(tokens))

	v1 := r.Group("/api/v1")
	v1.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{
			"status":     "ok",
			"dataSource": cfg.DataSource,
			"sockets":    hub.Count(),
		})
	})

	bookingHandler := booking.NewHandler(bookingService, listings, log)
	catalog.NewHandler(catalogService, log).RegisterRoutes(v1)
	bookingHandler.RegisterRoutes(v1)

	// Login sits beside the guarded admin routes, not behind them.
	auth.NewHandler(authService).RegisterRoutes(v1.Group("/admin"))

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminOnly())
	{
		bookingHandler.RegisterAdminRoutes(admin)
		admin.GET("/ws", hub.ServeWS)
	}

	return &App{
		Router:   r,
		Bookings: bookingService,
		Tokens:   tokens,
		Hub:      hub,
		stores:   stores,
	}
}

func (a *App) Close() error {
	a.Hub.Close()
	var errs []error
	if a.rdb != nil {
		errs = append(errs, a.rdb.Close())
	}
	if a.stores != nil {
		errs = append(errs, a.stores.Close())
	}
	return errors.Join(errs...)
}

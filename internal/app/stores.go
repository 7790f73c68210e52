package app

import (
	"fmt"

	"gorm.io/gorm"

	"staydrive/internal/cms"
	"staydrive/internal/config"
	"staydrive/internal/database"
	"staydrive/internal/modules/booking"
	"staydrive/internal/modules/catalog"
	"staydrive/internal/pkg/logger"
	"staydrive/internal/repository"
)

// Stores are the persistence collaborators picked by DATA_SOURCE.
type Stores struct {
	Bookings booking.BookingStore
	Catalog  catalog.Store

	// DB is nil when the CMS is the backing store.
	DB *gorm.DB
}

func OpenStores(cfg *config.Config, log logger.Logger) (*Stores, error) {
	switch cfg.DataSource {
	case config.DataSourceCMS:
		client := cms.New(cms.Config{
			BaseURL:  cfg.CMSURL,
			APIToken: cfg.CMSAPIToken,
			Timeout:  cfg.CMSTimeout,
		}, log)
		log.Info("store=cms url=%s", cfg.CMSURL)
		return &Stores{Bookings: client, Catalog: client}, nil

	case config.DataSourceDB:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := repository.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return DBStores(db), nil
	}
	return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
}

// DBStores wraps an already migrated database.
func DBStores(db *gorm.DB) *Stores {
	return &Stores{
		Bookings: repository.NewBookingRepository(db),
		Catalog:  repository.NewCatalogRepository(db),
		DB:       db,
	}
}

func (s *Stores) Close() error {
	if s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

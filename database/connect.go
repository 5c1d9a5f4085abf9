package database

import (
	"fmt"
	"time"

	"cinema_statistics/config"
	"cinema_statistics/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func ConnectDB(cfg config.Database, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("Connection Opened to Database", zap.String("host", cfg.Host), zap.String("name", cfg.Name))

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Info("Database Migrated")
	}
	if cfg.Seed {
		if err := SeedData(db, time.Now()); err != nil {
			return nil, err
		}
		log.Info("Database Seeded")
	}
	return db, nil
}

// Migrate creates the tables read by the statistics queries. In production
// they belong to the booking system and this is only used for local setups.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Movie{},
		&model.CinemaRoom{},
		&model.Showtime{},
		&model.TicketBooking{},
		&model.Ticket{},
		&model.Invoice{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

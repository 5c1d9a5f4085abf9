package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"cinema_statistics/clock"
	"cinema_statistics/config"
	"cinema_statistics/database"
	"cinema_statistics/handler"
	appLogger "cinema_statistics/logger"
	"cinema_statistics/router"
	"cinema_statistics/statistic"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := appLogger.New(settings.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	db, err := database.ConnectDB(settings.DB, zl)
	if err != nil {
		zl.Fatal("database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zl.Fatal("database handle", zap.Error(err))
	}
	defer sqlDB.Close()

	svc := statistic.NewService(db,
		statistic.WithClock(clock.SystemClock{Location: settings.Location}),
		statistic.WithTimeout(settings.QueryTimeout),
		statistic.WithLogger(zl.Named("statistic")),
	)

	app := fiber.New(fiber.Config{
		AppName:      "cinema-statistics",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CorsOrigins,
		AllowMethods:     "GET,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	router.SetupRoutes(app, router.Deps{
		Statistic: handler.NewStatisticHandler(svc, zl.Named("handler")),
		Health:    handler.Health(sqlDB),
		JWTSecret: []byte(settings.JWTSecret),
		AccessLog: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		zl.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zl.Error("shutdown", zap.Error(err))
		}
	}()

	zl.Info("listening", zap.String("port", settings.Port), zap.String("env", settings.Env), zap.String("timezone", settings.Timezone))
	if err := app.Listen(":" + settings.Port); err != nil {
		zl.Fatal("listen", zap.Error(err))
	}
}

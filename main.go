// File: medexam/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medexam/config"
	"medexam/cron"
	"medexam/database"
	bookingRepoPkg "medexam/database/repository/booking"
	examRepoPkg "medexam/database/repository/exam"
	examinerRepoPkg "medexam/database/repository/examiner"
	settingsRepoPkg "medexam/database/repository/settings"
	supportRepoPkg "medexam/database/repository/support"
	"medexam/handlers"
	"medexam/middleware"
	"medexam/models"
	"medexam/routes"
	"medexam/services/availability"
	bookingSvc "medexam/services/booking"
	"medexam/services/session"
	"medexam/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// Repositories.
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	examRepo := examRepoPkg.NewMongoExamRepo()
	examinerRepo := examinerRepoPkg.NewMongoExaminerRepo()
	supportRepo := supportRepoPkg.NewMongoSupportRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	defaults := models.AvailabilitySettings{
		WindowDays:               config.AppConfig.AvailabilityWindowDays,
		WorkingHoursPerDay:       config.AppConfig.AvailabilityWorkingHoursPerDay,
		SlotDurationMinutes:      config.AppConfig.AvailabilitySlotDurationMinutes,
		StartOfWorkingMinutesUTC: config.AppConfig.AvailabilityStartMinutesUTC,
	}

	// Services.
	engine := &availability.DefaultAvailabilityEngine{
		SettingsRepo:    settingsRepo,
		ExamRepo:        examRepo,
		ExaminerRepo:    examinerRepo,
		SupportRepo:     supportRepo,
		BookingRepo:     bookingRepo,
		DefaultSettings: defaults,
	}

	bookingService := &bookingSvc.DefaultBookingService{
		Repo:       bookingRepo,
		SyncClient: cron.NewSyncClient(),
	}

	sessionService := &session.DefaultSessionService{
		Engine:        engine,
		BookingSvc:    bookingService,
		Cache:         utils.GetSessionCacheClient(),
		MaxDaysToShow: config.AppConfig.AvailabilityMaxDaysToShow,
	}

	// Handlers and routes.
	availabilityHandler := handlers.NewAvailabilityHandler(sessionService)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo, defaults)

	routes.RegisterAvailabilityRoutes(router, availabilityHandler)
	routes.RegisterSettingsRoutes(router, settingsHandler)
	routes.RegisterHealthRoutes(router)

	// Background worker syncing committed appointments onto exams.
	cron.InitSyncWorker(examRepo)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server failed: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("server exited")
}

// File: medibook/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/database"
	"medibook/database/repository"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/admin"
	"medibook/services/booking"
	"medibook/services/doctor"
	"medibook/services/payment"
	"medibook/services/storage"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medibook",
		Short: "Doctor appointment booking API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	})
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the wired services shared by every command.
type app struct {
	logger   *zap.Logger
	repos    *repository.Repositories
	services handlers.Services
}

func bootstrap() (*app, error) {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	if err := database.InitDB(logger); err != nil {
		return nil, err
	}
	repos, err := repository.NewMongoRepositories(database.Database(), config.AppConfig.DBTimeout)
	if err != nil {
		return nil, fmt.Errorf("main: failed to initialize repositories: %w", err)
	}

	var cache utils.Cache = utils.NoopCache{}
	if err := utils.InitCache(); err != nil {
		logger.Warn("main: redis unavailable, caching disabled", zap.Error(err))
	} else {
		cache = utils.NewRedisCache(utils.CacheClient)
	}

	var images storage.ImageStore = storage.UnavailableStore{}
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Warn("main: cloudinary unavailable, image uploads disabled", zap.Error(err))
	} else {
		images = storage.NewCloudinaryStore(cld)
	}

	gateway := payment.NewRazorpayGateway(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpayKeySecret)
	tokenTTL := config.AppConfig.TokenTTL

	userService := user.NewUserService(repos.Users, images, tokenTTL, logger.Named("user"))

	doctorService := doctor.NewDoctorService(repos.Doctors, repos.Appointments, images, cache, logger.Named("doctor"))
	doctorService.TokenTTL = tokenTTL
	if config.AppConfig.CacheTTL > 0 {
		doctorService.CacheTTL = config.AppConfig.CacheTTL
	}

	bookingService := booking.NewBookingService(repos, cache, booking.SlotPolicyFromConfig(), logger.Named("booking"))
	if config.AppConfig.CacheTTL > 0 {
		bookingService.CacheTTL = config.AppConfig.CacheTTL
	}

	adminService := admin.NewAdminService(repos, admin.Credentials{
		Email:    config.AppConfig.AdminEmail,
		Password: config.AppConfig.AdminPassword,
	}, tokenTTL, logger.Named("admin"))

	paymentService := payment.NewPaymentService(repos.Appointments, gateway, config.AppConfig.Currency, logger.Named("payment"))

	return &app{
		logger: logger,
		repos:  repos,
		services: handlers.Services{
			Users:    userService,
			Doctors:  doctorService,
			Admin:    adminService,
			Bookings: bookingService,
			Payments: paymentService,
		},
	}, nil
}

func runServer() error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	logger := a.logger

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(a.services))

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, utils.CacheClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("main: server failed to start: %w", err)
	case <-quit:
	}
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if utils.CacheClient != nil {
		_ = utils.CacheClient.Close()
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
	_ = logger.Sync()
	return nil
}

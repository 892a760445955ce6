package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "campusevents/docs" // swagger docs

	"campusevents/internal/config"
	"campusevents/internal/handler"
	"campusevents/internal/router"
	"campusevents/internal/service"
	"campusevents/internal/sim"
	"campusevents/internal/storage"
	"campusevents/internal/store"
)

// @title Campus Events API
// @version 1.0
// @description Campus events registration API: organizers publish events, students register, organizers and admins manage registrations and accounts.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	blobs := storage.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	st := store.New(blobs, store.NewClockIDGenerator())
	st.Load(context.Background())

	// Initialize services
	sessionService := service.NewSessionService(st)
	eventService := service.NewEventService(st)
	registrationService := service.NewRegistrationService(st)
	userService := service.NewUserService(st)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(sessionService)
	eventHandler := handler.NewEventHandler(eventService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(e, authHandler, eventHandler, registrationHandler, userHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The load generator lives exactly as long as the server: it is torn
	// down through the same context that triggers shutdown.
	if cfg.SimEnabled {
		simulator := sim.New(st, cfg.SimInterval, time.Now().UnixNano())
		go simulator.Run(ctx)
	}

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}

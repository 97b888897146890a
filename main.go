package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"solcraft-backend/auth"
	"solcraft-backend/config"
	"solcraft-backend/handlers"
	"solcraft-backend/mailer"
	"solcraft-backend/middleware"
	"solcraft-backend/services"
	"solcraft-backend/storage"
	"solcraft-backend/utils"
	"solcraft-backend/workers"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Println("⚠️  JWT_SECRET not set, using an insecure development secret")
		cfg.JWTSecret = "dev-secret-do-not-use-in-production"
	}

	app := fiber.New(fiber.Config{
		// Nothing internal (stack traces, connection strings) ever reaches
		// a client; unexpected failures collapse to a generic 500.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
				message = fe.Message
			}
			if code >= 500 {
				log.Printf("❌ [HTTP] unhandled error on %s: %v", c.Path(), err)
				return utils.Error(c, code, "internal server error")
			}
			return utils.Error(c, code, message)
		},
	})

	// CORS, origins from env (comma-separated)
	origins := strings.Split(cfg.AllowedOrigins, ",")
	for i, o := range origins {
		origins[i] = strings.TrimSpace(o)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		MaxAge:       86400,
	}))

	app.Use(middleware.MetricsMiddleware())

	// --- Persistence: candidate resolution + per-operation handles ---
	resolver := storage.NewResolver(cfg.DBCandidates, cfg.ConnectTimeout)
	store := storage.NewPostgres(resolver)

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.Migrate(migrateCtx); err != nil {
		log.Printf("⚠️  Database unreachable at startup, running degraded (reads fall back to sample data): %v", err)
	} else {
		log.Println("✅ Database migrated")
	}
	cancelMigrate()

	// --- Photo storage (optional) ---
	if err := utils.InitR2(); err != nil {
		if errors.Is(err, utils.ErrR2NotConfigured) {
			log.Println("⚠️  R2 not configured, tournament photo uploads disabled")
		} else {
			log.Fatal("failed to initialize R2 client:", err)
		}
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, "solcraft", cfg.TokenTTL)
	hasher := auth.NewBcryptHasher()
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	authService := services.NewAuthService(store, tokens, hasher)
	tournamentService := services.NewTournamentService(store)
	investmentService := services.NewInvestmentService(store)
	organizerService := services.NewOrganizerService(store, mail)
	dashboardService := services.NewDashboardService(store)

	handlers.SetupAuthRoutes(app, authService)
	handlers.SetupTournamentRoutes(app, tournamentService, tokens)
	handlers.SetupInvestmentRoutes(app, investmentService, tokens)
	handlers.SetupOrganizerRoutes(app, organizerService)
	handlers.SetupDashboardRoutes(app, dashboardService)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// --- Tournament status sweeper ---
	sched, err := workers.StartStatusScheduler(store)
	if err != nil {
		log.Fatal("failed to start status scheduler:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", cfg.Port)
	log.Printf("✅ Database candidates configured: %d", len(cfg.DBCandidates))
	log.Println("✅ Tournament status sweeper running (every 1m)")
	log.Printf("✅ CORS configured for origins: %s", strings.Join(origins, ","))

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = sched.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

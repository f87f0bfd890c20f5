package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zumgugger/vielseitig/internal/config"
	"github.com/Zumgugger/vielseitig/internal/database"
	"github.com/Zumgugger/vielseitig/internal/handlers"
	"github.com/Zumgugger/vielseitig/internal/repository"
	"github.com/Zumgugger/vielseitig/internal/security"
	"github.com/Zumgugger/vielseitig/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	schoolRepo := repository.NewSchoolRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	listRepo := repository.NewListRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Initialize services
	emailService, err := service.NewEmailService(cfg.SESRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AdminEmail)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	authService := service.NewAuthService(userRepo, adminRepo, schoolRepo, sessionRepo, emailService, cfg.SessionDuration)
	accountService := service.NewAccountService(userRepo, schoolRepo, listRepo, sessionRepo)
	listService := service.NewListService(listRepo, userRepo)
	analyticsService := service.NewAnalyticsService(db, listRepo, userRepo, schoolRepo, analyticsRepo)
	seedService := service.NewSeedService(listRepo, adminRepo)

	// Seed the standard list, the premium lists and the default admin
	if err := seedService.Run(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize handlers
	loginLimiter := security.NewRateLimiter(cfg.LoginRateLimit, time.Minute)
	middleware := handlers.NewMiddleware(authService, loginLimiter)
	shareHandler := handlers.NewShareHandler(analyticsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	pdfHandler := handlers.NewPDFHandler(analyticsService)
	userHandler := handlers.NewUserHandler(authService, accountService)
	listHandler := handlers.NewListHandler(listService, cfg.BaseURL)
	adminHandler := handlers.NewAdminHandler(authService, accountService, listService, analyticsService, emailService)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handlers.Health)

	// Public share links and student sorting
	mux.HandleFunc("GET /l", shareHandler.GetDefaultList)
	mux.HandleFunc("GET /l/{token}", shareHandler.ResolveShareLink)
	mux.HandleFunc("GET /l/{token}/data", shareHandler.GetShareLinkData)
	mux.HandleFunc("GET /api/lists/default/adjectives", analyticsHandler.GetDefaultAdjectives)
	mux.HandleFunc("GET /api/lists/{listId}/adjectives", analyticsHandler.GetListAdjectives)
	mux.HandleFunc("POST /api/lists/{listId}/session", analyticsHandler.StartListSession)
	mux.HandleFunc("PUT /api/lists/{listId}/session/{sessionId}", analyticsHandler.FinishListSession)

	// Public analytics tracking
	mux.HandleFunc("POST /api/analytics/session/start", analyticsHandler.StartSession)
	mux.HandleFunc("POST /api/analytics/assignment", analyticsHandler.RecordAssignment)
	mux.HandleFunc("POST /api/analytics/session/finish", analyticsHandler.FinishSession)
	mux.HandleFunc("POST /api/analytics/session/pdf-export", analyticsHandler.MarkPDFExport)
	mux.HandleFunc("POST /api/sessions/{sessionId}/record-assignment", analyticsHandler.RecordSessionAssignment)
	mux.HandleFunc("POST /api/sessions/{sessionId}/pdf", pdfHandler.ExportSessionPDF)

	// Teacher routes
	mux.HandleFunc("POST /user/register", middleware.RateLimit(userHandler.Register))
	mux.HandleFunc("POST /user/login", middleware.RateLimit(userHandler.Login))
	mux.HandleFunc("POST /user/logout", userHandler.Logout)
	mux.HandleFunc("GET /user/profile", middleware.RequireUser(userHandler.GetProfile))
	mux.HandleFunc("PUT /user/profile", middleware.RequireUser(userHandler.UpdateProfile))
	mux.HandleFunc("GET /user/schools", middleware.RequireUser(userHandler.GetSchool))
	mux.HandleFunc("GET /user/lists", middleware.RequireUser(listHandler.GetLists))
	mux.HandleFunc("POST /user/lists", middleware.RequireUser(listHandler.CreateList))
	mux.HandleFunc("GET /user/lists/{listId}", middleware.RequireUser(listHandler.GetList))
	mux.HandleFunc("PUT /user/lists/{listId}", middleware.RequireUser(listHandler.UpdateList))
	mux.HandleFunc("DELETE /user/lists/{listId}", middleware.RequireUser(listHandler.DeleteList))
	mux.HandleFunc("GET /user/lists/{listId}/adjectives", middleware.RequireUser(listHandler.GetAdjectives))
	mux.HandleFunc("POST /user/lists/{listId}/adjectives", middleware.RequireUser(listHandler.AddAdjective))
	mux.HandleFunc("PUT /user/lists/{listId}/adjectives/{adjectiveId}", middleware.RequireUser(listHandler.UpdateAdjective))
	mux.HandleFunc("DELETE /user/lists/{listId}/adjectives/{adjectiveId}", middleware.RequireUser(listHandler.DeleteAdjective))
	mux.HandleFunc("GET /user/lists/{listId}/qr", middleware.RequireUser(listHandler.GetQRCode))

	// Admin routes
	mux.HandleFunc("POST /admin/login", middleware.RateLimit(adminHandler.Login))
	mux.HandleFunc("POST /admin/logout", adminHandler.Logout)
	mux.HandleFunc("GET /admin/profile", middleware.RequireAdmin(adminHandler.GetProfile))
	mux.HandleFunc("GET /admin/pending-users", middleware.RequireAdmin(adminHandler.GetPendingUsers))
	mux.HandleFunc("POST /admin/users/{userId}/approve", middleware.RequireAdmin(adminHandler.ApproveUser))
	mux.HandleFunc("POST /admin/users/{userId}/reject", middleware.RequireAdmin(adminHandler.RejectUser))
	mux.HandleFunc("GET /admin/users", middleware.RequireAdmin(adminHandler.GetUsers))
	mux.HandleFunc("POST /admin/users", middleware.RequireAdmin(adminHandler.CreateUser))
	mux.HandleFunc("GET /admin/users/{userId}", middleware.RequireAdmin(adminHandler.GetUser))
	mux.HandleFunc("PUT /admin/users/{userId}", middleware.RequireAdmin(adminHandler.UpdateUser))
	mux.HandleFunc("DELETE /admin/users/{userId}", middleware.RequireAdmin(adminHandler.DeleteUser))
	mux.HandleFunc("PUT /admin/users/{userId}/activation", middleware.RequireAdmin(adminHandler.SetUserActivation))
	mux.HandleFunc("POST /admin/users/{userId}/reset-password", middleware.RequireAdmin(adminHandler.ResetUserPassword))
	mux.HandleFunc("GET /admin/pending-schools", middleware.RequireAdmin(adminHandler.GetPendingSchools))
	mux.HandleFunc("POST /admin/schools/{schoolId}/approve", middleware.RequireAdmin(adminHandler.ApproveSchool))
	mux.HandleFunc("POST /admin/schools/{schoolId}/reject", middleware.RequireAdmin(adminHandler.RejectSchool))
	mux.HandleFunc("GET /admin/schools", middleware.RequireAdmin(adminHandler.GetSchools))
	mux.HandleFunc("POST /admin/schools", middleware.RequireAdmin(adminHandler.CreateSchool))
	mux.HandleFunc("PUT /admin/schools/{schoolId}", middleware.RequireAdmin(adminHandler.UpdateSchool))
	mux.HandleFunc("DELETE /admin/schools/{schoolId}", middleware.RequireAdmin(adminHandler.DeleteSchool))
	mux.HandleFunc("GET /admin/standard-list", middleware.RequireAdmin(adminHandler.GetStandardList))
	mux.HandleFunc("PUT /admin/standard-list/{adjectiveId}", middleware.RequireAdmin(adminHandler.UpdateStandardAdjective))
	mux.HandleFunc("DELETE /admin/standard-list/{adjectiveId}", middleware.RequireAdmin(adminHandler.DeleteStandardAdjective))
	mux.HandleFunc("GET /admin/analytics/summary", middleware.RequireAdmin(adminHandler.GetAnalyticsSummary))
	mux.HandleFunc("GET /admin/analytics/sessions", middleware.RequireAdmin(adminHandler.GetAnalyticsSessions))
	mux.HandleFunc("GET /admin/analytics/sessions/{sessionId}", middleware.RequireAdmin(adminHandler.GetAnalyticsSessionDetails))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background login session cleanup
	go cleanupExpiredSessions(authService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// cleanupExpiredSessions removes expired login sessions every hour
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Failed to clean up expired sessions: %v", err)
		}
	}
}

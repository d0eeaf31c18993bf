// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/config"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/handlers"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/middleware"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/ratelimit"
	conversationrepo "github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/conversation"
	messagerepo "github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/message"
	userrepo "github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/user"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/services"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/services/catalog"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/services/classifier"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/services/user_services"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Conversation{}, &domain.Message{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	appLogger := services.NewLogger("diagnosis")

	// --- Repositories ---
	userRepo := userrepo.NewGormUserRepository(db)
	convRepo := conversationrepo.NewConversationRepository(db)
	messageRepo := messagerepo.NewMessageRepository(db)

	// --- Services ---
	catalogService := catalog.NewService(catalog.NewLoader(cfg.DiseaseDataPath, appLogger))

	diseaseClassifier, err := classifier.NewArtifactClassifier(&classifier.Config{
		ModelDir: cfg.ModelDir,
		TopK:     cfg.ClassifierTopK,
	}, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize classifier: %v", err)
	}

	predictionService, err := services.NewPredictionService(
		catalogService,
		diseaseClassifier,
		convRepo,
		messageRepo,
		appLogger,
	)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Prediction Service: %v", err)
	}

	conversationService, err := services.NewConversationService(convRepo, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Conversation Service: %v", err)
	}

	authService := user_services.NewAuthService(userRepo, cfg.JWTSecretKey, appLogger)

	// --- Rate Limiters ---
	loginLimiter := ratelimit.NewMemoryLimiter(ratelimit.DefaultAuthConfig())
	registerLimiter := ratelimit.NewMemoryLimiter(ratelimit.StrictAuthConfig())
	defer loginLimiter.Close()
	defer registerLimiter.Close()

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	predictHandler := handlers.NewPredictHandler(predictionService)
	conversationHandler := handlers.NewConversationHandler(conversationService)

	// --- Router Setup ---
	r := mux.NewRouter()

	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	registerChain := middleware.RateLimitMiddleware(registerLimiter, "register")(
		middleware.AuthSuccessMiddleware(registerLimiter, "register")(http.HandlerFunc(authHandler.Register)))
	loginChain := middleware.RateLimitMiddleware(loginLimiter, "login")(
		middleware.AuthSuccessMiddleware(loginLimiter, "login")(http.HandlerFunc(authHandler.Login)))
	r.Handle("/api/register", registerChain).Methods("POST")
	r.Handle("/api/login", loginChain).Methods("POST")
	r.HandleFunc("/api/logout", authHandler.Logout).Methods("POST")

	// Prediction is open to anonymous callers; a valid token binds the
	// request to its user so the exchange gets persisted.
	optionalAuth := middleware.OptionalAuth(authService)
	for _, path := range []string{"/api/chat/predict", "/chat/predict", "/api/predict-symptoms"} {
		r.Handle(path, optionalAuth(http.HandlerFunc(predictHandler.HandlePredict))).Methods("POST")
	}

	// --- Protected Routes ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireAuth(authService))
	api.HandleFunc("/conversations", conversationHandler.GetUserConversations).Methods("GET")
	api.HandleFunc("/conversations", conversationHandler.CreateConversation).Methods("POST")
	api.HandleFunc("/conversations/delete_all", conversationHandler.DeleteAllConversations).Methods("POST")
	api.HandleFunc("/conversations/{id:[0-9]+}", conversationHandler.GetConversation).Methods("GET")
	api.HandleFunc("/conversations/{id:[0-9]+}", conversationHandler.DeleteConversation).Methods("DELETE")

	// --- Server Configuration ---
	port := ":8000"
	if cfg.ServerPort != "" {
		port = ":" + cfg.ServerPort
	}
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Disease Diagnosis API starting on port %s", port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pdf_splitter/api"
	"pdf_splitter/pdf"
	"pdf_splitter/web"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPort is the default server port
	DefaultPort = "8080"

	// DefaultTempDir is the working directory of the CLI engine
	DefaultTempDir = "./temp"

	// ServerReadTimeout is the HTTP server read timeout, sized for 50MB uploads
	ServerReadTimeout = 60 * time.Second

	// ServerWriteTimeout is the HTTP server write timeout
	ServerWriteTimeout = 60 * time.Second

	// ServerIdleTimeout is the HTTP server idle timeout
	ServerIdleTimeout = 60 * time.Second

	// GracefulShutdownTimeout is the timeout for graceful shutdown
	GracefulShutdownTimeout = 10 * time.Second
)

func main() {
	production := getEnv("APP_ENV", "development") == "production"
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	engineName := getEnv("PDF_ENGINE", pdf.EngineLibrary)
	if engineName == pdf.EngineCLI {
		if err := pdf.CheckCLIAvailable(context.Background()); err != nil {
			log.Fatalf("pdfcpu CLI not available: %v. Please install pdfcpu or use PDF_ENGINE=library.", err)
		}
		log.Println("pdfcpu CLI is available")
	}
	engine, err := pdf.NewEngine(engineName, getEnv("TEMP_DIR", DefaultTempDir))
	if err != nil {
		log.Fatalf("Failed to create pdf engine: %v", err)
	}

	verifier, err := loadVerifier()
	if err != nil {
		log.Fatalf("Failed to load credentials: %v", err)
	}

	config := &api.Config{
		Port:        getEnv("PORT", DefaultPort),
		MaxFileSize: getEnvInt64("MAX_FILE_SIZE", api.DefaultMaxFileSize),
		Engine:      engine,
		Verifier:    verifier,
		Sessions:    api.CookieSession{Secure: production},
	}

	r := gin.New()
	r.Use(gin.Logger(), api.Recovery(), api.RequestID())
	r.MaxMultipartMemory = api.MultipartMemory

	// Web UI
	if err := web.Register(r, web.Options{MaxFileSize: config.MaxFileSize}); err != nil {
		log.Fatalf("Failed to set up web UI: %v", err)
	}

	// API routes with config
	api.SetupRoutes(r, config)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "pdf_splitter",
		})
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", config.Port),
		Handler:      r,
		ReadTimeout:  ServerReadTimeout,
		WriteTimeout: ServerWriteTimeout,
		IdleTimeout:  ServerIdleTimeout,
	}

	go func() {
		log.Printf("Server starting on %s", srv.Addr)
		log.Printf("Max file size: %d bytes", config.MaxFileSize)
		log.Printf("PDF engine: %s", engineName)
		log.Printf("Secure cookies: %v", production)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

// loadVerifier uses the bcrypt credentials file when configured and falls
// back to the username-suffix placeholder otherwise.
func loadVerifier() (api.Verifier, error) {
	if path := os.Getenv("CREDENTIALS_FILE"); path != "" {
		store, err := api.LoadCredentialsFile(path)
		if err != nil {
			return nil, err
		}
		log.Printf("Credentials loaded from %s", path)
		return store, nil
	}
	log.Println("CREDENTIALS_FILE not set, using placeholder password rule")
	return api.SuffixVerifier{Suffix: getEnv("LOGIN_PASSWORD_SUFFIX", api.DefaultPasswordSuffix)}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

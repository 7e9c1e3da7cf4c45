// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"daylog/internal/api"
	"daylog/internal/api/handlers"
	"daylog/internal/config"
	"daylog/internal/logging"
	"daylog/internal/repository"
	"daylog/internal/services"
	"daylog/internal/services/auth"
)

var (
	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile       string
	password      string
	port          int
	logLevel      string
	resetPassword bool
	jwtSecret     string
	dbPath        string
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "daylog",
	Short: "Daylog API",
	Long:  `A REST API for tracking days, their effects and your mood over time.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: DL_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: DL_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: DL_DATABASE_PATH)")

	RootCmd.Flags().StringVar(&password, "password", "", "Password for the bootstrap admin user. (Env: DL_PASSWORD)")
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: DL_PORT)")
	RootCmd.Flags().BoolVar(&resetPassword, "reset_pw", false, "If true, reset admin password on startup. (Env: DL_RESET_PW=true)")
	RootCmd.Flags().StringVar(&jwtSecret, "jwt-secret", "", "Secret key for signing JWTs. (Env: DL_JWT_SECRET)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	if envPath := os.Getenv("DL_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing file is fine, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	applyOverrides(cfg)
	cfg.ApplyDefaults()

	logging.Init(cfg.Logging.Level)
	return nil
}

// applyOverrides layers environment variables and then CLI flags on top of
// the file-based configuration.
func applyOverrides(c *config.Config) {
	// --- 1. Environment Variables ---
	if v := os.Getenv("DL_PASSWORD"); v != "" {
		c.Admin.Password = v
	}
	if v := os.Getenv("DL_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("DL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DL_RESET_PW"); v == "true" {
		c.ResetAdminPassword = true
	}
	if v := os.Getenv("DL_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("DL_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}

	// --- 2. CLI Flags (take precedence) ---
	if password != "" {
		c.Admin.Password = password
	}
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if resetPassword {
		c.ResetAdminPassword = true
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if jwtSecret != "" {
		c.JWTSecret = jwtSecret
	}
}

// ensureJWTSecret resolves the signing secret: flag/env, then config file,
// then a freshly generated one persisted back to the config file.
func ensureJWTSecret() error {
	if cfg.JWTSecret != "" {
		return nil
	}
	if cfg.JWT.Secret != "" {
		logging.Log.Info("Using JWT secret loaded from config file.")
		cfg.JWTSecret = cfg.JWT.Secret
		return nil
	}

	logging.Log.Info("Generating new random JWT secret...")
	secret, err := auth.GenerateSecret()
	if err != nil {
		return fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	cfg.JWT.Secret = secret
	cfg.JWTSecret = secret
	if err := config.SaveConfig(cfgFile, cfg); err != nil {
		logging.Log.Warnf("Failed to save new JWT secret to %s: %v", cfgFile, err)
	} else {
		logging.Log.Infof("New JWT secret saved to %s.", cfgFile)
	}
	return nil
}

// runServer starts the HTTP server with graceful shutdown.
func runServer() error {
	if err := ensureJWTSecret(); err != nil {
		return err
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	// Service initialization
	userService := services.NewUserService(repo, cfg)
	dayService := services.NewDayService(repo)
	effectService := services.NewEffectService(repo)
	bugService := services.NewBugService(repo)
	suggestionService := services.NewSuggestionService(repo)
	newsService := services.NewNewsService(repo)
	tokenService := auth.NewTokenService(cfg)

	authMiddleware := auth.NewMiddleware(tokenService)

	if err := userService.InitializeAdminUser(); err != nil {
		return fmt.Errorf("failed to handle admin user: %w", err)
	}

	h := handlers.NewHandlers(
		userService,
		dayService,
		effectService,
		bugService,
		suggestionService,
		newsService,
		tokenService,
		cfg,
	)

	r := api.SetupRouter(h, authMiddleware)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// Graceful shutdown setup
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server starting on %s", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logging.Log.Info("Server stopped cleanly.")
	return nil
}

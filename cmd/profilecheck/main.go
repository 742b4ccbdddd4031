package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/profilecheck/internal/config"
	"github.com/mtlprog/profilecheck/internal/database"
	"github.com/mtlprog/profilecheck/internal/gateway"
	"github.com/mtlprog/profilecheck/internal/handler"
	"github.com/mtlprog/profilecheck/internal/logger"
	"github.com/mtlprog/profilecheck/internal/repository"
	"github.com/mtlprog/profilecheck/internal/resume"
	"github.com/mtlprog/profilecheck/internal/service"
)

func main() {
	app := &cli.App{
		Name:  "profilecheck",
		Usage: "Compare resumes with GitHub profiles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:     "database-url",
				Aliases:  []string{"d"},
				Value:    config.DefaultDatabaseURL,
				Usage:    "PostgreSQL database URL",
				EnvVars:  []string{"DATABASE_URL"},
				Required: true,
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Flags:  serveFlags(),
				Action: runServe,
			},
			{
				Name:  "create-admin",
				Usage: "Create an admin account or reset its password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Admin username",
						EnvVars:  []string{"ADMIN_USERNAME"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Admin password",
						EnvVars:  []string{"ADMIN_PASSWORD"},
						Required: true,
					},
				},
				Action: runCreateAdmin,
			},
			{
				Name:   "prune-sessions",
				Usage:  "Delete expired admin sessions",
				Action: runPruneSessions,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Value:   config.DefaultPort,
			Usage:   "HTTP server port",
			EnvVars: []string{"PORT"},
		},
		&cli.StringFlag{
			Name:    "upload-dir",
			Value:   config.DefaultUploadDir,
			Usage:   "Directory uploaded resumes are stored in",
			EnvVars: []string{"UPLOAD_DIR"},
		},
		&cli.StringFlag{
			Name:    "github-token",
			Usage:   "GitHub token for API requests (optional, raises rate limits)",
			EnvVars: []string{"GITHUB_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "github-api-url",
			Value:   config.DefaultGitHubAPIURL,
			Usage:   "GitHub REST API base URL",
			EnvVars: []string{"GITHUB_API_URL"},
		},
		&cli.StringFlag{
			Name:    "github-web-url",
			Value:   config.DefaultGitHubWebURL,
			Usage:   "GitHub site profile pages are read from",
			EnvVars: []string{"GITHUB_WEB_URL"},
		},
		&cli.StringFlag{
			Name:    "chart-library-url",
			Value:   config.DefaultChartLibraryURL,
			Usage:   "Script URL of the charting library",
			EnvVars: []string{"CHART_LIBRARY_URL"},
		},
		&cli.BoolFlag{
			Name:    "secure-cookies",
			Usage:   "Mark session cookies as Secure (enable behind HTTPS)",
			EnvVars: []string{"SECURE_COOKIES"},
		},
	}
}

// openDatabase connects and applies pending migrations.
func openDatabase(c *cli.Context) (*database.DB, error) {
	db, err := database.New(c.Context, c.String("database-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(c.Context, db.Pool()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	// The app level action runs without the serve flags, so fall back to defaults.
	port := stringOr(c.String("port"), config.DefaultPort)
	uploadDir := stringOr(c.String("upload-dir"), config.DefaultUploadDir)
	chartLibraryURL := stringOr(c.String("chart-library-url"), config.DefaultChartLibraryURL)

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	repos, err := gateway.NewGitHubGateway(c.String("github-token"), c.String("github-api-url"))
	if err != nil {
		return fmt.Errorf("failed to create github gateway: %w", err)
	}

	resultRepo := repository.NewResultRepository(db.Pool())
	adminService := service.NewAdminService(
		repository.NewAdminRepository(db.Pool()),
		repository.NewSessionRepository(db.Pool()),
	)
	verificationService := service.NewVerificationService(
		resume.NewPDFExtractor(),
		repos,
		gateway.NewContributionScraper(c.String("github-web-url")),
		resultRepo,
		uploadDir,
	)

	h := handler.New(handler.Deps{
		DB:              db,
		Verifier:        verificationService,
		Results:         resultRepo,
		Admins:          adminService,
		ChartLibraryURL: chartLibraryURL,
		SecureCookies:   c.Bool("secure-cookies"),
	})

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runCreateAdmin(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	adminService := service.NewAdminService(
		repository.NewAdminRepository(db.Pool()),
		repository.NewSessionRepository(db.Pool()),
	)
	if err := adminService.CreateAdmin(c.Context, c.String("username"), c.String("password")); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func runPruneSessions(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := repository.NewSessionRepository(db.Pool()).DeleteExpired(c.Context, time.Now())
	if err != nil {
		return fmt.Errorf("failed to prune sessions: %w", err)
	}

	slog.Info("expired sessions pruned", "removed", removed)
	return nil
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

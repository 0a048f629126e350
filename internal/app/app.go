package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ollama-ui/docs"
	"ollama-ui/internal/api"
	"ollama-ui/internal/config"
	"ollama-ui/internal/llm"
	"ollama-ui/internal/service"
)

const shutdownTimeout = 10 * time.Second

// App is one front-end process, ready to serve.
type App struct {
	Config *config.Config
	Models []string
	Server *http.Server
}

// RunChat starts the chat front-end and blocks until it is stopped.
func RunChat() int {
	return run(config.AppChat, NewChatApp)
}

// RunPoetry starts the poetry front-end and blocks until it is stopped.
func RunPoetry() int {
	return run(config.AppPoetry, NewPoetryApp)
}

func run(name string, build func(cfg *config.Config) (*App, error)) int {
	cfg, err := config.Load(name)
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "app", name, "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource(cfg)

	app, err := build(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx); err != nil {
		slog.Error("Server failed", "error", err)
		return 1
	}
	return 0
}

// NewChatApp wires the chat front-end. The model list is fetched once here.
func NewChatApp(cfg *config.Config) (*App, error) {
	provider := llm.NewOllamaProvider(cfg.OllamaURL)
	models := service.NewModelService(provider).Names(context.Background())
	slog.Info("Loaded models", "count", len(models))

	docs.SwaggerInfochat.BasePath = basePath(cfg.RootPath)
	handler := api.NewChatHandler(service.NewChatService(provider), models, cfg.RootPath)
	return newApp(cfg, models, api.NewChatRouter(handler, cfg)), nil
}

// NewPoetryApp wires the poetry front-end. The model list is fetched once here.
func NewPoetryApp(cfg *config.Config) (*App, error) {
	provider := llm.NewOllamaProvider(cfg.OllamaURL)
	models := service.NewModelService(provider).Names(context.Background())
	slog.Info("Loaded models", "count", len(models))

	docs.SwaggerInfopoetry.BasePath = basePath(cfg.RootPath)
	handler := api.NewPoetryHandler(service.NewPoetryService(provider), models, cfg.RootPath)
	return newApp(cfg, models, api.NewPoetryRouter(handler, cfg)), nil
}

func newApp(cfg *config.Config, models []string, handler http.Handler) *App {
	return &App{
		Config: cfg,
		Models: models,
		Server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 20 * time.Second,
			WriteTimeout:      0, // Generations can run for minutes.
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "app", a.Config.App, "addr", a.Server.Addr, "root_path", a.Config.RootPath)
		errCh <- a.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "app", a.Config.App)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.Server.Shutdown(shutdownCtx)
}

func basePath(rootPath string) string {
	if rootPath == "" {
		return "/"
	}
	return rootPath
}

func logConfigSource(cfg *config.Config) {
	if cfg.ConfigFile != "" {
		slog.Info("Successfully loaded configuration from file.", "file", cfg.ConfigFile)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

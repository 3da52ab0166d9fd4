// main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dog_video_factory/infrastructure/auth"
	"dog_video_factory/infrastructure/config"
	"dog_video_factory/infrastructure/logger"
	"dog_video_factory/infrastructure/provider"
	"dog_video_factory/infrastructure/token_manager"
	"dog_video_factory/internal/core/usecases"
	"dog_video_factory/internal/handler/server"
	"dog_video_factory/internal/handler/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"github.com/pkg/browser"
)

func main() {
	tuiMode := flag.Bool("tui", false, "run the terminal front-end against API_URL")
	authMode := flag.Bool("auth", false, "open the YouTube consent screen served by API_URL and exit")
	flag.Parse()

	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *authMode:
		authURL := tui.NewAPIClient(cfg.APIURL).AuthURL()
		fmt.Println("Opening", authURL)
		if err := browser.OpenURL(authURL); err != nil {
			fmt.Fprintf(os.Stderr, "Could not open a browser, visit the link above: %v\n", err)
			os.Exit(1)
		}
	case *tuiMode:
		os.Exit(runTUI(cfg))
	default:
		os.Exit(runServer(cfg))
	}
}

func runTUI(cfg config.Config) int {
	// the terminal belongs to bubbletea, so logs only go to the file
	appLogger, err := logger.NewFileLogger(cfg.LogDir, "dog_video_factory_tui", false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer appLogger.Close()
	appLogger.Info("TUI starting against " + cfg.APIURL)

	initialModel := tui.NewAppModel(tui.NewAPIClient(cfg.APIURL), appLogger)

	p := tea.NewProgram(initialModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		appLogger.Error("Error running TUI program", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	appLogger.Info("TUI finished.")
	return 0
}

func runServer(cfg config.Config) int {
	appLogger, err := logger.NewFileLogger(cfg.LogDir, "dog_video_factory", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer appLogger.Close()
	appLogger.Info("Application starting...")

	tokenService := token_manager.NewTokenService()
	authService := auth.NewAuthenticationService(auth.DefaultScopes(), tokenService)

	veoProvider := provider.NewVeoProvider(provider.VeoConfig{
		BaseURL:         cfg.GenerationBaseURL,
		Location:        cfg.GenerationLocation,
		Model:           cfg.GenerationModel,
		DurationSeconds: cfg.GenerationSeconds,
	}, appLogger)
	youtubeProvider := provider.NewYoutubeProvider(authService, appLogger)

	shortsUseCase := usecases.NewShortsUseCase(
		config.EnvResolver{},
		veoProvider,
		youtubeProvider,
		authService,
		appLogger,
	)

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(shortsUseCase, appLogger, server.NewMetrics())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.NewServer(":"+cfg.Port, router, appLogger,
		server.WithShutdownTimeout(provider.DefaultVeoTimeout+30*time.Second),
	).Run(ctx); err != nil {
		appLogger.Error("Server stopped with error", err)
		return 1
	}

	appLogger.Info("Application finished.")
	return 0
}

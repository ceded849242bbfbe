package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/Murilocrlh/jogodaforca/internal/config"
	"github.com/Murilocrlh/jogodaforca/internal/httpserver"
	"github.com/Murilocrlh/jogodaforca/internal/store"
	"github.com/Murilocrlh/jogodaforca/internal/tui"
	"github.com/Murilocrlh/jogodaforca/internal/words"
)

func main() {
	mode := flag.String("mode", "server", "server (HTTP API) or play (terminal game)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		config.SetupLogging(config.Config{LogLevel: "info", LogFormat: "console"}, os.Stderr)
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	switch *mode {
	case "server":
		config.SetupLogging(cfg, os.Stderr)
		runServer(cfg)
	case "play":
		logOut, closeLog := playLogOutput(cfg)
		defer closeLog()
		config.SetupLogging(cfg, logOut)
		runPlay()
	default:
		config.SetupLogging(cfg, os.Stderr)
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

func runServer(cfg config.Config) {
	bank, err := words.Default(words.CryptoSource{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word bank")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(store.NewMemoryStore(), bank, cfg)
	log.Info().Str("port", cfg.Port).Msg("starting forca server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func runPlay() {
	bank, err := words.Default(words.CryptoSource{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load word bank")
		config.Exitf("failed to load word bank: %v", err)
	}
	if _, err := tea.NewProgram(tui.NewModel(bank), tea.WithAltScreen()).Run(); err != nil {
		log.Error().Err(err).Msg("terminal client exited")
		config.Exitf("terminal client exited: %v", err)
	}
}

// playLogOutput keeps logs off the terminal while the UI owns it.
func playLogOutput(cfg config.Config) (io.Writer, func()) {
	if cfg.LogFile == "" {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}

// Command scribed is the local backend for the scribe desktop recorder. It
// exposes the transcribe, summarize, and save-audio commands over a loopback
// HTTP API and manages the transcription sidecar and Ollama client.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillsenselab/scribe/config"
	apperrors "github.com/skillsenselab/scribe/errors"
	"github.com/skillsenselab/scribe/llm"
	"github.com/skillsenselab/scribe/llm/ollama"
	"github.com/skillsenselab/scribe/logger"
	"github.com/skillsenselab/scribe/observability"
	"github.com/skillsenselab/scribe/server"
	"github.com/skillsenselab/scribe/storage"
	"github.com/skillsenselab/scribe/summary"
	"github.com/skillsenselab/scribe/transcription"
	"github.com/skillsenselab/scribe/transcription/sidecar"
	"github.com/skillsenselab/scribe/version"
)

func main() {
	configFile := flag.String("config", "", "path to config file (default: ./config.yml, ./config/config.yml)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetShortVersion())
		return
	}

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "scribed: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	// Bootstrap logger from LOG_* env vars so anything logged before the
	// config is loaded still goes through zerolog.
	logger.SetGlobalLogger(logger.NewFromEnv("scribed"))

	var cfg config.Config
	if err := config.Load(configFile, &cfg); err != nil {
		return apperrors.Config("load configuration", err)
	}

	log := logger.New(&cfg.Logging, cfg.Base.Name)
	logger.SetGlobalLogger(log)

	log.Info("starting scribed", map[string]interface{}{
		"version":     version.GetShortVersion(),
		"environment": cfg.Base.Environment,
	})

	// The token is resolved once at startup; the value never reaches a log.
	if token, ok := config.LookupHFToken(); ok {
		cfg.Transcription.Sidecar.Token = token
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry, err := observability.Init(ctx, cfg.Observability, cfg.Base.Name, version.GetShortVersion())
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			log.Warn("telemetry shutdown", logger.ErrorFields("telemetry.shutdown", err))
		}
	}()

	metrics, err := observability.NewMetrics()
	if err != nil {
		return fmt.Errorf("create metrics: %w", err)
	}

	transcriber, err := buildTranscriber(&cfg)
	if err != nil {
		return err
	}
	llmProvider, err := buildLLM(&cfg)
	if err != nil {
		return err
	}

	recordings, err := storage.NewRecordings(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init recordings storage: %w", err)
	}
	log.Info("recordings storage ready", map[string]interface{}{
		"dir": recordings.Dir(),
	})

	srv := server.New(cfg.Server, log)
	srv.RegisterRoutes(server.Dependencies{
		Transcriber: transcriber,
		LLM:         llmProvider,
		Summarizer:  summary.New(llmProvider, cfg.LLM.Ollama.Model),
		Recordings:  recordings,
		Metrics:     metrics,
	})

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	log.Info("shutdown signal received")
	return srv.Stop(context.Background())
}

func buildTranscriber(cfg *config.Config) (transcription.Provider, error) {
	reg := transcription.NewRegistry()
	reg.RegisterFactory(sidecar.ProviderName, sidecar.Factory())

	p, err := reg.Create(cfg.Transcription.Provider, map[string]any{
		"binary": cfg.Transcription.Sidecar.Binary,
		"token":  cfg.Transcription.Sidecar.Token,
	})
	if err != nil {
		return nil, fmt.Errorf("create transcription provider: %w", err)
	}
	return p, nil
}

func buildLLM(cfg *config.Config) (llm.Provider, error) {
	reg := llm.NewRegistry()
	reg.RegisterFactory(ollama.ProviderName, ollama.Factory())

	p, err := reg.Create(cfg.LLM.Provider, map[string]any{
		"base_url": cfg.LLM.Ollama.BaseURL,
		"model":    cfg.LLM.Ollama.Model,
		"timeout":  cfg.LLM.Ollama.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create llm provider: %w", err)
	}
	return p, nil
}

// Package main is the canvasd entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/launchpath/canvas/internal/catalog"
	"github.com/launchpath/canvas/internal/config"
	"github.com/launchpath/canvas/internal/embedding"
	"github.com/launchpath/canvas/internal/llm"
	"github.com/launchpath/canvas/internal/models"
	"github.com/launchpath/canvas/internal/pipeline"
	"github.com/launchpath/canvas/internal/server"
	"github.com/launchpath/canvas/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/canvasd/config.yaml"

// loadConfig loads config from path. When path is the default, a config.yaml
// in the current directory takes precedence (for development). Returns the
// config and the path actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "server":
		runServer()
	case "canvas":
		runCanvas()
	case "version", "--version", "-v":
		fmt.Printf("canvasd version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`Usage: canvasd <command> [flags]

Commands:
  server    run the HTTP server
  canvas    generate a canvas for one idea and print it
  version   print the version
  help      show this help

Examples:
  canvasd server --config ./config.yaml
  canvasd canvas --language de Ich möchte einen Friseursalon eröffnen
`)
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Catalog.Watch {
		go func() {
			if err := components.Catalogs.Watch(watchCtx); err != nil {
				logger.Warn("catalog watch stopped", zap.Error(err))
			}
		}()
	}

	srv := server.New(cfg.Server.Host, cfg.Server.Port, components.Pipeline, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

func runCanvas() {
	fs := flag.NewFlagSet("canvas", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	langCode := fs.String("language", "en", "language code (en, de, es, fr, it, nl)")
	_ = fs.Parse(os.Args[2:])

	idea := buildIdea(fs.Args())
	if idea == "" {
		fmt.Println("Usage: canvasd canvas [flags] <business idea>")
		os.Exit(1)
	}

	lang, err := models.ParseLanguage(*langCode)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	sections, err := components.Pipeline.Run(context.Background(), idea, lang)
	if err != nil {
		logger.Fatal("Canvas generation failed", zap.Error(err))
	}

	out, err := json.MarshalIndent(sections, "", "    ")
	if err != nil {
		logger.Fatal("Failed to encode sections", zap.Error(err))
	}
	fmt.Println(string(out))
}

// buildIdea joins all positional args with spaces so multi-word ideas work the
// same with or without shell quoting.
func buildIdea(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// components bundles everything the subcommands need.
type components struct {
	Catalogs *catalog.Cache
	Embedder embedding.Embedder
	Pipeline *pipeline.Pipeline
}

func (c *components) Close() {
	if c.Embedder != nil {
		_ = c.Embedder.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*components, error) {
	// .env is optional; the variable may come from the environment directly.
	_ = godotenv.Load()
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	catalogs := catalog.NewCache(cfg.Catalog.Dir, logger)

	var embedder embedding.Embedder
	onnx, err := embedding.NewONNXEmbedder(
		cfg.Embedding.ModelPath,
		cfg.Embedding.Dimensions,
		cfg.Embedding.MaxTokens,
		cfg.Embedding.CacheSize,
	)
	if err != nil {
		logger.Warn("onnx embedder unavailable, using fallback embedder",
			zap.String("model_path", cfg.Embedding.ModelPath),
			zap.Error(err))
		embedder = embedding.NewMockEmbedder(cfg.Embedding.Dimensions)
	} else {
		embedder = onnx
	}

	generator, err := llm.NewGeminiGenerator(context.Background(), llm.GeminiConfig{
		APIKey:        apiKey,
		Model:         cfg.Generator.Model,
		Timeout:       time.Duration(cfg.Generator.TimeoutSeconds) * time.Second,
		MaxRetries:    cfg.Generator.MaxRetries,
		MaxConcurrent: cfg.Generator.MaxConcurrent,
	}, logger)
	if err != nil {
		return nil, err
	}

	p := pipeline.New(catalogs, embedder, generator, cfg.Pipeline.TopK, logger)

	return &components{
		Catalogs: catalogs,
		Embedder: embedder,
		Pipeline: p,
	}, nil
}

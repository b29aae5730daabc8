// Package main is the prepsearch CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/prepstack/prepsearch/internal/cli"
	"github.com/prepstack/prepsearch/internal/config"
	"github.com/prepstack/prepsearch/internal/models"
	"github.com/prepstack/prepsearch/internal/search"
	"github.com/prepstack/prepsearch/internal/server"
	"github.com/prepstack/prepsearch/internal/store"
	"github.com/prepstack/prepsearch/internal/watcher"
	"github.com/prepstack/prepsearch/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/prepsearch/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used instead.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := cwd + "/config.yaml"
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "seed":
		runSeed()
	case "version", "--version", "-v":
		fmt.Printf("prepsearch version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`prepsearch - exam question relevance search

Usage:
  prepsearch server [-config path] [-debug]    start the HTTP API server
  prepsearch search [flags] <query>            search questions via a running server
  prepsearch seed   [-config path] -dir <dir>  load question dataset files into the store
  prepsearch version                           print version
`)
}

// openStore creates the question store selected by the config.
func openStore(ctx context.Context, cfg *config.Config) (store.QuestionStore, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "dynamodb":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Storage.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return store.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.Storage.DynamoTable), nil
	default:
		return store.NewSQLiteStore(cfg.Storage.DatabasePath)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
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

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open question store", zap.Error(err))
	}
	defer st.Close()

	engine := search.NewEngine(st, &cfg.Scoring, time.Duration(cfg.Cache.TTLMinutes)*time.Minute, logger)

	// Watch dataset directories when the store accepts writes, reloading
	// changed files and invalidating the cache.
	watchCtx, watchCancel := context.WithCancel(ctx)
	defer watchCancel()
	if ws, ok := st.(store.WritableStore); ok && len(cfg.Datasets.Directories) > 0 {
		watchOpts := []watcher.Option{}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		w := watcher.New(cfg.Datasets.Directories, func(path string) {
			questions, err := store.LoadDatasetFile(path)
			if err != nil {
				logger.Warn("dataset reload failed", zap.String("path", path), zap.Error(err))
				return
			}
			if err := ws.PutQuestions(context.Background(), questions); err != nil {
				logger.Warn("dataset store failed", zap.String("path", path), zap.Error(err))
				return
			}
			engine.ClearCache()
			logger.Info("dataset reloaded", zap.String("path", path), zap.Int("questions", len(questions)))
		}, watchOpts...)
		if err := w.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start dataset watcher", zap.Error(err))
		}
		defer w.Stop()
	}

	srv := server.NewServer(engine, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(shutdownCtx)
}

// buildSearchQuery joins all positional args with spaces so multi-word
// queries work the same with or without shell quoting.
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// searchArgsReorder moves any flags (and their values) that appear after the
// query to the front of the slice so that flag.Parse() sees them. Go's flag
// package stops at the first non-flag argument.
func searchArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runSearch() {
	searchArgs := searchArgsReorder(os.Args[2:])

	fs := flag.NewFlagSet("search", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	provider := fs.String("provider", "", "filter by provider")
	exam := fs.String("exam", "", "filter by exam")
	topic := fs.String("topic", "", "filter by topic")
	difficulty := fs.String("difficulty", "", "filter by difficulty (easy, medium, hard)")
	sortBy := fs.String("sort", "relevance", "sort strategy: relevance, difficulty_asc, difficulty_desc, created_asc, created_desc")
	limit := fs.Int("limit", 10, "number of results")
	offset := fs.Int("offset", 0, "result offset")
	highlight := fs.Bool("highlight", false, "include matched substrings in results")
	explanations := fs.Bool("explanations", false, "include explanations in results")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(searchArgs)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: prepsearch search [flags] <query>\n")
		fs.PrintDefaults()
		os.Exit(1)
	}
	queryStr := buildSearchQuery(fs.Args())

	format := cli.OutputText
	if *outputFormat == "json" {
		format = cli.OutputJSON
	}

	query := &models.SearchQuery{
		Query:               queryStr,
		Provider:            *provider,
		Exam:                *exam,
		Topic:               *topic,
		Difficulty:          models.Difficulty(*difficulty),
		Sort:                models.SortStrategy(*sortBy),
		Limit:               *limit,
		Offset:              *offset,
		Highlight:           *highlight,
		IncludeExplanations: *explanations,
	}

	response, err := searchViaHTTP(*serverURL, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSearchResults(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func searchViaHTTP(serverURL string, query *models.SearchQuery) (*models.SearchResponse, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/search", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var response models.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

func runSeed() {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	dir := fs.String("dir", "", "directory of question dataset .json files")
	_ = fs.Parse(os.Args[2:])

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "seed requires -dir")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open question store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ws, ok := st.(store.WritableStore)
	if !ok {
		fmt.Fprintf(os.Stderr, "Store backend %q does not accept writes\n", cfg.Storage.Backend)
		os.Exit(1)
	}

	n, err := store.LoadDirectory(ctx, *dir, ws)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d questions from %s\n", n, *dir)
}

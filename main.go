package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/api"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/chat"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/config"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/evaluator"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/interview"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/logger"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/metrics"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/questions"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/sentiment"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/server"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/storage"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/validator"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP API server instead of the console chat")
	configPath := flag.String("config", "config/interview.yaml", "path to the interview config file")
	jsonLogs := flag.Bool("json-logs", false, "emit logs as JSON")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	fmt.Println("🚀 Starting TalentScout Hiring Assistant...")

	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		log.Fatal("GROQ_API_KEY is not set")
	}

	zlog, err := logger.New(*jsonLogs, *debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Warn("interview config not loaded, using built-in defaults",
			zap.String("path", *configPath),
			zap.Error(err),
		)
		cfg = config.Default()
	}

	appCfg := config.LoadAppConfig()

	fmt.Println("🔧 Initializing services...")

	m := metrics.NewMetrics()
	client := api.NewClient(appCfg.Groq, m)

	bank, err := questions.LoadBank(cfg.Questions.BankFile)
	if err != nil {
		zlog.Warn("fallback question bank not loaded, using built-in templates",
			zap.String("path", cfg.Questions.BankFile),
			zap.Error(err),
		)
		bank = questions.DefaultBank()
	}

	// Generation and evaluation use the same capability with
	// different sampling parameters.
	generator := questions.NewGenerator(client.WithParams(0.7, 1000), bank, appCfg.Groq.Timeout, m, zlog)
	eval := evaluator.New(client.WithParams(0.3, 200), appCfg.Groq.Timeout, m, zlog)
	val := validator.New(cfg.Validation)
	store := storage.New(cfg.Storage.BaseDir, zlog)

	engine := interview.NewEngine(cfg, val, eval, generator, sentiment.NewLexiconScorer(), store, m, zlog)
	fmt.Println("✅ Interview engine initialized")

	fmt.Println("\n📋 Configuration:")
	fmt.Printf("• Model: %s\n", appCfg.Groq.Model)
	fmt.Printf("• Interview languages: %d\n", len(cfg.Languages))
	fmt.Printf("• Records directory: %s\n", cfg.Storage.BaseDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *serve {
		srv := server.New(appCfg.Server, engine, m, zlog)
		fmt.Printf("\n🌐 HTTP API listening on port %d\n", appCfg.Server.Port)
		if err := srv.ListenAndServe(ctx); err != nil {
			zlog.Fatal("http server failed", zap.Error(err))
		}
		return
	}

	fmt.Println("\n🤖 Starting console interview...")
	if err := chat.Run(ctx, engine); err != nil {
		zlog.Fatal("console session failed", zap.Error(err))
	}
}

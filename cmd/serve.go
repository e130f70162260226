package cmd

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tmc/langchaingo/llms/openai"

	hostops "github.com/hostops-ai/hostops"
	"github.com/hostops-ai/hostops/internal/ai"
	"github.com/hostops-ai/hostops/internal/config"
	"github.com/hostops-ai/hostops/internal/notify"
	"github.com/hostops-ai/hostops/internal/pipeline"
	"github.com/hostops-ai/hostops/internal/repository"
	"github.com/hostops-ai/hostops/internal/server"
	"github.com/hostops-ai/hostops/internal/service"
)

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Run the hostops API server",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			slog.Error("failed to load config", "error", err)
			return err
		}

		// Confidence values are exact; serialize them as JSON numbers.
		decimal.MarshalJSONWithoutQuotes = true

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pool, err := repository.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			return err
		}
		defer pool.Close()

		migrationsFS, err := fs.Sub(hostops.MigrationsFS, "migrations")
		if err != nil {
			return fmt.Errorf("load embedded migrations: %w", err)
		}
		if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
			slog.Error("failed to run migrations", "error", err)
			return err
		}

		queries := repository.New(pool)

		composer, err := buildComposer(cfg)
		if err != nil {
			slog.Error("failed to build composer", "error", err)
			return err
		}

		retriever := pipeline.NewRetriever(queries, pipeline.RetrieverConfig{
			WorkspaceLimit: cfg.KBWorkspaceLimit,
			PropertyLimit:  cfg.KBPropertyLimit,
			FallbackLimit:  cfg.KBFallbackLimit,
		})
		pipe := pipeline.New(pipeline.Deps{
			Threads:   queries,
			Messages:  queries,
			Settings:  queries,
			Drafts:    queries,
			Retriever: retriever,
			Composer:  composer,
			Window:    cfg.ContextMessages,
		})

		srv := server.New(server.Deps{
			Cfg:        cfg,
			Pipeline:   pipe,
			Drafts:     queries,
			Inbox:      service.NewInboxService(queries, cfg.InboundPrefix),
			Workspaces: service.NewWorkspaceService(queries),
			Knowledge:  service.NewKnowledgeService(queries),
			Settings:   service.NewSettingsService(queries),
			Notifier:   buildNotifier(cfg),
		})

		slog.Info("starting server", "port", cfg.Port, "ai_backend", cfg.AIBackend, "model", composer.Model())
		if err := srv.ListenAndServe(ctx); err != nil {
			slog.Error("server stopped with error", "error", err)
			return err
		}
		slog.Info("server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func buildComposer(cfg *config.Config) (ai.Composer, error) {
	switch cfg.AIBackend {
	case "", "stub":
		return ai.NewStubComposer(), nil
	case "openai":
		llm, err := openai.New(
			openai.WithToken(cfg.OpenAIKey),
			openai.WithModel(cfg.OpenAIModel),
		)
		if err != nil {
			return nil, fmt.Errorf("init openai backend: %w", err)
		}
		return ai.NewLLMComposer(llm, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown AI_BACKEND %q", cfg.AIBackend)
	}
}

// buildNotifier returns a disabled notifier when no bot token is set.
func buildNotifier(cfg *config.Config) *notify.Notifier {
	if cfg.NotifyBotToken == "" {
		return notify.New(nil, cfg)
	}
	b, err := bot.New(cfg.NotifyBotToken)
	if err != nil {
		slog.Error("failed to create telegram notifier, notifications disabled", "error", err)
		return notify.New(nil, cfg)
	}
	return notify.New(b, cfg)
}

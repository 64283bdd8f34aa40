package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"sihportal/internal/catalog"
	"sihportal/internal/config"
	"sihportal/internal/content"
	"sihportal/internal/enrich"
	"sihportal/internal/logger"
	"sihportal/internal/mailer"
	"sihportal/internal/portal"
	"sihportal/internal/server"
	"sihportal/internal/storage"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "sihportal",
		Short: "Hackathon team portal and content generator",
	}
	configPath string
	dbPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the portal database (overrides config)")

	generateCmd.Flags().String("idea", "", "Solution idea to feed the pipeline")
	exportCmd.Flags().String("out", "registrations.csv", "Output CSV path")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	return cfg, nil
}

func buildService(ctx context.Context, cfg *config.Config, log *logger.Logger) (*portal.Service, *storage.SQLiteStore, error) {
	store, err := storage.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	chain, err := enrich.NewProviderChain(ctx, enrich.ChainOptions{
		Provider:    cfg.Enrich.Provider,
		Token:       cfg.Enrich.Token,
		Models:      cfg.Enrich.Models,
		GeminiModel: cfg.Enrich.GeminiModel,
		Timeout:     time.Duration(cfg.Enrich.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	var mail mailer.Mailer
	smtp := mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	if smtp.Configured() {
		mail = smtp
	}

	return portal.NewService(store, cat, chain, mail, log), store, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portal HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
		if cfg.Auth.JWTSecret == "" {
			log.Fatalf("JWT secret not configured (set SIH_JWT_SECRET or auth.jwt_secret)")
		}

		zlog, err := logger.New(cfg.Server.Mode)
		if err != nil {
			log.Fatalf("Logger error: %v", err)
		}
		defer zlog.Sync()

		svc, store, err := buildService(ctx, cfg, zlog)
		if err != nil {
			log.Fatalf("Startup failed: %v", err)
		}
		defer store.Close()

		fmt.Printf("📚 Loaded %d problem statements from %s\n", svc.Catalog().Len(), cfg.Catalog.Path)

		tokens := server.NewTokenManager(cfg.Auth.JWTSecret)
		h := server.NewHandler(svc, tokens, cfg.Auth.AdminUser, cfg.Auth.AdminPassword, zlog)
		router := server.NewRouter(h, server.NewAuthMiddleware(tokens), cfg.Server.Mode)

		fmt.Printf("🚀 Portal listening on :%s\n", cfg.Server.Port)
		if err := router.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [problem-id]",
	Short: "Run the content pipeline for one problem statement and print the pack",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}

		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			log.Fatalf("Catalog error: %v", err)
		}
		problem, ok := cat.Get(args[0])
		if !ok {
			log.Fatalf("Unknown problem statement: %s", args[0])
		}

		idea, _ := cmd.Flags().GetString("idea")
		prepared := content.PrepareIdea(problem.Title, idea, "")

		start := time.Now()
		result := content.Generate(content.ProblemContext{
			Title:       problem.Title,
			Description: problem.Description,
			Idea:        prepared,
		})
		fmt.Printf("✅ Generated %s content in %v (domain: %s)\n\n", problem.ID, time.Since(start), result.Domain)

		info := content.DeckInfo{ProblemID: problem.ID, Title: problem.Title, TeamName: "CLI Preview"}
		fmt.Println(content.RenderDeck(info, result.Bundle, result.Scores))
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the registration CSV export",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
		zlog, err := logger.New(cfg.Server.Mode)
		if err != nil {
			log.Fatalf("Logger error: %v", err)
		}
		defer zlog.Sync()

		svc, store, err := buildService(ctx, cfg, zlog)
		if err != nil {
			log.Fatalf("Startup failed: %v", err)
		}
		defer store.Close()

		out, _ := cmd.Flags().GetString("out")
		f, err := os.Create(out)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", out, err)
		}
		defer f.Close()

		if err := svc.ExportCSV(ctx, f); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("💾 Export written to %s\n", out)
	},
}

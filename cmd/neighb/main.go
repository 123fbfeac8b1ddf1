package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/beNeighb/backend/config"
	chatRepository "github.com/beNeighb/backend/internal/chat/repository"
	chatUsecase "github.com/beNeighb/backend/internal/chat/usecase"
	"github.com/beNeighb/backend/internal/database"
	marketplaceRepository "github.com/beNeighb/backend/internal/marketplace/repository"
	marketplaceUsecase "github.com/beNeighb/backend/internal/marketplace/usecase"
	profileRepository "github.com/beNeighb/backend/internal/profile/repository"
	profileUsecase "github.com/beNeighb/backend/internal/profile/usecase"
	"github.com/beNeighb/backend/internal/server"
	"github.com/beNeighb/backend/pkg/logger"
	"github.com/beNeighb/backend/pkg/notify"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "neighb",
		Short: "beNeighb marketplace backend",
	}

	rootCmd.PersistentFlags().String("config", "config", "config file name without extension")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	v, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return config.ParseConfig(v)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			log, err := logger.NewLogger(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := database.Connect(ctx, cfg.Bun.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			profileRepo := profileRepository.NewProfileRepository(db, *log)
			marketplaceRepo := marketplaceRepository.NewMarketplaceRepository(db, *log)
			chatRepo := chatRepository.NewChatRepository(db, *log)

			notifier := &notify.LogSender{Logger: *log}

			profileUC := profileUsecase.NewProfileUsecase(profileRepo, *log)
			marketplaceUC := marketplaceUsecase.NewMarketplaceUsecase(marketplaceRepo, profileRepo, notifier, *log)
			chatUC := chatUsecase.NewChatUsecase(chatRepo, *log)

			srv := server.New(cfg, log, marketplaceUC, chatUC, profileUC, profileRepo)

			httpServer := &http.Server{
				Addr:    ":" + cfg.Server.Port,
				Handler: srv,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("server listening", "port", cfg.Server.Port)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				log.Info("shutting down")
				return httpServer.Shutdown(context.Background())
			}
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := database.Connect(ctx, cfg.Bun.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			return database.CreateSchema(ctx, db)
		},
	}
}

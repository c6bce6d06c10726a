package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang-stock-advisor/internal/api/config"
	"golang-stock-advisor/internal/api/repository"
	"golang-stock-advisor/pkg/logger"

	"github.com/spf13/cobra"
)

var configPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Recreates the vector store classes",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer func() { _ = appLogger.Sync() }()

		repo, err := repository.NewWeaviateRepository(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize vector gateway", logger.ErrorField(err))
		}

		if err := repo.EnsureSchema(context.Background()); err != nil {
			appLogger.Fatal("Failed to create vector schema", logger.ErrorField(err))
		}

		fmt.Println("Vector schema created successfully.")
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "vector-schema"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(initCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing vector-schema CLI: %s\n", err)
		os.Exit(1)
	}
}

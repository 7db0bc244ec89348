package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"teamhealth/internal/ai"
	"teamhealth/internal/api/handlers"
	"teamhealth/internal/api/server"
	"teamhealth/internal/config"
	"teamhealth/internal/crypto"
	"teamhealth/internal/github"
	"teamhealth/internal/logger"
	"teamhealth/internal/service"
	storageGorm "teamhealth/internal/storage/gorm"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found")
	}
	envConfig := config.NewEnvConfig()
	envConfig.PrintConfigWithHiddenSecrets()

	logger.Setup(envConfig)

	txManager, err := storageGorm.NewTxManager(envConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	cipher, err := crypto.NewCipher(envConfig.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token cipher")
	}

	githubClient := github.NewClient(
		envConfig.GitHub.Token,
		time.Duration(envConfig.GitHub.TimeoutSeconds)*time.Second,
	)
	scoringClient := ai.NewClient(envConfig)

	appService := service.New(txManager, githubClient, scoringClient, cipher)
	appHandler := handlers.NewHandler(appService, appService)
	apiServer := server.NewServer(envConfig, appHandler)

	go apiServer.Run()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info().Msg(fmt.Sprintf("signal received: %s, starting graceful shutdown", s))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	apiServer.Shutdown(ctx)

	log.Info().Msg("service shutdown gracefully")
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/everdell-tracker/internal/common/clock"
	"github.com/KirkDiggler/everdell-tracker/internal/common/uuid"
	"github.com/KirkDiggler/everdell-tracker/internal/config"
	"github.com/KirkDiggler/everdell-tracker/internal/handlers/discord"
	"github.com/KirkDiggler/everdell-tracker/internal/repositories/scoreboard"
	"github.com/KirkDiggler/everdell-tracker/internal/services/messaging"
	"github.com/KirkDiggler/everdell-tracker/internal/services/tracker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	envFile := flag.String("env-file", ".env", "optional file of environment variables")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	log.Info().Msg("Starting Everdell score tracker")

	scoreboardRepo, err := scoreboard.NewMemory(&scoreboard.Config{
		MaxSessions: cfg.MaxChannels,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scoreboard repository")
	}

	trackerSvc, err := tracker.New(&tracker.Config{
		ScoreboardRepo: scoreboardRepo,
		Clock:          clock.New(),
		UUIDGenerator:  uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create tracker service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create messaging service")
	}

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		TrackerService:   trackerSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Scoreboards live in memory only, so say what is being dropped
	active, err := scoreboardRepo.GetActiveChannels(context.Background(), &scoreboard.GetActiveChannelsInput{})
	if err == nil {
		log.Info().Int("channels", len(active.ChannelIDs)).Msg("Discarding scoreboards")
	}

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("Error stopping bot")
	}

	log.Info().Msg("Bot has been shut down")
}

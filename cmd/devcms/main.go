package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/azaliaz/ruboni/internal/config"
	"github.com/azaliaz/ruboni/internal/devcms"
	"github.com/azaliaz/ruboni/internal/devcms/store"
	"github.com/azaliaz/ruboni/internal/logger"
)

func main() {
	cfg, err := config.ReadDevCMSConfig()
	if err != nil {
		log.Fatal(err)
	}
	log := logger.Get(cfg.Debug)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	seed, err := store.LoadSeed(cfg.Seed)
	if err != nil {
		log.Fatal().Err(err).Msg("load seed failed")
	}
	stor, err := store.NewSeeded(seed)
	if err != nil {
		log.Fatal().Err(err).Msg("seed store failed")
	}

	serv := devcms.New(*cfg, stor)
	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return serv.Run(gCtx)
	})
	group.Go(func() error {
		<-gCtx.Done()
		return serv.ShutdownServer()
	})

	if err = group.Wait(); err != nil {
		log.Info().Str("stoping reason", err.Error()).Msg("dev cms stoped")
		return
	}
	log.Info().Msg("dev cms stoped")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/azaliaz/ruboni/internal/account"
	"github.com/azaliaz/ruboni/internal/booking"
	"github.com/azaliaz/ruboni/internal/cart"
	"github.com/azaliaz/ruboni/internal/catalog"
	"github.com/azaliaz/ruboni/internal/config"
	"github.com/azaliaz/ruboni/internal/gateway"
	"github.com/azaliaz/ruboni/internal/logger"
	"github.com/azaliaz/ruboni/internal/metrics"
	"github.com/azaliaz/ruboni/internal/notify"
	"github.com/azaliaz/ruboni/internal/server"
	"github.com/azaliaz/ruboni/internal/session"
	"github.com/azaliaz/ruboni/internal/storage"
)

type kvStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	log := logger.Get(cfg.Debug)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		<-c

		log.Debug().Msg("ctx cancel; catch os signal")
		cancel()
	}()

	log.Debug().Any("cfg", cfg).Send()
	metrics.Register()

	stor := openStorage(ctx, cfg)
	defer func() {
		if err := stor.Close(); err != nil {
			log.Error().Err(err).Msg("close storage failed")
		}
	}()

	feed := notify.NewFeed(0)
	sess := session.New(stor)
	sess.Init(ctx)
	crt := cart.New(stor, sess)
	crt.Init(ctx)

	gw := gateway.New(cfg.APIBaseURL, cfg.GraphQLURL, nil)
	form := booking.NewForm(gw, sess, feed, booking.WithResetDelay(cfg.ResetDelay))
	defer form.Close()
	bookings := booking.NewManager(gw, sess, feed)
	if sess.IsAuthenticated() {
		if err := bookings.Load(ctx); err != nil {
			log.Error().Err(err).Msg("initial bookings load failed")
		}
	}

	serv := server.New(*cfg, server.Deps{
		Session:  sess,
		Cart:     crt,
		Form:     form,
		Bookings: bookings,
		Account:  account.New(gw, sess, feed),
		Catalog:  catalog.New(gw, cfg.MediaBaseURL),
		Notify:   feed,
	})
	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return serv.Run(gCtx)
	})
	group.Go(func() error {
		<-gCtx.Done()
		return serv.ShutdownServer()
	})

	if err = group.Wait(); err != nil {
		log.Info().Str("stoping reason", err.Error()).Msg("Server stoped")
		return
	}
	log.Info().Msg("server stoped")
}

// openStorage picks the configured backend and falls back to memory when
// it is unreachable.
func openStorage(ctx context.Context, cfg *config.Config) kvStorage {
	log := logger.Get()
	switch cfg.Storage {
	case config.StoragePostgres:
		if err := storage.Migrations(cfg.DBDsn, cfg.MigratePath); err != nil {
			log.Error().Err(err).Msg("migrations failed")
			return storage.New()
		}
		stor, err := storage.NewDB(ctx, cfg.DBDsn)
		if err != nil {
			log.Error().Err(err).Msg("connecting to data base failed")
			return storage.New()
		}
		return stor
	case config.StorageRedis:
		stor, err := storage.NewRedis(ctx, cfg.Redis)
		if err != nil {
			log.Error().Err(err).Msg("connecting to redis failed")
			return storage.New()
		}
		return stor
	}
	return storage.New()
}

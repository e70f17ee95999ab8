package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/HotelkaWants/ASMR-UK/internal/api"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/logger"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store/xpgx"
)

func initConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetDefault(constants.ViperKeyListenAddr, ":8080")
	viper.SetDefault(constants.ViperKeyCORSOrigin, "http://localhost:3000")
	viper.SetDefault(constants.ViperKeyTokenTTL, "24h")

	viper.AutomaticEnv()
	_ = viper.BindEnv(constants.ViperKeyDatabaseDSN, "DATABASE_DSN")
	_ = viper.BindEnv(constants.ViperSecretKey, "SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

func connectPool(ctx context.Context, dsn string) (xpgx.Pool, error) {
	var pool xpgx.Pool

	// база может подниматься дольше сервиса, ждём с ретраями
	op := func() error {
		p, err := xpgx.NewPool(ctx, dsn)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return err
		}
		pool = p
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}

	return pool, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Init(false)
	defer logger.Sync()

	if err := initConfig(); err != nil {
		logger.Fatal(ctx, err)
	}

	pool, err := connectPool(ctx, viper.GetString(constants.ViperKeyDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	apiService, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		apiService.Serve(viper.GetString(constants.ViperKeyListenAddr))
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		return apiService.Shutdown(shutdownCtx)
	})

	logger.Infof(ctx, "сервер запущен на %s", viper.GetString(constants.ViperKeyListenAddr))
	if err := group.Wait(); err != nil {
		logger.Errorf(ctx, "завершение с ошибкой: %v", err)
	}
}

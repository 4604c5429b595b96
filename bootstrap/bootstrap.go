package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"BattleFS/internal/application/service"
	"BattleFS/internal/domain"
	"BattleFS/internal/platform/api/zmq"
	"BattleFS/internal/platform/client"
	"BattleFS/internal/platform/codec/lzw"
	"BattleFS/internal/platform/config"
	"BattleFS/internal/platform/console"
	"BattleFS/internal/platform/logger"
	"BattleFS/internal/platform/repository"
	"BattleFS/internal/platform/server"
	"BattleFS/internal/platform/server/handler/object"
	"BattleFS/internal/platform/server/handler/store"

	"github.com/spf13/pflag"
	"go.uber.org/dig"
)

func Run() (bool, error) {
	container, err := buildContainer()
	if err != nil {
		return false, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = container.Invoke(func(cfg config.Config, session *domain.StoreSession, log *slog.Logger) error {
		defer session.Close()
		log.Info("starting BattleFS", "mode", cfg.Mode, "codec", cfg.CodecMode, "order", cfg.IndexOrder)

		switch cfg.Mode {
		case config.ModeConsole:
			// Ctrl+C vuelve a terminar el proceso
			stop()
			return container.Invoke(func(c *console.Console) error {
				return c.Run(context.Background())
			})
		case config.ModeHTTP:
			return container.Invoke(func(s server.Server, init *service.InitStoreService) error {
				init.Execute(service.InitStoreCommand{})
				return s.Run(ctx)
			})
		case config.ModeZmq:
			return container.Invoke(func(z *zmq.ZmqApi, init *service.InitStoreService) error {
				init.Execute(service.InitStoreCommand{})
				defer z.Close()
				return z.Listen(ctx)
			})
		case config.ModeClient:
			stop()
			return container.Invoke(func(c *client.StoreClient) error {
				return client.RunCommand(c, pflag.Args(), os.Stdout)
			})
		default:
			return fmt.Errorf("unknown mode %q", cfg.Mode)
		}
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func buildContainer() (*dig.Container, error) {
	container := dig.New()
	constructors := []interface{}{
		config.LoadConfig,
		logger.New,
		codec,
		repository.NewObjectRepositoryFactory,
		domain.NewStoreSession,
		service.NewInitStoreService,
		service.NewCreateObjectService,
		service.NewReadObjectService,
		service.NewDeleteObjectService,
		service.NewListObjectsService,
		service.NewLoadDirectoryService,
		service.NewPersistStoreService,
		object.NewObjectHandler,
		store.NewStoreHandler,
		server.NewServer,
		zmq.NewZmqApi,
		stdConsole,
		storeClient,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return nil, err
		}
	}
	return container, nil
}

func codec(cfg config.Config) (domain.Codec, error) {
	mode, err := lzw.ParseMode(cfg.CodecMode)
	if err != nil {
		return nil, err
	}
	return lzw.NewCodec(mode), nil
}

func storeClient(cfg config.Config) *client.StoreClient {
	return client.NewStoreClient(cfg.ServerUrl)
}

func stdConsole(services console.Services, log *slog.Logger) *console.Console {
	return console.NewConsole(services, os.Stdin, os.Stdout, log)
}
